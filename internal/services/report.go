package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"talkreport/internal/domain"
)

type reportService struct {
	talks      domain.TalkRepository
	speakers   domain.SpeakerRepository
	votes      domain.VoteRepository
	tickets    domain.TicketService
	siteDomain string
	logger     *slog.Logger
	verbose    bool
}

// NewReportService creates a ReportService over the talk, speaker and vote
// repositories plus the ticket resolver. siteDomain is the apex domain talk
// URLs are rendered under. verbose enables warnings for unscheduled talks.
func NewReportService(
	logger *slog.Logger,
	talks domain.TalkRepository,
	speakers domain.SpeakerRepository,
	votes domain.VoteRepository,
	tickets domain.TicketService,
	siteDomain string,
	verbose bool,
) domain.ReportService {
	return &reportService{
		talks:      talks,
		speakers:   speakers,
		votes:      votes,
		tickets:    tickets,
		siteDomain: siteDomain,
		logger:     logger,
		verbose:    verbose,
	}
}

// namedTalks is one pending bucket: collected talks under their output name.
type namedTalks struct {
	name  string
	talks []*domain.Talk
}

func (s *reportService) BuildReport(ctx context.Context, conference string, status domain.TalkStatus, opts domain.ReportOptions) (*domain.Report, error) {
	var pending []namedTalks

	// setBucket replaces an existing name in place, keeping its position.
	setBucket := func(name string, talks []*domain.Talk) {
		for i := range pending {
			if pending[i].name == name {
				pending[i].talks = talks
				return
			}
		}
		pending = append(pending, namedTalks{name: name, talks: talks})
	}

	for _, at := range domain.AdminTypes {
		talks, err := s.talks.ListByAdminType(ctx, conference, status, at.Code)
		if err != nil {
			return nil, fmt.Errorf("list %q talks: %w", at.Label, err)
		}
		setBucket(at.Label, talks)
	}

	for _, grp := range domain.TypeGroups {
		var talks []*domain.Talk
		for _, talkType := range grp.Types {
			bag, err := s.talks.ListByType(ctx, conference, status, talkType)
			if err != nil {
				return nil, fmt.Errorf("list %q talks: %w", grp.Name, err)
			}
			talks = append(talks, bag...)
		}
		setBucket(grp.Name, talks)
	}

	report := &domain.Report{}
	for _, bucket := range pending {
		if len(bucket.talks) == 0 {
			continue
		}
		sort.SliceStable(bucket.talks, func(i, j int) bool {
			return titleSortKey(bucket.talks[i].Title) < titleSortKey(bucket.talks[j].Title)
		})
		records := make([]*domain.TalkRecord, 0, len(bucket.talks))
		for _, talk := range bucket.talks {
			rec, err := s.buildRecord(ctx, conference, talk, opts)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		report.AddBucket(bucket.name, records)
	}
	return report, nil
}

func (s *reportService) buildRecord(ctx context.Context, conference string, talk *domain.Talk, opts domain.ReportOptions) (*domain.TalkRecord, error) {
	abstracts, err := s.talks.ListAbstracts(ctx, talk.ID)
	if err != nil {
		return nil, fmt.Errorf("list abstracts for talk %d: %w", talk.ID, err)
	}
	if abstracts == nil {
		abstracts = []string{}
	}

	trackTitle, timeRange := "", ""
	event, err := s.talks.GetScheduleByTalkID(ctx, talk.ID)
	switch {
	case err == nil:
		trackTitle = strings.Join(event.TrackTitles, ", ")
		timeRange = formatTimeRange(event.StartTime, event.EndTime)
	case errors.Is(err, domain.ErrNotFound):
		if s.verbose {
			s.logger.Warn("talk is not scheduled", "talk_id", talk.ID, "title", talk.Title)
		}
	default:
		return nil, fmt.Errorf("get schedule for talk %d: %w", talk.ID, err)
	}

	speakers, err := s.speakers.ListByTalkID(ctx, talk.ID)
	if err != nil {
		return nil, fmt.Errorf("list speakers for talk %d: %w", talk.ID, err)
	}
	haveTickets, err := s.tickets.SpeakerTicketStatuses(ctx, speakers)
	if err != nil {
		return nil, fmt.Errorf("ticket statuses for talk %d: %w", talk.ID, err)
	}
	if haveTickets == nil {
		haveTickets = []bool{}
	}

	tagNames := make([]string, 0, len(talk.Tags))
	tagCategories := make([]string, 0, len(talk.Tags))
	for _, tag := range talk.Tags {
		tagNames = append(tagNames, tag.Name)
		tagCategories = append(tagCategories, tag.Category)
	}

	rec := &domain.TalkRecord{
		ID:            talk.ID,
		AdminType:     domain.AdminTypeLabel(talk.AdminType),
		Type:          domain.TalkTypeLabel(talk.Type),
		Duration:      talk.Duration,
		Level:         domain.LevelLabel(talk.Level),
		TrackTitle:    trackTitle,
		TimeRange:     timeRange,
		Tags:          tagNames,
		URL:           fmt.Sprintf("https://%s.%s/talks/%s", conference, s.siteDomain, talk.Slug),
		TagCategories: tagCategories,
		SubCommunity:  talk.SubCommunity,
		Title:         cleanTitle(talk.Title),
		SubTitle:      cleanTitle(talk.SubTitle),
		Status:        string(talk.Status),
		Language:      domain.LanguageLabel(talk.Language),
		HaveTickets:   haveTickets,
		AbstractLong:  abstracts,
		AbstractShort: talk.AbstractShort,
		AbstractExtra: talk.AbstractExtra,
		Speakers:      speakerListing(speakers),
		Companies:     speakerCompanies(speakers),
		Emails:        speakerEmails(speakers),
		Twitters:      speakerTwitters(speakers),
	}

	if opts.IncludeVotes {
		votes, err := s.votes.ListByTalkID(ctx, talk.ID)
		if err != nil {
			return nil, fmt.Errorf("list votes for talk %d: %w", talk.ID, err)
		}
		rec.UserVotes = voteEntries(votes)
	}
	return rec, nil
}
