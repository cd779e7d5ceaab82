package postgres

import (
	"context"
	"database/sql"

	"talkreport/internal/domain"

	"github.com/lib/pq"
)

type talkRepository struct {
	DB *sql.DB
}

// NewTalkRepository returns a domain.TalkRepository implemented with Postgres.
func NewTalkRepository(db *sql.DB) domain.TalkRepository {
	return &talkRepository{DB: db}
}

func (r *talkRepository) ListByAdminType(ctx context.Context, conference string, status domain.TalkStatus, adminType string) ([]*domain.Talk, error) {
	query := `
		SELECT id, conference, title, sub_title, status, type, admin_type, duration, level, language, abstract_short, abstract_extra, sub_community, slug
		FROM talks
		WHERE conference = $1 AND status = $2 AND admin_type = $3
		ORDER BY id
	`
	return r.queryTalks(ctx, query, conference, string(status), adminType)
}

func (r *talkRepository) ListByType(ctx context.Context, conference string, status domain.TalkStatus, talkType string) ([]*domain.Talk, error) {
	query := `
		SELECT id, conference, title, sub_title, status, type, admin_type, duration, level, language, abstract_short, abstract_extra, sub_community, slug
		FROM talks
		WHERE conference = $1 AND status = $2 AND type = $3 AND admin_type = ''
		ORDER BY id
	`
	return r.queryTalks(ctx, query, conference, string(status), talkType)
}

func (r *talkRepository) queryTalks(ctx context.Context, query string, args ...any) ([]*domain.Talk, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var talks []*domain.Talk
	var talkIDs []int64
	for rows.Next() {
		talk := &domain.Talk{}
		if err := rows.Scan(&talk.ID, &talk.Conference, &talk.Title, &talk.SubTitle, &talk.Status, &talk.Type, &talk.AdminType, &talk.Duration, &talk.Level, &talk.Language, &talk.AbstractShort, &talk.AbstractExtra, &talk.SubCommunity, &talk.Slug); err != nil {
			return nil, err
		}
		talk.Tags = []domain.TalkTag{}
		talks = append(talks, talk)
		talkIDs = append(talkIDs, talk.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(talkIDs) == 0 {
		return talks, nil
	}
	tagRows, err := r.DB.QueryContext(ctx,
		`SELECT tt.talk_id, t.name, t.category
		 FROM talk_tags tt
		 JOIN tags t ON t.id = tt.tag_id
		 WHERE tt.talk_id = ANY($1)
		 ORDER BY tt.talk_id, t.name`, pq.Array(talkIDs))
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	tagsByTalk := make(map[int64][]domain.TalkTag)
	for tagRows.Next() {
		var talkID int64
		var tag domain.TalkTag
		if err := tagRows.Scan(&talkID, &tag.Name, &tag.Category); err != nil {
			return nil, err
		}
		tagsByTalk[talkID] = append(tagsByTalk[talkID], tag)
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}
	for _, talk := range talks {
		if t := tagsByTalk[talk.ID]; t != nil {
			talk.Tags = t
		}
	}
	return talks, nil
}

func (r *talkRepository) ListAbstracts(ctx context.Context, talkID int64) ([]string, error) {
	query := `
		SELECT body
		FROM talk_abstracts
		WHERE talk_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, talkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var bodies []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return bodies, rows.Err()
}

func (r *talkRepository) GetScheduleByTalkID(ctx context.Context, talkID int64) (*domain.ScheduleEvent, error) {
	query := `
		SELECT e.id, e.talk_id, e.start_time, e.end_time,
		       COALESCE(array_agg(tr.title ORDER BY tr.title) FILTER (WHERE tr.title IS NOT NULL), '{}')
		FROM events e
		LEFT JOIN event_tracks et ON et.event_id = e.id
		LEFT JOIN tracks tr ON tr.id = et.track_id
		WHERE e.talk_id = $1
		GROUP BY e.id, e.talk_id, e.start_time, e.end_time
	`
	ev := &domain.ScheduleEvent{TrackTitles: []string{}}
	err := r.DB.QueryRowContext(ctx, query, talkID).Scan(&ev.ID, &ev.TalkID, &ev.StartTime, &ev.EndTime, pq.Array(&ev.TrackTitles))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}
