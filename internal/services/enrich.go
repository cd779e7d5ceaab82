package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"talkreport/internal/domain"
)

// scheduleTimeLayout renders wall-clock times the way the report has always
// shown them, with no zone suffix.
const scheduleTimeLayout = "2006-01-02 15:04:05"

// cleanTitle normalizes a talk title for display and sorting: surrounding
// whitespace dropped, double spaces collapsed once, and one surrounding pair
// of double quotes removed. A lone quote is not a pair and stays.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return title
	}
	title = strings.ReplaceAll(title, "  ", " ")
	if len(title) > 1 && title[0] == '"' && title[len(title)-1] == '"' {
		title = title[1 : len(title)-1]
	}
	return title
}

// asciiTitle title-cases runs of ASCII letters: the first letter of each run
// is uppercased and the rest lowercased. Every other byte passes through
// unchanged and starts a new run. Multi-byte sequences are left alone, so the
// result is a byte-comparison sort key, not display text.
func asciiTitle(s string) string {
	b := []byte(s)
	prevAlpha := false
	for i, c := range b {
		lower := 'a' <= c && c <= 'z'
		upper := 'A' <= c && c <= 'Z'
		switch {
		case prevAlpha && upper:
			b[i] = c + ('a' - 'A')
		case !prevAlpha && lower:
			b[i] = c - ('a' - 'A')
		}
		prevAlpha = lower || upper
	}
	return string(b)
}

// titleSortKey is the within-bucket ordering key.
func titleSortKey(title string) string {
	return asciiTitle(cleanTitle(title))
}

func formatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s, %s", start.Format(scheduleTimeLayout), end.Format(scheduleTimeLayout))
}

func speakerListing(speakers []*domain.Speaker) string {
	names := make([]string, 0, len(speakers))
	for _, sp := range speakers {
		names = append(names, fmt.Sprintf("%s %s", sp.FirstName, sp.LastName))
	}
	return strings.Join(names, ", ")
}

func speakerEmails(speakers []*domain.Speaker) string {
	emails := make([]string, 0, len(speakers))
	for _, sp := range speakers {
		emails = append(emails, sp.Email)
	}
	return strings.Join(emails, ", ")
}

// speakerTwitters lists one @handle per speaker. A speaker without a profile
// still gets an entry, with an empty handle.
func speakerTwitters(speakers []*domain.Speaker) string {
	handles := make([]string, 0, len(speakers))
	for _, sp := range speakers {
		handle := ""
		if sp.Profile != nil {
			handle = sp.Profile.Twitter
		}
		handles = append(handles, "@"+handle)
	}
	return strings.Join(handles, ", ")
}

// speakerCompanies joins the distinct non-empty companies of the talk's
// speakers, sorted.
func speakerCompanies(speakers []*domain.Speaker) string {
	seen := make(map[string]struct{})
	var companies []string
	for _, sp := range speakers {
		if sp.Profile == nil || sp.Profile.Company == "" {
			continue
		}
		if _, ok := seen[sp.Profile.Company]; ok {
			continue
		}
		seen[sp.Profile.Company] = struct{}{}
		companies = append(companies, sp.Profile.Company)
	}
	sort.Strings(companies)
	return strings.Join(companies, ", ")
}

// voteEntries renders vote rows for the report, one entry per row, in store
// order, unfiltered.
func voteEntries(votes []*domain.Vote) []domain.VoteEntry {
	entries := make([]domain.VoteEntry, 0, len(votes))
	for _, v := range votes {
		entries = append(entries, domain.VoteEntry{strconv.FormatInt(v.UserID, 10): v.Vote})
	}
	return entries
}
