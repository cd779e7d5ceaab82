package domain

import (
	"context"
	"fmt"
	"time"
)

// TalkStatus is the submission status of a talk.
type TalkStatus string

const (
	StatusProposed TalkStatus = "proposed"
	StatusAccepted TalkStatus = "accepted"
	StatusCanceled TalkStatus = "canceled"
)

// ParseTalkStatus validates a status value from the command line.
func ParseTalkStatus(s string) (TalkStatus, error) {
	switch TalkStatus(s) {
	case StatusProposed, StatusAccepted, StatusCanceled:
		return TalkStatus(s), nil
	}
	return "", fmt.Errorf("invalid talk status %q (choices: proposed, accepted, canceled)", s)
}

// Talk represents a submitted conference talk.
type Talk struct {
	ID            int64
	Conference    string
	Title         string
	SubTitle      string
	Status        TalkStatus
	Type          string
	AdminType     string
	Duration      int
	Level         string
	Language      string
	AbstractShort string
	AbstractExtra string
	SubCommunity  string
	Slug          string
	Tags          []TalkTag
}

// TalkTag is a tag attached to a talk, with its category.
type TalkTag struct {
	Name     string
	Category string
}

// ScheduleEvent is the scheduling of a talk: a time range plus the tracks
// (named session groupings) it runs in. A talk has at most one event.
type ScheduleEvent struct {
	ID          int64
	TalkID      int64
	StartTime   time.Time
	EndTime     time.Time
	TrackTitles []string
}

// AdminType is an administrative classification of a talk, distinct from its
// presentation-format type.
type AdminType struct {
	Code  string
	Label string
}

// AdminTypes is the ordered table of administrative classifications. The
// empty code is the default for regular talks and deliberately has no entry:
// talks without an admin type are grouped by presentation type instead.
var AdminTypes = []AdminType{
	{Code: "o", Label: "Opening session"},
	{Code: "c", Label: "Closing session"},
	{Code: "l", Label: "Lightning talk"},
	{Code: "k", Label: "Keynote"},
	{Code: "r", Label: "Recruiting session"},
	{Code: "m", Label: "Community session"},
	{Code: "s", Label: "Open space"},
	{Code: "e", Label: "Social event"},
	{Code: "x", Label: "Reserved slot"},
	{Code: "z", Label: "Sponsored session"},
}

// TalkType is a presentation-format type of a talk.
type TalkType struct {
	Code  string
	Label string
}

// TalkTypes is the ordered table of presentation types.
var TalkTypes = []TalkType{
	{Code: "t_30", Label: "Talk (30 mins)"},
	{Code: "t_45", Label: "Talk (45 mins)"},
	{Code: "t_60", Label: "Talk (60 mins)"},
	{Code: "i_60", Label: "Interactive (60 mins)"},
	{Code: "r_180", Label: "Training (180 mins)"},
	{Code: "p_60", Label: "Panel (60 mins)"},
	{Code: "p_90", Label: "Panel (90 mins)"},
	{Code: "p_180", Label: "Poster session (180 mins)"},
	{Code: "h_180", Label: "Help desk (180 mins)"},
}

// TypeGroup names a report bucket for talks without an admin type and lists
// the presentation types it collects.
type TypeGroup struct {
	Name  string
	Types []string
}

// TypeGroups is the fixed regrouping table. Its order is the order the group
// buckets appear in the report, after the admin-type buckets.
var TypeGroups = []TypeGroup{
	{Name: "talk", Types: []string{"t_30", "t_45", "t_60"}},
	{Name: "interactive", Types: []string{"i_60"}},
	{Name: "training", Types: []string{"r_180"}},
	{Name: "panel", Types: []string{"p_60", "p_90"}},
	{Name: "poster", Types: []string{"p_180"}},
	{Name: "helpdesk", Types: []string{"h_180"}},
}

var levelLabels = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

var languageLabels = map[string]string{
	"en": "English",
	"it": "Italian",
}

// AdminTypeLabel resolves an admin-type code to its display label. Unknown
// codes (including the empty default) resolve to themselves.
func AdminTypeLabel(code string) string {
	for _, at := range AdminTypes {
		if at.Code == code {
			return at.Label
		}
	}
	return code
}

// TalkTypeLabel resolves a presentation-type code to its display label.
func TalkTypeLabel(code string) string {
	for _, tt := range TalkTypes {
		if tt.Code == code {
			return tt.Label
		}
	}
	return code
}

// LevelLabel resolves an audience-level code to its display label.
func LevelLabel(code string) string {
	if label, ok := levelLabels[code]; ok {
		return label
	}
	return code
}

// LanguageLabel resolves a language code to its display label.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}

// TalkRepository defines read-only talk queries against the store.
type TalkRepository interface {
	// ListByAdminType returns talks of the conference with the given status
	// and admin-type code, tags loaded, in store order.
	ListByAdminType(ctx context.Context, conference string, status TalkStatus, adminType string) ([]*Talk, error)
	// ListByType returns talks of the conference with the given status and
	// presentation type whose admin type is empty, tags loaded, in store order.
	ListByType(ctx context.Context, conference string, status TalkStatus, talkType string) ([]*Talk, error)
	// ListAbstracts returns the ordered long-abstract bodies of a talk.
	ListAbstracts(ctx context.Context, talkID int64) ([]string, error)
	// GetScheduleByTalkID returns the talk's scheduled event with its track
	// titles, or ErrNotFound if the talk is unscheduled.
	GetScheduleByTalkID(ctx context.Context, talkID int64) (*ScheduleEvent, error)
}
