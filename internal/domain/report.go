package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
)

// ReportOptions carries the per-run report switches.
type ReportOptions struct {
	// IncludeVotes adds the user_votes field to every talk record.
	IncludeVotes bool
}

// VoteEntry is a single vote row rendered for the report: the voting user's
// ID (decimal string) mapped to their vote value.
type VoteEntry map[string]float64

// TalkRecord is one talk as it appears in the report. All text fields hold
// native strings; encoding happens once, at serialization.
type TalkRecord struct {
	ID            int64    `json:"id"`
	AdminType     string   `json:"admin_type"`
	Type          string   `json:"type"`
	Duration      int      `json:"duration"`
	Level         string   `json:"level"`
	TrackTitle    string   `json:"track_title"`
	TimeRange     string   `json:"timerange"`
	Tags          []string `json:"tags"`
	URL           string   `json:"url"`
	TagCategories []string `json:"tag_categories"`
	SubCommunity  string   `json:"sub_community"`
	Title         string   `json:"title"`
	SubTitle      string   `json:"sub_title"`
	Status        string   `json:"status"`
	Language      string   `json:"language"`
	HaveTickets   []bool   `json:"have_tickets"`
	AbstractLong  []string `json:"abstract_long"`
	AbstractShort string   `json:"abstract_short"`
	AbstractExtra string   `json:"abstract_extra"`
	Speakers      string   `json:"speakers"`
	Companies     string   `json:"companies"`
	Emails        string   `json:"emails"`
	Twitters      string   `json:"twitters"`

	// UserVotes is emitted as user_votes only when votes were requested:
	// nil omits the field, an empty non-nil slice emits [].
	UserVotes []VoteEntry `json:"-"`
}

// MarshalJSON appends user_votes after the fixed fields when the tally was
// requested, and leaves it out entirely otherwise.
func (r *TalkRecord) MarshalJSON() ([]byte, error) {
	type plain TalkRecord
	if r.UserVotes == nil {
		return json.Marshal((*plain)(r))
	}
	return json.Marshal(struct {
		*plain
		UserVotes []VoteEntry `json:"user_votes"`
	}{(*plain)(r), r.UserVotes})
}

// ReportBucket is a named group of talk records in presentation order.
type ReportBucket struct {
	Name  string
	Talks []*TalkRecord
}

// Report is the report document: named buckets in insertion order, each
// keyed by talk ID in presentation order. Buckets are only added once their
// contents are final; empty buckets never enter a report.
type Report struct {
	buckets []ReportBucket
}

// AddBucket appends a bucket. Order of calls is the order of output keys.
func (r *Report) AddBucket(name string, talks []*TalkRecord) {
	r.buckets = append(r.buckets, ReportBucket{Name: name, Talks: talks})
}

// Buckets returns the buckets in insertion order.
func (r *Report) Buckets() []ReportBucket {
	return r.buckets
}

// TalkCount returns the number of talk records across all buckets.
func (r *Report) TalkCount() int {
	n := 0
	for _, b := range r.buckets {
		n += len(b.Talks)
	}
	return n
}

// MarshalJSON renders the document as a mapping from bucket name to a mapping
// from talk ID to talk record. encoding/json would sort map keys, so the
// object is written by hand to keep insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range r.buckets {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(b.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteByte('{')
		for j, t := range b.Talks {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strconv.FormatInt(t.ID, 10))
			buf.WriteString(`":`)
			rec, err := json.Marshal(t)
			if err != nil {
				return nil, err
			}
			buf.Write(rec)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ReportService builds the talk report for one conference.
type ReportService interface {
	BuildReport(ctx context.Context, conference string, status TalkStatus, opts ReportOptions) (*Report, error)
}
