package domain

import "context"

// Speaker is a user presenting a talk. A talk has one or more speakers in a
// store-defined order, which the report preserves.
type Speaker struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Profile   *AttendeeProfile
}

// AttendeeProfile is the optional attendee profile of a speaker. Speakers
// without one contribute no company and an empty twitter handle.
type AttendeeProfile struct {
	Company string
	Twitter string
}

// SpeakerRepository defines read-only speaker queries against the store.
type SpeakerRepository interface {
	// ListByTalkID returns all speakers of a talk, including co-speakers, in
	// the store's natural order.
	ListByTalkID(ctx context.Context, talkID int64) ([]*Speaker, error)
}
