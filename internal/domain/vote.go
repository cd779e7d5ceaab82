package domain

import "context"

// Vote is a community vote on a talk: one row per (user, talk) pair.
type Vote struct {
	TalkID int64
	UserID int64
	Vote   float64
}

// VoteRepository defines read-only vote queries against the store.
type VoteRepository interface {
	// ListByTalkID returns all vote rows for a talk in store order.
	ListByTalkID(ctx context.Context, talkID int64) ([]*Vote, error)
}
