package postgres

import (
	"context"
	"database/sql"

	"talkreport/internal/domain"
)

type voteRepository struct {
	DB *sql.DB
}

// NewVoteRepository returns a domain.VoteRepository implemented with Postgres.
func NewVoteRepository(db *sql.DB) domain.VoteRepository {
	return &voteRepository{DB: db}
}

func (r *voteRepository) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Vote, error) {
	query := `
		SELECT talk_id, user_id, vote
		FROM talk_votes
		WHERE talk_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, talkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var votes []*domain.Vote
	for rows.Next() {
		v := &domain.Vote{}
		if err := rows.Scan(&v.TalkID, &v.UserID, &v.Vote); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
