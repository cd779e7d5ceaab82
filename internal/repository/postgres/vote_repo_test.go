package postgres

import (
	"context"
	"database/sql"
	"testing"

	"talkreport/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_ListByTalkID(t *testing.T) {
	ctx := context.Background()
	voteColumns := []string{"talk_id", "user_id", "vote"}

	tests := []struct {
		name    string
		talkID  int64
		mock    func(mock sqlmock.Sqlmock)
		want    []*domain.Vote
		wantErr bool
	}{
		{
			name:   "success two votes",
			talkID: 7,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(voteColumns).
					AddRow(int64(7), int64(31), 8.5).
					AddRow(int64(7), int64(32), 10.0)
				mock.ExpectQuery(`FROM talk_votes`).
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
			want: []*domain.Vote{
				{TalkID: 7, UserID: 31, Vote: 8.5},
				{TalkID: 7, UserID: 32, Vote: 10.0},
			},
			wantErr: false,
		},
		{
			name:   "success empty",
			talkID: 8,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM talk_votes`).
					WithArgs(int64(8)).
					WillReturnRows(sqlmock.NewRows(voteColumns))
			},
			want:    nil,
			wantErr: false,
		},
		{
			name:   "db error",
			talkID: 7,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM talk_votes`).
					WithArgs(int64(7)).
					WillReturnError(sql.ErrConnDone)
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewVoteRepository(db)
			votes, err := repo.ListByTalkID(ctx, tt.talkID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, votes)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
