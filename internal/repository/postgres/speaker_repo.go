package postgres

import (
	"context"
	"database/sql"

	"talkreport/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Speaker, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, p.user_id, p.company, p.twitter
		FROM talk_speakers ts
		JOIN users u ON u.id = ts.user_id
		LEFT JOIN attendee_profiles p ON p.user_id = u.id
		WHERE ts.talk_id = $1
		ORDER BY ts.id
	`
	rows, err := r.DB.QueryContext(ctx, query, talkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var speakers []*domain.Speaker
	for rows.Next() {
		sp := &domain.Speaker{}
		var profileID sql.NullInt64
		var company, twitter sql.NullString
		if err := rows.Scan(&sp.UserID, &sp.FirstName, &sp.LastName, &sp.Email, &profileID, &company, &twitter); err != nil {
			return nil, err
		}
		if profileID.Valid {
			sp.Profile = &domain.AttendeeProfile{Company: company.String, Twitter: twitter.String}
		}
		speakers = append(speakers, sp)
	}
	return speakers, rows.Err()
}
