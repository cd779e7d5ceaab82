package postgres

import (
	"context"
	"database/sql"

	"talkreport/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

// NewTicketRepository returns a domain.TicketRepository implemented with Postgres.
func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{DB: db}
}

func (r *ticketRepository) ListAssignmentsByEmail(ctx context.Context, email string) ([]*domain.TicketAssignment, error) {
	query := `
		SELECT ta.id, ta.ticket_id, t.user_id, COALESCE(ta.assigned_to, '')
		FROM ticket_assignments ta
		JOIN tickets t ON t.id = ta.ticket_id
		WHERE ta.assigned_to = $1
		ORDER BY ta.id
	`
	return r.queryAssignments(ctx, query, email)
}

func (r *ticketRepository) ListAssignmentsByTicketID(ctx context.Context, ticketID int64) ([]*domain.TicketAssignment, error) {
	query := `
		SELECT ta.id, ta.ticket_id, t.user_id, COALESCE(ta.assigned_to, '')
		FROM ticket_assignments ta
		JOIN tickets t ON t.id = ta.ticket_id
		WHERE ta.ticket_id = $1
		ORDER BY ta.id
	`
	return r.queryAssignments(ctx, query, ticketID)
}

func (r *ticketRepository) queryAssignments(ctx context.Context, query string, arg any) ([]*domain.TicketAssignment, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var assignments []*domain.TicketAssignment
	for rows.Next() {
		a := &domain.TicketAssignment{}
		if err := rows.Scan(&a.ID, &a.TicketID, &a.OwnerID, &a.AssignedTo); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *ticketRepository) ListByOwner(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	query := `
		SELECT id, user_id, fare_code
		FROM tickets
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tickets []*domain.Ticket
	for rows.Next() {
		t := &domain.Ticket{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.FareCode); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
