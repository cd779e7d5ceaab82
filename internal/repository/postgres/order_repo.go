package postgres

import (
	"context"
	"database/sql"

	"talkreport/internal/domain"
)

type orderRepository struct {
	DB *sql.DB
}

// NewOrderRepository returns a domain.OrderRepository implemented with Postgres.
func NewOrderRepository(db *sql.DB) domain.OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) ListCompletedOrderTickets(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	// The inner join on order_items.ticket_id skips line items that carry no
	// ticket (donations, merchandise).
	query := `
		SELECT t.id, t.user_id, t.fare_code
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN tickets t ON t.id = oi.ticket_id
		WHERE o.user_id = $1 AND o.complete
		ORDER BY t.id
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
