package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"talkreport/internal/domain"
)

type ticketService struct {
	tickets domain.TicketRepository
	orders  domain.OrderRepository
	logger  *slog.Logger
}

// NewTicketService creates a TicketService over the ticket and order repositories.
func NewTicketService(logger *slog.Logger, tickets domain.TicketRepository, orders domain.OrderRepository) domain.TicketService {
	return &ticketService{
		tickets: tickets,
		orders:  orders,
		logger:  logger,
	}
}

func (s *ticketService) HasUsableTicket(ctx context.Context, userID int64, email string) (bool, error) {
	// A ticket reassigned to the user's email settles it, whoever bought it.
	assigned, err := s.tickets.ListAssignmentsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("list assignments by email: %w", err)
	}
	if len(assigned) > 0 {
		return true, nil
	}

	owned, err := s.tickets.ListByOwner(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list owned tickets: %w", err)
	}
	bought, err := s.orders.ListCompletedOrderTickets(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list ordered tickets: %w", err)
	}
	// Owned and bought tickets may overlap; a duplicate only re-runs the same
	// check and cannot change the outcome.
	candidates := make([]*domain.Ticket, 0, len(owned)+len(bought))
	candidates = append(candidates, owned...)
	candidates = append(candidates, bought...)

	for _, tkt := range candidates {
		if !strings.HasPrefix(tkt.FareCode, domain.ConferenceFarePrefix) {
			continue
		}
		claimed, err := s.claimedBySomeoneElse(ctx, tkt, userID, email)
		if err != nil {
			return false, err
		}
		if !claimed {
			return true, nil
		}
	}
	return false, nil
}

// claimedBySomeoneElse resolves a ticket's canonical assignment row. No row
// means the ticket was never handed out; more than one row is an integrity
// violation that aborts the run.
func (s *ticketService) claimedBySomeoneElse(ctx context.Context, tkt *domain.Ticket, userID int64, email string) (bool, error) {
	rows, err := s.tickets.ListAssignmentsByTicketID(ctx, tkt.ID)
	if err != nil {
		return false, fmt.Errorf("list assignments for ticket %d: %w", tkt.ID, err)
	}
	if len(rows) == 0 {
		return false, nil
	}
	if len(rows) > 1 {
		return false, &domain.DuplicateTicketError{TicketID: tkt.ID, Count: len(rows)}
	}

	row := rows[0]
	if row.OwnerID != userID {
		return true, nil
	}
	if row.AssignedTo == "" {
		return false, nil
	}
	return row.AssignedTo != email, nil
}

func (s *ticketService) SpeakerTicketStatuses(ctx context.Context, speakers []*domain.Speaker) ([]bool, error) {
	statuses := make([]bool, 0, len(speakers))
	for _, sp := range speakers {
		ok, err := s.HasUsableTicket(ctx, sp.UserID, sp.Email)
		if err != nil {
			s.logger.Error("ticket lookup failed", "user_id", sp.UserID, "error", err)
			return nil, fmt.Errorf("ticket status for user %d: %w", sp.UserID, err)
		}
		statuses = append(statuses, ok)
	}
	return statuses, nil
}
