package domain

import (
	"context"
	"fmt"
)

// ConferenceFarePrefix marks the fare codes of conference-admission tickets.
// Only tickets whose fare code starts with it count toward speaker
// eligibility.
const ConferenceFarePrefix = "T"

// Ticket is a purchased ticket, owned by a user and carrying a fare code.
type Ticket struct {
	ID       int64
	UserID   int64
	FareCode string
}

// TicketAssignment is the canonical conference-ticket record for a ticket.
// It resolves current ownership and carries the reassignment target:
// an empty AssignedTo means the ticket was never handed to someone else.
type TicketAssignment struct {
	ID         int64
	TicketID   int64
	OwnerID    int64
	AssignedTo string
}

// DuplicateTicketError reports a ticket identifier resolving to more than one
// canonical assignment row. This is a store integrity violation: the resolver
// must abort rather than pick one of the rows.
type DuplicateTicketError struct {
	TicketID int64
	Count    int
}

func (e *DuplicateTicketError) Error() string {
	return fmt.Sprintf("ticket %d resolves to %d assignment rows, expected at most one", e.TicketID, e.Count)
}

// TicketRepository defines read-only ticket queries against the store.
type TicketRepository interface {
	// ListAssignmentsByEmail returns the assignment rows whose reassignment
	// target is the given email.
	ListAssignmentsByEmail(ctx context.Context, email string) ([]*TicketAssignment, error)
	// ListAssignmentsByTicketID returns the canonical assignment rows for a
	// ticket, joined with the owning ticket. More than one row is an
	// integrity violation the caller must surface.
	ListAssignmentsByTicketID(ctx context.Context, ticketID int64) ([]*TicketAssignment, error)
	// ListByOwner returns the tickets owned outright by a user.
	ListByOwner(ctx context.Context, userID int64) ([]*Ticket, error)
}

// OrderRepository defines read-only order queries against the store.
type OrderRepository interface {
	// ListCompletedOrderTickets returns the tickets reachable through the
	// user's completed orders, skipping line items without a ticket.
	ListCompletedOrderTickets(ctx context.Context, userID int64) ([]*Ticket, error)
}

// TicketService decides whether users hold usable conference tickets.
type TicketService interface {
	// HasUsableTicket reports whether the user currently holds a usable
	// conference-admission ticket: one reassigned to their email, or one they
	// own or bought that is not claimed by someone else.
	HasUsableTicket(ctx context.Context, userID int64, email string) (bool, error)
	// SpeakerTicketStatuses returns one flag per speaker, in speaker order,
	// not deduplicated across talks sharing speakers.
	SpeakerTicketStatuses(ctx context.Context, speakers []*Speaker) ([]bool, error)
}
