// Package lifecycle holds the static status transition tables of engagements.
// A table is pure: it keeps no state and performs no I/O.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avGenie/flexihire/internal/app/entity"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPartyNotAllowed   = errors.New("party is not allowed to perform the transition")
	ErrUnknownKind       = errors.New("unknown engagement kind")
)

// TransitionError names the rejected move and the moves the caller could
// make instead. It matches ErrInvalidTransition.
type TransitionError struct {
	Kind     entity.OrderKind
	From     entity.OrderStatus
	To       entity.OrderStatus
	Allowed  []entity.OrderStatus
	Terminal bool
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s cannot move from %q to %q", e.Kind, e.From, e.To)

	switch {
	case e.Terminal:
		return msg + ": status is terminal"
	case len(e.Allowed) != 0:
		allowed := make([]string, 0, len(e.Allowed))
		for _, status := range e.Allowed {
			allowed = append(allowed, string(status))
		}

		return msg + ", allowed: " + strings.Join(allowed, ", ")
	default:
		return msg
	}
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type Edge struct {
	To entity.OrderStatus
	By []entity.Party
}

func (e Edge) allows(parties []entity.Party) bool {
	for _, allowed := range e.By {
		for _, party := range parties {
			if allowed == party {
				return true
			}
		}
	}

	return false
}

type Table struct {
	kind        entity.OrderKind
	initial     entity.OrderStatus
	creator     entity.Party
	statuses    []entity.OrderStatus
	edges       map[entity.OrderStatus][]Edge
	cancellable map[entity.OrderStatus]struct{}
	cancelBy    []entity.Party
}

func (t *Table) Kind() entity.OrderKind {
	return t.kind
}

// Initial is the status a new record starts in.
func (t *Table) Initial() entity.OrderStatus {
	return t.initial
}

// Creator is the party that creates the record and may delete it while pending.
func (t *Table) Creator() entity.Party {
	return t.creator
}

func (t *Table) Statuses() []entity.OrderStatus {
	out := make([]entity.OrderStatus, len(t.statuses))
	copy(out, t.statuses)

	return out
}

func (t *Table) Valid(status entity.OrderStatus) bool {
	for _, s := range t.statuses {
		if s == status {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no edge and no cancellation leaves the status.
// A status missing from the table is terminal.
func (t *Table) IsTerminal(status entity.OrderStatus) bool {
	if _, ok := t.cancellable[status]; ok {
		return false
	}

	return len(t.edges[status]) == 0
}

// Admit decides whether any of the parties may move the record from one
// status to another.
func (t *Table) Admit(from, to entity.OrderStatus, parties ...entity.Party) error {
	for _, edge := range t.edges[from] {
		if edge.To != to {
			continue
		}

		if !edge.allows(parties) {
			return fmt.Errorf("%w: %s from %q to %q", ErrPartyNotAllowed, t.kind, from, to)
		}

		return nil
	}

	return &TransitionError{
		Kind:     t.kind,
		From:     from,
		To:       to,
		Allowed:  t.Allowed(from, parties...),
		Terminal: t.IsTerminal(from),
	}
}

// Allowed lists the targets the parties may move the record to.
func (t *Table) Allowed(from entity.OrderStatus, parties ...entity.Party) []entity.OrderStatus {
	var out []entity.OrderStatus
	for _, edge := range t.edges[from] {
		if edge.allows(parties) {
			out = append(out, edge.To)
		}
	}

	return out
}

// AdmitCancel applies the cancellation rule, which bypasses the edge list.
func (t *Table) AdmitCancel(from entity.OrderStatus, parties ...entity.Party) error {
	if !t.CanCancel(from) {
		return &TransitionError{
			Kind:     t.kind,
			From:     from,
			To:       entity.StatusCancelled,
			Allowed:  t.Allowed(from, parties...),
			Terminal: t.IsTerminal(from),
		}
	}

	edge := Edge{To: entity.StatusCancelled, By: t.cancelBy}
	if !edge.allows(parties) {
		return fmt.Errorf("%w: %s from %q to %q", ErrPartyNotAllowed, t.kind, from, entity.StatusCancelled)
	}

	return nil
}

func (t *Table) CanCancel(from entity.OrderStatus) bool {
	_, ok := t.cancellable[from]

	return ok
}

// Confirmable lists the statuses the payment confirmation step may leave.
func (t *Table) Confirmable() []entity.OrderStatus {
	var out []entity.OrderStatus
	for _, status := range t.statuses {
		for _, edge := range t.edges[status] {
			if edge.To == entity.StatusPaymentConfirmed && edge.allows([]entity.Party{entity.PartyGateway}) {
				out = append(out, status)
				break
			}
		}
	}

	return out
}

func (t *Table) IsConfirmable(status entity.OrderStatus) bool {
	for _, s := range t.Confirmable() {
		if s == status {
			return true
		}
	}

	return false
}
