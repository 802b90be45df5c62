package lifecycle

import (
	"fmt"

	"github.com/avGenie/flexihire/internal/app/entity"
)

var (
	buyer   = []entity.Party{entity.PartyBuyer}
	seller  = []entity.Party{entity.PartySeller}
	gateway = []entity.Party{entity.PartyGateway}
)

type definition struct {
	kind        entity.OrderKind
	creator     entity.Party
	statuses    []entity.OrderStatus
	edges       map[entity.OrderStatus][]Edge
	cancellable []entity.OrderStatus
	cancelBy    []entity.Party
}

var definitions = []definition{
	{
		kind:    entity.KindOrder,
		creator: entity.PartyBuyer,
		statuses: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
			entity.StatusReview,
			entity.StatusRevision,
			entity.StatusCompleted,
			entity.StatusCancelled,
		},
		edges: map[entity.OrderStatus][]Edge{
			entity.StatusPending:          {{To: entity.StatusPaymentConfirmed, By: gateway}},
			entity.StatusPaymentConfirmed: {{To: entity.StatusInProgress, By: seller}},
			entity.StatusInProgress:       {{To: entity.StatusReview, By: seller}},
			entity.StatusReview: {
				{To: entity.StatusRevision, By: buyer},
				{To: entity.StatusCompleted, By: buyer},
			},
			entity.StatusRevision:  {{To: entity.StatusReview, By: seller}},
			entity.StatusCompleted: {},
			entity.StatusCancelled: {},
		},
		cancellable: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
			entity.StatusReview,
			entity.StatusRevision,
		},
		cancelBy: buyer,
	},
	{
		kind:    entity.KindPostOrder,
		creator: entity.PartyBuyer,
		statuses: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
			entity.StatusDelivered,
			entity.StatusCompleted,
			entity.StatusCancelled,
		},
		edges: map[entity.OrderStatus][]Edge{
			entity.StatusPending:          {{To: entity.StatusPaymentConfirmed, By: gateway}},
			entity.StatusPaymentConfirmed: {{To: entity.StatusInProgress, By: seller}},
			entity.StatusInProgress:       {{To: entity.StatusDelivered, By: seller}},
			entity.StatusDelivered: {
				{To: entity.StatusCompleted, By: buyer},
				{To: entity.StatusInProgress, By: buyer},
			},
			entity.StatusCompleted: {},
			entity.StatusCancelled: {},
		},
		cancellable: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
		},
		cancelBy: buyer,
	},
	{
		kind:    entity.KindJobApplication,
		creator: entity.PartySeller,
		statuses: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusShortlisted,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
			entity.StatusReview,
			entity.StatusCompleted,
			entity.StatusRejected,
			entity.StatusCancelled,
		},
		edges: map[entity.OrderStatus][]Edge{
			entity.StatusPending: {
				{To: entity.StatusShortlisted, By: buyer},
				{To: entity.StatusRejected, By: buyer},
			},
			entity.StatusShortlisted: {
				{To: entity.StatusPaymentConfirmed, By: gateway},
				{To: entity.StatusRejected, By: buyer},
			},
			entity.StatusPaymentConfirmed: {{To: entity.StatusInProgress, By: seller}},
			entity.StatusInProgress:       {{To: entity.StatusReview, By: seller}},
			entity.StatusReview: {
				{To: entity.StatusCompleted, By: buyer},
				{To: entity.StatusInProgress, By: buyer},
			},
			entity.StatusCompleted: {},
			entity.StatusRejected:  {},
			entity.StatusCancelled: {},
		},
		cancellable: []entity.OrderStatus{
			entity.StatusPending,
			entity.StatusShortlisted,
			entity.StatusPaymentConfirmed,
			entity.StatusInProgress,
		},
		// the applicant withdraws, the job owner calls it off
		cancelBy: []entity.Party{entity.PartyBuyer, entity.PartySeller},
	},
}

var tables = buildTables(definitions)

func buildTables(defs []definition) map[entity.OrderKind]*Table {
	out := make(map[entity.OrderKind]*Table, len(defs))
	for _, def := range defs {
		table := &Table{
			kind:        def.kind,
			initial:     def.statuses[0],
			creator:     def.creator,
			statuses:    def.statuses,
			edges:       def.edges,
			cancellable: make(map[entity.OrderStatus]struct{}, len(def.cancellable)),
			cancelBy:    def.cancelBy,
		}
		for _, status := range def.cancellable {
			table.cancellable[status] = struct{}{}
		}

		out[def.kind] = table
	}

	return out
}

// For returns the table of the given engagement kind.
func For(kind entity.OrderKind) (*Table, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return table, nil
}

func Kinds() []entity.OrderKind {
	out := make([]entity.OrderKind, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def.kind)
	}

	return out
}

// Confirmable lists, once each, the statuses the payment confirmation step
// may leave in any kind.
func Confirmable() []entity.OrderStatus {
	seen := make(map[entity.OrderStatus]struct{})

	var out []entity.OrderStatus
	for _, kind := range Kinds() {
		for _, status := range tables[kind].Confirmable() {
			if _, ok := seen[status]; ok {
				continue
			}

			seen[status] = struct{}{}
			out = append(out, status)
		}
	}

	return out
}
