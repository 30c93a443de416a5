package domain

import "github.com/golangid/orderpush/candishared"

// next status reachable from key, terminal status has no entry
var nextStatus = map[Status]Status{
	StatusPending: StatusReady,
	StatusReady:   StatusDone,
}

// CanTransition only one step forward along pending -> ready -> done
func CanTransition(from, to Status) bool {
	next, ok := nextStatus[from]
	return ok && next == to
}

// Transition validate requested status against current order status, order is never mutated
func Transition(order *Order, requested Status) (Status, error) {
	if !CanTransition(order.Status, requested) {
		return order.Status, &candishared.TransitionError{From: order.Status.String(), To: requested.String()}
	}
	return requested, nil
}
