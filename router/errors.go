package router

import "errors"

// ErrInvalidTransaction indicates a mutation method was called while
// ProcessTransaction was already running (re-entrancy), e.g. from inside a
// connector callback (spec §7 "invalid-transaction").
var ErrInvalidTransaction = errors.New("router: mutation called during processTransaction")

// ErrUnknownConnector indicates a lookup referenced a connector id that is
// not registered.
var ErrUnknownConnector = errors.New("router: unknown connector id")

// ErrUnknownEndpoint indicates a connector Endpoint references a shape or
// junction id that is not registered in the obstacle registry.
var ErrUnknownEndpoint = errors.New("router: endpoint references an unknown shape or junction")

// ErrUnknownRoutingOption indicates SetRoutingOption was called with a
// RoutingOption value outside the recognised set (spec §6).
var ErrUnknownRoutingOption = errors.New("router: unknown routing option")

// ErrUnknownPenaltyKind indicates SetRoutingPenalty was called with a
// PenaltyKind value outside the recognised set (spec §6).
var ErrUnknownPenaltyKind = errors.New("router: unknown penalty kind")
