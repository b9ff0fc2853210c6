package engine

import "errors"

var (
	// ErrMissingComponent is returned when an entity lacks a component a system requires
	ErrMissingComponent = errors.New("missing component")

	// ErrDegenerateNormal marks a contact whose collapsed normal has zero length
	ErrDegenerateNormal = errors.New("degenerate contact normal")

	// ErrDeadEntity is returned for operations on destroyed or never-created entities
	ErrDeadEntity = errors.New("entity not alive")
)
