package model

// Package model defines domain data structures used across the panel system:
// presentation modes, lifecycle states, dock positions, and the geometry
// value types consumed by the layout engine. Structures are designed for
// direct use in frame computation and explicit state transitions.
