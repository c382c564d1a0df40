package panel

// Package panel implements the core of the floating overlay panel system:
// the Controller owning the single active panel's lifecycle state machine,
// and the Engine translating lifecycle state, dock position, and environment
// obstructions into concrete frames, including interactive drag handling
// with snap-on-release. Rendering, decoration, and gesture plumbing live in
// the ui package behind the Host and Animator interfaces.
