package event

// Package event implements the in-process publish/subscribe bus carrying
// environment signals to the layout engine: orientation changes, software
// keyboard appearance, and container child/size changes. Subscriptions are
// explicit handles released deterministically on teardown; the bus performs
// no buffering and delivers synchronously on the caller's goroutine.
