package ui

// Package ui contains the Fyne-based adapter for the panel system. It wires
// the overlay surface, gesture routing, decoration, and frame animations to
// the core layout engine, and publishes container and environment changes on
// the signal bus.
