package platform

// Package platform contains device and canvas integration glue: orientation
// classification, mobile detection, and safe-area derivation from the canvas
// interactive area.
