package model

// CaptureMode describes how a sandbox binding is captured by a closure.
type CaptureMode string

const (
	// CaptureByReference captures the shared cell itself; later external
	// mutation is visible inside the closure.
	CaptureByReference CaptureMode = "by-reference"
	// CaptureByValue copies the value when the closure is created; later
	// external mutation is not visible inside the closure.
	CaptureByValue CaptureMode = "by-value"
)
