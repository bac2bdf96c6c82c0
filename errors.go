package tinydraw

import "errors"

// Errors returned while building a Canvas. Each failure wraps exactly one of
// these together with the host error that caused it, so callers can branch
// with errors.Is.
var (
	// ErrContainerNotFound is returned when no node has the container id.
	ErrContainerNotFound = errors.New("tinydraw: container not found")

	// ErrInvalidContainer is returned when the container cannot be styled.
	ErrInvalidContainer = errors.New("tinydraw: invalid container")

	// ErrSurfaceCreationFailed is returned when a canvas element or its 2D
	// context cannot be created or styled.
	ErrSurfaceCreationFailed = errors.New("tinydraw: surface creation failed")

	// ErrAttachFailed is returned when a surface cannot be appended to the
	// container.
	ErrAttachFailed = errors.New("tinydraw: attach failed")

	// ErrEventRegistrationFailed is returned when the resize listener cannot
	// be registered.
	ErrEventRegistrationFailed = errors.New("tinydraw: event registration failed")

	// ErrScalingFailed is returned when device pixel correction fails.
	ErrScalingFailed = errors.New("tinydraw: scaling failed")

	// ErrInvalidDimensions is returned for a negative width or height.
	ErrInvalidDimensions = errors.New("tinydraw: invalid dimensions")

	// ErrNoDocument is returned when no host document is available.
	ErrNoDocument = errors.New("tinydraw: no host document")

	// ErrCanvasClosed is returned by operations on a closed canvas.
	ErrCanvasClosed = errors.New("tinydraw: canvas is closed")

	// ErrSnapshotUnsupported is returned when the host cannot read pixels back.
	ErrSnapshotUnsupported = errors.New("tinydraw: host does not support pixel readback")
)

// Errors returned by ParseHex.
var (
	// ErrInvalidFormat is returned for a string of the wrong length or
	// without a leading '#'.
	ErrInvalidFormat = errors.New("tinydraw: invalid hex color format")

	// ErrParseFailure is returned when a digit is not hexadecimal.
	ErrParseFailure = errors.New("tinydraw: invalid hex digit")
)
