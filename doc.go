// Package tinydraw mounts a stack of drawing surfaces into a page container.
//
// # Overview
//
// A Canvas owns three surfaces of the same logical size: a draw surface for
// content, an interaction surface stacked on top of it for transient
// feedback, and an undisplayed cache surface for offscreen work. Every
// backing store is sized for the device pixel ratio and carries a matching
// scale transform, so drawing code works in logical units and stays sharp
// on high density displays.
//
// # Quick Start
//
//	import tinydraw "github.com/zeronehost/tiny-draw"
//
//	c, err := tinydraw.New("app", 300, 150)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	// Map a pointer event into surface coordinates.
//	x, y := c.Offset().ToLocal(ev.PageX, ev.PageY)
//
// # Hosts
//
// The page is reached through the capability interfaces of the host
// package. Backends register themselves on import:
//
//   - host/jshost: the browser document, under js/wasm
//   - host/memhost: an in-memory page for tests and tools
//
// New opens the highest priority available backend unless WithDocument
// names one.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the container
//   - X increases right
//   - Y increases down
//   - Offsets are in CSS pixels and may be negative
package tinydraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
