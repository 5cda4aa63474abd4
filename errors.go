package fontatlas

import "errors"

// Sentinel errors for the fontatlas package. Note that running out of
// atlas space is not an error: Reserve reports it as a normal Outcome
// and Render degrades the affected tiles to outline fallbacks.
var (
	// ErrNilSurfaceCreator is returned by NewRenderer when no surface
	// creator is provided.
	ErrNilSurfaceCreator = errors.New("fontatlas: surface creator is nil")

	// ErrNilCanvas is returned by Render when the destination canvas is nil.
	ErrNilCanvas = errors.New("fontatlas: canvas is nil")

	// ErrNilTileSource is returned by Render when the tile source is nil.
	ErrNilTileSource = errors.New("fontatlas: tile source is nil")
)
