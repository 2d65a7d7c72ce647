// Package surface defines the device-independent drawing target that maze
// grids render to, plus three implementations.
//
// What:
//
//   - Surface: the fixed capability set a grid programs against (clear,
//     scale from logical space requirements, set colour, line, arc, filled
//     polygon, filled annulus segment, coordinate conversion, click
//     subscription, disposal).
//   - Recorder: keeps every call as an Op; the abstract instruction stream.
//   - SVG: accumulates SVG elements and serialises a standalone document.
//   - Raster: paints an *image.RGBA through golang.org/x/image/vector.
//   - Emitter: a per-instance event channel (no package-level bus).
//
// Geometry:
//
//   - Logical units are shape-specific (one square cell is 1×1).
//     SetSpaceRequirements picks a magnification so the required logical
//     extent fills the pixel area, leaving half a line width on each side.
//   - Angles are radians measured clockwise from north: a point at angle a
//     and distance r from (cx, cy) is (cx + r·sin a, cy − r·cos a).
//
// Input:
//
//   - Every implementation exposes Click(rawX, rawY, shift, alt), which
//     converts pixel coordinates back to logical units and notifies the
//     handlers registered with On.
//
// Concurrency:
//
//   - Surfaces are not safe for concurrent use; a grid owns its surface
//     for the grid's lifetime.
package surface
