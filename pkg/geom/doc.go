// Package geom holds the plain geometry types shared by the resize engine
// and its hosts: absolute rects, pointer positions, pixel sizes, drag deltas
// and the eight handle directions.
//
// Coordinates follow client conventions: x grows rightward, y grows
// downward, and a Rect stores its four edges rather than origin+extent so
// that boundary math can read edges directly.
package geom
