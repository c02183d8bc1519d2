// Package sdf provides the building blocks of a single-channel glyph atlas:
// a distance-field encoder for coverage bitmaps, a shelf rectangle packer
// and the atlas canvas itself.
//
// # Distance fields
//
// Encode turns an antialiased coverage bitmap into a signed distance field
// using an exact Euclidean distance transform (Felzenszwalb and
// Huttenlocher) on two grids: distance to the nearest covered pixel and
// distance to the nearest uncovered one. Partially covered pixels seed the
// grids with subpixel offsets when Params.Preprocess is set, which keeps
// edges smooth at small sizes.
//
// The output is Pad pixels larger than the input on every side and maps
// Params.Radius pixels of distance onto the full byte range, with the
// outline at Cutoff*255:
//
//	ws := &sdf.Workspace{}
//	field, err := sdf.Encode(coverage, sdf.DefaultParams(4, 4), ws)
//
// # Packing
//
// ShelfAllocator places rectangles left to right on horizontal shelves.
// It never frees space; every allocation carries an AllocID for a future
// reclamation API.
//
// # Canvas
//
// Canvas owns the atlas pixels and a changed flag that is set on every
// write and cleared by Acquire, which is how renderers learn when to
// re-upload the texture.
package sdf
