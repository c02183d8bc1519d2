package sdf

import "image"

// AllocID identifies a rectangle handed out by a ShelfAllocator.
// IDs are never reused, so they stay valid as keys for a future
// deallocation API.
type AllocID uint32

// Allocation is a placed rectangle inside the allocator's canvas.
type Allocation struct {
	ID   AllocID
	Rect image.Rectangle
}

// ShelfAllocator implements shelf-based rectangle packing.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the first shelf that can take them;
// when none can, a new shelf is opened below the last one.
//
// ShelfAllocator is not safe for concurrent use.
type ShelfAllocator struct {
	width   int     // Total width of the canvas
	height  int     // Total height of the canvas
	spacing int     // Empty pixels kept between neighbouring rectangles
	shelves []shelf // List of shelves
	nextID  AllocID

	usedArea int
}

// shelf represents a horizontal strip in the canvas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelfAllocator creates a new allocator for the given dimensions.
// spacing is the gap left between rectangles; 0 packs them edge to edge.
func NewShelfAllocator(width, height, spacing int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		spacing: max(spacing, 0),
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// It reports false if the canvas has no room left for it.
// Zero or negative sizes are rounded up to one pixel.
//
// The algorithm:
//  1. Try to fit on an existing shelf with enough height
//  2. Grow the last shelf if the item is taller and room remains below
//  3. Otherwise open a new shelf; fail if it would not fit
func (a *ShelfAllocator) Allocate(w, h int) (Allocation, bool) {
	w, h = max(w, 1), max(h, 1)
	if w > a.width || h > a.height {
		return Allocation{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf has free space below it.
			if i != len(a.shelves)-1 || s.y+h > a.height {
				continue
			}
			s.height = h
		}
		return a.place(s, w, h), true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height + a.spacing
	}
	if newY+h > a.height {
		return Allocation{}, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h})
	return a.place(&a.shelves[len(a.shelves)-1], w, h), true
}

func (a *ShelfAllocator) place(s *shelf, w, h int) Allocation {
	rect := image.Rect(s.x, s.y, s.x+w, s.y+h)
	s.x += w + a.spacing
	a.usedArea += w * h
	a.nextID++
	return Allocation{ID: a.nextID, Rect: rect}
}

// Size returns the canvas dimensions managed by the allocator.
func (a *ShelfAllocator) Size() image.Point {
	return image.Pt(a.width, a.height)
}

// Count returns the number of rectangles handed out so far.
func (a *ShelfAllocator) Count() int {
	return int(a.nextID)
}

// Utilization returns the fraction of canvas area covered by allocations (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// RemainingHeight returns the vertical space remaining for new shelves.
func (a *ShelfAllocator) RemainingHeight() int {
	if len(a.shelves) == 0 {
		return a.height
	}
	last := a.shelves[len(a.shelves)-1]
	used := last.y + last.height + a.spacing
	if used >= a.height {
		return 0
	}
	return a.height - used
}
