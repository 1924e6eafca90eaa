package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Wall is the rectangle (0,0)..(MaxX,MaxY) that spiders crawl on.

type Wall struct {
	maxX, maxY int
	err        error
	spiders    []Occupant
}

// Occupant is anything the wall can place and report back to.
type Occupant interface {
	Position() (int, int)
	SetError(message string)
}

// Bounds answers whether a coordinate is on the wall.
type Bounds interface {
	Contains(x, y int) bool
}

// NewWall parses "<maxX> <maxY>". A malformed descriptor yields a wall
// whose Err is set; such a wall rejects every spider.
func NewWall(descriptor string) *Wall {
	w := &Wall{}
	if strings.TrimSpace(descriptor) == "" {
		w.err = fault(KindInput, "No wall size provided.")
		return w
	}

	parts := strings.Fields(descriptor)
	if len(parts) < 2 {
		w.err = fault(KindInput, "Invalid wall size input.")
		return w
	}
	maxX, errX := strconv.Atoi(parts[0])
	maxY, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		w.err = fault(KindInput, "Invalid wall size input.")
		return w
	}

	// negative sizes are kept; such a wall simply contains no points
	w.maxX, w.maxY = maxX, maxY
	return w
}

func (w *Wall) MaxX() int  { return w.maxX }
func (w *Wall) MaxY() int  { return w.maxY }
func (w *Wall) Err() error { return w.err }

func (w *Wall) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x <= w.maxX && y <= w.maxY
}

// AddSpider places s on the wall. On failure the reason is recorded on s
// and the member list is left untouched.
func (w *Wall) AddSpider(s Occupant) bool {
	if w.err != nil {
		s.SetError(w.err.Error())
		return false
	}

	x, y := s.Position()
	if !w.Contains(x, y) {
		s.SetError(fmt.Sprintf("Spider position (%d,%d) is outside the wall.", x, y))
		return false
	}

	w.spiders = append(w.spiders, s)
	return true
}

// Spiders returns the placed spiders in insertion order.
func (w *Wall) Spiders() []Occupant {
	out := make([]Occupant, len(w.spiders))
	copy(out, w.spiders)
	return out
}

func (w *Wall) String() string {
	return fmt.Sprintf("%d x %d", w.maxX, w.maxY)
}
