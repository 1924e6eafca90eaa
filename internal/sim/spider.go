package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Spider is a point on the wall with a facing. Once err is set, Execute
// leaves the spider as it is.
type Spider struct {
	x, y   int
	facing Direction
	err    error
}

// NewSpider parses "<x> <y> <Direction>". The position is not checked
// against any wall here; that happens in Wall.AddSpider.
func NewSpider(descriptor string) *Spider {
	s := &Spider{}
	if strings.TrimSpace(descriptor) == "" {
		s.err = fault(KindInput, "No spider starting position provided")
		return s
	}

	parts := strings.Fields(descriptor)
	if len(parts) < 3 {
		s.err = fault(KindInput, "Spider input must have 3 parts: X Y Direction")
		return s
	}

	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	facing, ok := ParseDirection(parts[2])
	if errX != nil || errY != nil || !ok {
		s.err = fault(KindInput, "Invalid spider input: X and Y must be integers, Direction must be valid")
		return s
	}

	s.facing = facing
	s.Place(x, y)
	return s
}

func (s *Spider) X() int               { return s.x }
func (s *Spider) Y() int               { return s.y }
func (s *Spider) Facing() Direction    { return s.facing }
func (s *Spider) Err() error           { return s.err }
func (s *Spider) Position() (int, int) { return s.x, s.y }

// Place moves the spider without any validation.
func (s *Spider) Place(x, y int) {
	s.x = x
	s.y = y
}

// SetError records a placement fault reported by a collaborator such as a wall.
func (s *Spider) SetError(message string) {
	s.err = fault(KindPlacement, message)
}

// Execute runs the L/R/F commands in order and stops at the first failure.
func (s *Spider) Execute(instructions string, b Bounds) {
	if s.err != nil {
		return
	}

	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		s.err = fault(KindExecution, "No movement instructions provided.")
		return
	}

	for _, cmd := range instructions {
		switch cmd {
		case 'L':
			s.facing = s.facing.TurnLeft()
		case 'R':
			s.facing = s.facing.TurnRight()
		case 'F':
			if !s.forward(b) {
				return
			}
		default:
			s.err = fault(KindExecution, fmt.Sprintf("Invalid command: %c", cmd))
			return
		}
	}
}

func (s *Spider) forward(b Bounds) bool {
	dx, dy := s.facing.Delta()
	nx, ny := s.x+dx, s.y+dy
	if !b.Contains(nx, ny) {
		s.err = fault(KindExecution, fmt.Sprintf("Spider cannot move outside the wall (attempted %d,%d).", nx, ny))
		return false
	}
	s.x, s.y = nx, ny
	return true
}

// Result is the machine format "<x> <y> <Facing>".
func (s *Spider) Result() string {
	return fmt.Sprintf("%d %d %s", s.x, s.y, s.facing)
}

func (s *Spider) String() string {
	return fmt.Sprintf("(%d,%d) facing: %s", s.x, s.y, s.facing)
}
