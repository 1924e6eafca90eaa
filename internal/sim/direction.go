package sim

import (
	"fmt"
	"strings"
)

// Direction is the way a spider is facing on the wall.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

var directionNames = [...]string{
	Up:    "Up",
	Left:  "Left",
	Down:  "Down",
	Right: "Right",
}

// ParseDirection matches a direction name case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), true
		}
	}
	return Up, false
}

// Constants are declared counter-clockwise, so a left turn is the next one.
func (d Direction) TurnLeft() Direction {
	return (d + 1) % 4
}

func (d Direction) TurnRight() Direction {
	return (d + 3) % 4
}

// Delta returns the unit step for one forward move.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
