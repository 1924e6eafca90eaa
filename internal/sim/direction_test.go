package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"Up": Up, "up": Up, "DOWN": Down, "lEfT": Left, "right": Right,
	} {
		d, ok := ParseDirection(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, d, in)
	}
	for _, in := range []string{"", "North", "U", "0", "Upward"} {
		_, ok := ParseDirection(in)
		assert.False(t, ok, in)
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := map[Direction][2]int{
		Up:    {0, 1},
		Down:  {0, -1},
		Left:  {-1, 0},
		Right: {1, 0},
	}
	for d, want := range cases {
		dx, dy := d.Delta()
		assert.Equal(t, want, [2]int{dx, dy}, d.String())
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Left", Left.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
