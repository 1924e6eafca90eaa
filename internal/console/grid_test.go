package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spiders/internal/sim"
)

func TestRenderGrid(t *testing.T) {
	w := sim.NewWall("3 2")
	a := sim.NewSpider("0 0 Up")
	b := sim.NewSpider("3 2 Left")
	c := sim.NewSpider("9 9 Down")

	got := RenderGrid(w, 10, a, b, c, nil)
	want := "" +
		". . . <\n" +
		". . . .\n" +
		"^ . . .\n"
	assert.Equal(t, want, got)
}

func TestRenderGridSkipsUnrenderableWalls(t *testing.T) {
	assert.Empty(t, RenderGrid(sim.NewWall(""), 10))
	assert.Empty(t, RenderGrid(sim.NewWall("-1 3"), 10))
	assert.Empty(t, RenderGrid(sim.NewWall("10 2"), 10))
	assert.Empty(t, RenderGrid(sim.NewWall("9223372036854775807 1"), 40, sim.NewSpider("0 0 Up")))
	assert.Empty(t, RenderGrid(sim.NewWall("1 9223372036854775807"), 40))
	assert.NotEmpty(t, RenderGrid(sim.NewWall("9 9"), 10))
}
