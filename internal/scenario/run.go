package scenario

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"spiders/internal/sim"
)

// Outcome is the final state of one spider from a scenario.
type Outcome struct {
	Line         int
	Start        string
	Instructions string
	Spider       *sim.Spider
}

func (o Outcome) Err() error { return o.Spider.Err() }

// Report collects the outcomes of one scenario run in file order.
type Report struct {
	RunID    string
	Wall     *sim.Wall
	Outcomes []Outcome
}

// Failed counts spiders that ended with an error.
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err() != nil {
			n++
		}
	}
	return n
}

// runner carries the state shared by every spider in a file.
type runner struct {
	wall *sim.Wall
	log  zerolog.Logger
}

// Run builds the wall once and moves each spider on it in order. Spiders
// that are placed stay on the wall, so later ones share its member list.
func Run(f *File, logger zerolog.Logger) *Report {
	id := uuid.NewString()
	r := &runner{
		wall: sim.NewWall(f.Wall),
		log:  logger.With().Str("run_id", id).Logger(),
	}
	if err := r.wall.Err(); err != nil {
		r.log.Info().Int("line", f.Pos.Line).Err(err).Msg("wall rejected")
	} else {
		r.log.Debug().Stringer("wall", r.wall).Msg("wall built")
	}

	rep := &Report{RunID: id, Wall: r.wall}
	for _, run := range f.Runs {
		rep.Outcomes = append(rep.Outcomes, r.exec(run))
	}
	r.log.Debug().
		Int("spiders", len(rep.Outcomes)).
		Int("placed", len(r.wall.Spiders())).
		Int("failed", rep.Failed()).
		Msg("scenario finished")
	return rep
}

func (r *runner) exec(run *SpiderRun) Outcome {
	s := sim.NewSpider(run.Start)
	if s.Err() == nil && r.wall.AddSpider(s) {
		s.Execute(run.Instructions, r.wall)
	}

	ev := r.log.Debug()
	if err := s.Err(); err != nil {
		ev = r.log.Info().Err(err)
	}
	ev.Int("line", run.Pos.Line).Str("result", s.Result()).Msg("spider finished")

	return Outcome{
		Line:         run.Pos.Line,
		Start:        run.Start,
		Instructions: run.Instructions,
		Spider:       s,
	}
}
