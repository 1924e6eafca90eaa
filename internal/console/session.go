// Package console runs the line based interactive spider session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"spiders/internal/config"
	"spiders/internal/sim"
)

const clearScreen = "\033[H\033[2J"

// Session reads answers from in and writes prompts and results to out.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	cfg    config.ConsoleConfig
	gridSz int
	st     styles
	log    zerolog.Logger
}

func NewSession(in io.Reader, out io.Writer, cfg *config.Config, logger zerolog.Logger) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		cfg:    cfg.Console,
		gridSz: cfg.Grid.MaxSize,
		st:     newStyles(cfg.Console.Color),
		log:    logger,
	}
}

// Run repeats simulations until the user declines or input ends.
func (s *Session) Run() error {
	for {
		if err := s.once(); err != nil {
			return err
		}
		again, err := s.askToRepeat()
		if err != nil || !again {
			return err
		}
	}
}

// once performs a single wall/spider/instructions round.
func (s *Session) once() error {
	if s.cfg.Clear {
		s.print(clearScreen)
	}

	s.prompt("Please enter the wall size (e.g., '5 5'):")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	wall := sim.NewWall(line)
	if err := wall.Err(); err != nil {
		s.log.Info().Err(err).Str("input", line).Msg("wall rejected")
		s.fail(err)
		return nil
	}
	s.log.Debug().Stringer("wall", wall).Msg("wall built")
	s.printf("Designated wall size is: %d x %d\n\n", wall.MaxX(), wall.MaxY())

	s.prompt("Please enter the spider's starting position and direction (e.g., '1 2 Up'):")
	if line, err = s.readLine(); err != nil {
		return err
	}
	spider := sim.NewSpider(line)
	if err := spider.Err(); err != nil {
		s.log.Info().Err(err).Str("input", line).Msg("spider rejected")
		s.fail(err)
		return nil
	}
	if !wall.AddSpider(spider) {
		s.log.Info().Err(spider.Err()).Msg("spider not placed")
		s.fail(spider.Err())
		return nil
	}
	s.printf("The spider's starting position is (%d,%d) & is facing: %s\n\n", spider.X(), spider.Y(), spider.Facing())

	s.prompt("Please enter the movement instructions (e.g., 'LFLFLFLFF'):")
	instructions, err := s.readLine()
	if err != nil {
		return err
	}
	s.print("\n")

	spider.Execute(instructions, wall)
	if err := spider.Err(); err != nil {
		s.log.Info().Err(err).Str("instructions", instructions).Msg("spider stopped")
		s.printf("%s\n", s.st.errMsg.Render("Error: "+err.Error()))
	} else {
		s.log.Debug().Str("result", spider.Result()).Msg("spider finished")
		s.printf("%s\n", s.st.result.Render("Final position & direction: "+spider.Result()))
	}
	s.print("\n")

	if s.cfg.Grid {
		if g := RenderGrid(wall, s.gridSz, spider); g != "" {
			s.printf("%s\n", s.st.grid.Render(strings.TrimSuffix(g, "\n")))
			s.print("\n")
		}
	}
	return nil
}

func (s *Session) askToRepeat() (bool, error) {
	s.prompt("Do you want to run again? (y/n):")
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// readLine returns the next input line without its line ending. Lines have
// no length limit. End of input reads as an empty line; only read failures
// are returned as errors.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) fail(err error) {
	s.printf("%s\n", s.st.errMsg.Render("Error: "+err.Error()))
}

func (s *Session) prompt(text string) {
	s.printf("%s\n", s.st.prompt.Render(text))
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
