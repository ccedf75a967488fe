// Package text runs a session as a line-buffered loop: each input line is
// a run of command characters, and the board is printed after every line.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/niwa/internal/game"
)

// Result reports how a loop ended.
type Result struct {
	Cleared bool
	Quit    bool // the quit command was given
	Score   int
	Moves   int
	Casts   int
}

// Run reads commands from in until the room is cleared, the quit key is
// read, in is exhausted or ctx is cancelled. Characters after a quit or a
// clear on the same line are ignored.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *game.Session, keys game.Keys, logger *log.Logger) (Result, error) {
	sc := bufio.NewScanner(in)

	if err := render(out, s, keys); err != nil {
		return result(s), err
	}

	for {
		if err := ctx.Err(); err != nil {
			return result(s), err
		}
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return result(s), err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return result(s), fmt.Errorf("text: reading input: %w", err)
			}
			fmt.Fprintln(out)
			return result(s), nil
		}

		quit := false
		for _, r := range sc.Text() {
			cmd := keys.Command(r)
			if cmd == game.CmdNone {
				continue
			}
			turn := s.Apply(cmd)
			logTurn(logger, turn)
			if turn.Cast != nil {
				fmt.Fprintf(out, "cast %s: %s\n", turn.Cast.Dir, describe(*turn.Cast))
			}
			if turn.Quit {
				quit = true
				break
			}
			if s.Cleared() {
				break
			}
		}

		if quit {
			res := result(s)
			res.Quit = true
			return res, nil
		}
		if err := render(out, s, keys); err != nil {
			return result(s), err
		}
		if s.Cleared() {
			fmt.Fprintf(out, "Cleared! Score: %d\n", s.Score())
			return result(s), nil
		}
	}
}

func result(s *game.Session) Result {
	return Result{
		Cleared: s.Cleared(),
		Score:   s.Score(),
		Moves:   s.Moves(),
		Casts:   s.Casts(),
	}
}

func logTurn(logger *log.Logger, t game.Turn) {
	switch {
	case t.Cast != nil:
		logger.Debug("Cast", "dir", t.Cast.Dir, "outcome", t.Cast.Outcome, "hits", t.Cast.Hits)
	case t.Command == game.CmdToggleCast, t.Quit:
	case !t.Moved:
		logger.Debug("Move rejected", "command", t.Command)
	}
}

func describe(r game.CastResult) string {
	switch r.Outcome {
	case game.CastAbsorbedByWall:
		return fmt.Sprintf("region %d sealed (%d hit)", r.Region, r.Hits)
	case game.CastAbsorbedByTerrain:
		return fmt.Sprintf("stopped by terrain at %s", r.Stop)
	default:
		return "left the room"
	}
}

func render(out io.Writer, s *game.Session, keys game.Keys) error {
	var b strings.Builder
	for _, row := range s.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}

	v, e, c := s.RegionSummary()
	fmt.Fprintf(&b, "score %d  moves %d  regions %d open / %d sealed / %d done",
		s.Score(), s.Moves(), v, e, c)
	if s.Casting() {
		b.WriteString("  [cast]")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "keys: %c%c%c%c move, %c cast, %c quit\n",
		keys.North, keys.West, keys.South, keys.East, keys.Cast, keys.Quit)

	_, err := io.WriteString(out, b.String())
	return err
}
