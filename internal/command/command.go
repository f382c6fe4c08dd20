// Package command parses the text notation for game actions:
//
//	dh <seat> [cards]        deal hole cards (random when omitted)
//	db [cards]               deal board cards
//	br [amount]              bet or raise to amount (minimum when omitted)
//	cc                       check or call
//	f                        fold
//	dd [discards [draws]]    discard and draw; no discards stands pat
//	s [0|1]                  show or muck (automatic when omitted)
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/game"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

func syntaxError(line, format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}

// Parse turns one command line into an action.
func Parse(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, syntaxError(line, "empty command")
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "dh":
		if len(args) < 1 || len(args) > 2 {
			return nil, syntaxError(line, "usage: dh <seat> [cards]")
		}
		seat, err := strconv.Atoi(args[0])
		if err != nil || seat < 0 {
			return nil, syntaxError(line, "invalid seat %q", args[0])
		}
		a := game.DealHole{Seat: seat}
		if len(args) == 2 {
			if a.Cards, err = parseCards(line, args[1]); err != nil {
				return nil, err
			}
		}
		return a, nil

	case "db":
		if len(args) > 1 {
			return nil, syntaxError(line, "usage: db [cards]")
		}
		var a game.DealBoard
		if len(args) == 1 {
			var err error
			if a.Cards, err = parseCards(line, args[0]); err != nil {
				return nil, err
			}
		}
		return a, nil

	case "br":
		if len(args) > 1 {
			return nil, syntaxError(line, "usage: br [amount]")
		}
		var a game.BetRaise
		if len(args) == 1 {
			amount, err := strconv.Atoi(args[0])
			if err != nil || amount <= 0 {
				return nil, syntaxError(line, "invalid amount %q", args[0])
			}
			a.Amount = amount
		}
		return a, nil

	case "cc", "f":
		if len(args) > 0 {
			return nil, syntaxError(line, "%s takes no arguments", name)
		}
		if name == "f" {
			return game.Fold{}, nil
		}
		return game.CheckCall{}, nil

	case "dd":
		if len(args) > 2 {
			return nil, syntaxError(line, "usage: dd [discards [draws]]")
		}
		var (
			a   game.DiscardDraw
			err error
		)
		if len(args) >= 1 {
			if a.Discards, err = parseCards(line, args[0]); err != nil {
				return nil, err
			}
		}
		if len(args) == 2 {
			if a.Draws, err = parseCards(line, args[1]); err != nil {
				return nil, err
			}
		}
		return a, nil

	case "s":
		switch {
		case len(args) == 0:
			return game.ShowOrMuck{}, nil
		case len(args) == 1 && args[0] == "1":
			return game.ShowHand(), nil
		case len(args) == 1 && args[0] == "0":
			return game.MuckHand(), nil
		default:
			return nil, syntaxError(line, "usage: s [0|1]")
		}

	default:
		return nil, syntaxError(line, "unknown command %q", name)
	}
}

func parseCards(line, s string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, syntaxError(line, "%v", err)
	}
	return cards, nil
}

// Run parses and applies one line. Blank lines and lines starting with # are
// ignored.
func Run(g *game.Game, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	a, err := Parse(line)
	if err != nil {
		return err
	}
	return g.Apply(a)
}

// Replay applies lines in order and stops at the first failure.
func Replay(g *game.Game, lines ...string) error {
	for i, line := range lines {
		if err := Run(g, line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// ReplayReader applies every line read from r.
func ReplayReader(g *game.Game, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if err := Run(g, scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}
