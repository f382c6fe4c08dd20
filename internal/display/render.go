package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerrules/internal/deck"
	"github.com/lox/pokerrules/internal/game"
)

// Card renders one card with its suit symbol, red suits in red.
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.styles.RedCard.Render(c.Pretty())
	}
	return r.styles.BlackCard.Render(c.Pretty())
}

// Cards renders cards separated by spaces, or "-" when there are none.
func (r *Renderer) Cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Error renders an error message.
func (r *Renderer) Error(err error) string {
	return r.styles.Error.Render("error: " + err.Error())
}

// Prompt renders the input prompt.
func (r *Renderer) Prompt() string {
	return r.styles.Prompt.Render(">") + " "
}

// Header renders a title bar.
func (r *Renderer) Header(title string) string {
	return r.styles.Header.Render(title)
}

// Game renders the table as seen by viewer. A negative viewer sees only
// public information.
func (r *Renderer) Game(g *game.Game, viewer int) string {
	var b strings.Builder

	v := g.Variant()
	fmt.Fprintln(&b, r.Header(fmt.Sprintf("%s (%s)", v.Name, g.Limit())))
	if stage := g.Stage(); stage != nil {
		fmt.Fprintf(&b, "%s %d/%d %s\n", r.styles.Label.Render("Stage:"), g.StageIndex()+1, len(v.Stages), stage)
	} else {
		fmt.Fprintf(&b, "%s complete\n", r.styles.Label.Render("Stage:"))
	}
	fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Board:"), r.Cards(g.Board()))
	fmt.Fprintf(&b, "%s %d\n", r.styles.Label.Render("Pot:"), g.Pot())

	var seats []string
	for _, p := range g.Players() {
		seats = append(seats, r.seat(g, p, viewer))
	}
	fmt.Fprintln(&b, r.styles.Box.Render(strings.Join(seats, "\n")))

	if pots := g.SidePots(); len(pots) > 1 {
		for i, pot := range pots {
			fmt.Fprintf(&b, "%s %d eligible %v\n", r.styles.Label.Render(fmt.Sprintf("Pot %d:", i+1)), pot.Amount, pot.Eligible)
		}
	}
	fmt.Fprint(&b, r.next(g))
	return b.String()
}

func (r *Renderer) seat(g *game.Game, p *game.Player, viewer int) string {
	visible := g.HoleFor(p.Seat(), viewer)
	cards := make([]string, 0, len(p.Hole()))
	for _, h := range visible {
		cards = append(cards, r.Card(h.Card))
	}
	for range len(p.Hole()) - len(visible) {
		cards = append(cards, r.styles.Hidden.Render("??"))
	}
	hole := "-"
	if len(cards) > 0 {
		hole = strings.Join(cards, " ")
	}

	marker := "  "
	if actor := g.Actor(); actor != nil && actor.Seat() == p.Seat() {
		marker = r.styles.Actor.Render(">") + " "
	}
	line := fmt.Sprintf("%sSeat %d  stack %d  bet %d  %s", marker, p.Seat(), p.Stack(), p.Bet(), hole)

	switch p.Status() {
	case game.Mucked:
		return line + "  " + r.styles.Mucked.Render(p.Status().String())
	case game.Shown:
		return line + "  " + r.styles.Shown.Render(p.Status().String())
	}
	return line
}

func (r *Renderer) next(g *game.Game) string {
	if g.IsTerminal() {
		var stacks []string
		for _, p := range g.Players() {
			stacks = append(stacks, fmt.Sprint(p.Stack()))
		}
		return fmt.Sprintf("%s %s\n", r.styles.Label.Render("Final stacks:"), strings.Join(stacks, " "))
	}

	actor := g.Actor()
	if actor == nil {
		if seats := g.PendingHoleDeals(); len(seats) > 0 {
			return fmt.Sprintf("Dealer deals hole cards to seat %d\n", seats[0])
		}
		return fmt.Sprintf("Dealer deals %d board card(s)\n", g.PendingBoardCards())
	}

	switch g.Stage().(type) {
	case game.Bet:
		options := []string{fmt.Sprintf("call %d", g.CallAmount())}
		if g.CallAmount() == 0 {
			options[0] = "check"
		}
		if g.Can(game.BetRaise{Amount: g.MinRaiseTo()}) {
			options = append(options, fmt.Sprintf("raise to %d-%d", g.MinRaiseTo(), g.MaxRaiseTo()))
		}
		return fmt.Sprintf("Seat %d to act: %s\n", actor.Seat(), strings.Join(options, ", "))
	case game.Draw:
		return fmt.Sprintf("Seat %d to discard and draw\n", actor.Seat())
	default:
		return fmt.Sprintf("Seat %d to show or muck\n", actor.Seat())
	}
}

// Table renders rows as aligned columns under a header row.
func (r *Renderer) Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell + pad
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	lines := []string{line(header, &r.styles.Label)}
	for _, row := range rows {
		lines = append(lines, line(row, nil))
	}
	return strings.Join(lines, "\n") + "\n"
}
