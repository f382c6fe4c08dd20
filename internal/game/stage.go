package game

import "fmt"

// Stage is one step of a variant's structure. The set of stage kinds is
// closed: HoleDeal, BoardDeal, Bet, Draw and Showdown.
type Stage interface {
	fmt.Stringer
	stage()
}

// HoleDeal deals Count cards to every active player.
type HoleDeal struct {
	Count  int
	FaceUp bool
}

// BoardDeal deals Count community cards.
type BoardDeal struct {
	Count int
}

// Bet is a betting round. Big rounds double the fixed-limit bet unit.
type Bet struct {
	Big bool
}

// Draw lets every active player discard and replace hole cards once.
type Draw struct{}

// Showdown has every remaining player show or muck.
type Showdown struct{}

func (HoleDeal) stage()  {}
func (BoardDeal) stage() {}
func (Bet) stage()       {}
func (Draw) stage()      {}
func (Showdown) stage()  {}

func (s HoleDeal) String() string {
	if s.FaceUp {
		return fmt.Sprintf("deal %d up", s.Count)
	}
	return fmt.Sprintf("deal %d down", s.Count)
}

func (s BoardDeal) String() string {
	return fmt.Sprintf("board %d", s.Count)
}

func (s Bet) String() string {
	if s.Big {
		return "bet (big)"
	}
	return "bet"
}

func (Draw) String() string     { return "draw" }
func (Showdown) String() string { return "showdown" }

func unknownStage(s Stage) string {
	return fmt.Sprintf("game: unknown stage %T", s)
}

// holeTarget is the hole card count every active player holds once stage
// index has completed.
func (g *Game) holeTarget(index int) int {
	n := 0
	for _, s := range g.variant.Stages[:index+1] {
		if d, ok := s.(HoleDeal); ok {
			n += d.Count
		}
	}
	return n
}

// boardTarget is the board size once stage index has completed.
func (g *Game) boardTarget(index int) int {
	n := 0
	for _, s := range g.variant.Stages[:index+1] {
		if d, ok := s.(BoardDeal); ok {
			n += d.Count
		}
	}
	return n
}

func (g *Game) openStage() {
	s := g.variant.Stages[g.stageIndex]
	g.queue = g.queue[:0]

	switch s := s.(type) {
	case HoleDeal, BoardDeal:
	case Bet:
		g.openBet(s)
	case Draw:
		for _, p := range g.players {
			if p.Active() {
				g.queue = append(g.queue, p.seat)
			}
		}
	case Showdown:
		g.openShowdown()
	default:
		panic(unknownStage(s))
	}
	g.logger.Debug("stage opened", "index", g.stageIndex, "stage", s, "queue", g.queue)
}

func (g *Game) closeStage() {
	s := g.variant.Stages[g.stageIndex]
	switch s.(type) {
	case HoleDeal, BoardDeal, Draw, Showdown:
	case Bet:
		g.collectBets()
	default:
		panic(unknownStage(s))
	}
	g.logger.Debug("stage closed", "index", g.stageIndex, "stage", s, "pot", g.pot)
}

func (g *Game) stageDone() bool {
	if g.activeCount() <= 1 {
		return true
	}
	s := g.variant.Stages[g.stageIndex]
	switch s.(type) {
	case HoleDeal:
		return len(g.PendingHoleDeals()) == 0
	case BoardDeal:
		return len(g.board) >= g.boardTarget(g.stageIndex)
	case Bet, Draw, Showdown:
		return len(g.queue) == 0
	default:
		panic(unknownStage(s))
	}
}

// openBet seats the opener and queues every player who still has a decision
// to make this round.
func (g *Game) openBet(s Bet) {
	g.maxDelta = g.smallBet
	if s.Big && g.limit == FixedLimit {
		g.maxDelta = g.bigBet
	}
	g.raiseCount = 0

	opener := -1
	if maxBet := g.maxBet(); maxBet > 0 {
		// the seat after the last highest bet, e.g. after the big blind
		for _, p := range g.players {
			if p.bet == maxBet {
				opener = (p.seat + 1) % len(g.players)
			}
		}
	} else {
		for _, p := range g.players {
			if g.relevant(p) {
				opener = p.seat
				break
			}
		}
	}
	if opener < 0 {
		return
	}

	for i := range len(g.players) {
		p := g.players[(opener+i)%len(g.players)]
		if g.relevant(p) {
			g.queue = append(g.queue, p.seat)
		}
	}
	if len(g.queue) > 0 {
		g.aggressor = -1
	}
}

// openShowdown queues active players starting from the last aggressor.
func (g *Game) openShowdown() {
	start := 0
	if g.aggressor >= 0 && g.players[g.aggressor].Active() {
		start = g.aggressor
	}
	for i := range len(g.players) {
		p := g.players[(start+i)%len(g.players)]
		if p.Active() {
			g.queue = append(g.queue, p.seat)
		}
	}
}

// relevant reports whether p still has a betting decision: p is active, has
// chips behind, and has not yet covered every other active player.
func (g *Game) relevant(p *Player) bool {
	if !p.Active() || p.stack == 0 {
		return false
	}
	cover := 0
	for _, q := range g.players {
		if q != p && q.Active() {
			cover = max(cover, q.startingStack)
		}
	}
	return p.put+p.bet < cover
}

// trimQueue drops queued bettors who no longer have a decision to make.
func (g *Game) trimQueue() {
	if _, ok := g.Stage().(Bet); !ok {
		return
	}
	for len(g.queue) > 0 && !g.relevant(g.players[g.queue[0]]) {
		g.queue = g.queue[1:]
	}
}

// advance closes every completed stage, opening the next, until a stage
// awaits input or the game ends.
func (g *Game) advance() {
	for !g.terminal {
		g.trimQueue()
		if !g.stageDone() {
			return
		}
		g.closeStage()
		g.stageIndex++
		if g.stageIndex == len(g.variant.Stages) {
			g.distribute()
			g.terminal = true
			g.queue = nil
			g.logger.Debug("game complete", "stacks", g.stacks())
			return
		}
		g.openStage()
	}
}
