// Package game implements the rules engine for multi-variant poker.
//
// A Game is a turn-based state machine over an ordered list of stages (hole
// dealing, board dealing, betting, drawing and showdown). Every change to a
// game goes through an Action: Verify checks legality without touching the
// game, and Game.Apply verifies, mutates, checks the chip and card invariants
// and then advances through every stage that has become complete. When the
// last stage completes, or only one player is left, the pot is distributed
// and the game is terminal.
//
// # Basic Usage
//
//	g, err := game.New(game.NoLimit, variant, 0, []int{1, 2}, []int{200, 100},
//	    game.WithRNG(rand.New(rand.NewSource(42))))
//	if err != nil {
//	    return err
//	}
//	err = g.Apply(game.DealHole{Seat: 0})
//	// ...
//	if g.IsTerminal() {
//	    for _, p := range g.Players() {
//	        fmt.Println(p.Seat(), p.Stack())
//	    }
//	}
//
// # Architecture
//
//   - Stage: closed set of stage kinds, dispatched with type switches
//   - Limit: fixed, pot and no-limit raise bounds
//   - Pot: side pot construction and award splitting
//   - Action: verify/apply pairs for dealer and player moves
//
// A Game is not safe for concurrent use; callers serialize access. The hand
// lookup tables it evaluates with are shared read-only across goroutines.
package game
