package game

import "github.com/rocketscienceinc/stones/internal/entity"

// Resources are the per-color counters tracked by the ledger.
type Resources struct {
	StonesRemaining int
	UndosRemaining  int
	Captured        int
}

// Ledger enforces stone and undo scarcity. Placements draw from stones, captures never refund them.
type Ledger struct {
	black Resources
	white Resources
}

func newLedger(stones, undos int) Ledger {
	initial := Resources{StonesRemaining: stones, UndosRemaining: undos}

	return Ledger{black: initial, white: initial}
}

func (that *Ledger) Resources(color entity.Color) Resources {
	if r := that.of(color); r != nil {
		return *r
	}

	return Resources{}
}

func (that *Ledger) of(color entity.Color) *Resources {
	switch color {
	case entity.Black:
		return &that.black
	case entity.White:
		return &that.white
	default:
		return nil
	}
}

func (that *Ledger) hasStone(color entity.Color) bool {
	return that.of(color).StonesRemaining > 0
}

func (that *Ledger) hasUndo(color entity.Color) bool {
	return that.of(color).UndosRemaining > 0
}

func (that *Ledger) takeStone(color entity.Color) {
	that.of(color).StonesRemaining--
}

func (that *Ledger) returnStone(color entity.Color) {
	that.of(color).StonesRemaining++
}

func (that *Ledger) spendUndo(color entity.Color) {
	that.of(color).UndosRemaining--
}

func (that *Ledger) addCaptured(color entity.Color, n int) {
	that.of(color).Captured += n
}
