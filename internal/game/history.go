package game

import "github.com/rocketscienceinc/stones/internal/entity"

type ActionKind string

const (
	ActionPlace  ActionKind = "place"
	ActionPass   ActionKind = "pass"
	ActionResign ActionKind = "resign"
)

// Stone is an occupied cell together with its color.
type Stone struct {
	Position entity.Position
	Color    entity.Color
}

// Action is one applied history entry. The Prev* fields and Captured are the inverse delta
// needed to restore the state that existed before the action.
type Action struct {
	Kind     ActionKind
	Color    entity.Color
	Position entity.Position
	Captured []Stone

	PrevPlayer entity.Color
	PrevKo     *entity.Position
	PrevPasses int
}

// History is the log of applied actions. Entries are only appended or popped from the end.
type History struct {
	actions []Action
}

func (that *History) Len() int {
	return len(that.actions)
}

func (that *History) push(action Action) {
	that.actions = append(that.actions, action)
}

func (that *History) last() (Action, bool) {
	if len(that.actions) == 0 {
		return Action{}, false
	}

	return that.actions[len(that.actions)-1], true
}

func (that *History) pop() {
	that.actions = that.actions[:len(that.actions)-1]
}

// Actions - returns a deep copy of the log, oldest first.
func (that *History) Actions() []Action {
	actions := make([]Action, len(that.actions))
	for i, action := range that.actions {
		actions[i] = action.clone()
	}

	return actions
}

func (that Action) clone() Action {
	clone := that
	clone.Captured = append([]Stone(nil), that.Captured...)
	clone.PrevKo = clonePosition(that.PrevKo)

	return clone
}

func clonePosition(pos *entity.Position) *entity.Position {
	if pos == nil {
		return nil
	}

	clone := *pos

	return &clone
}
