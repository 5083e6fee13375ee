package agent

import (
	"fmt"

	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/rules"
	"github.com/jttkim/AntServer/world"
)

// Decider picks the action of every ant slot for one turn.
type Decider interface {
	Name() string
	Decide(v *world.View) ipc.Action
}

// NewDecider returns the bot registered under name.
func NewDecider(name string, s rules.Settings) (Decider, error) {
	switch name {
	case "jtk":
		b, err := NewJTK(s)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "donothing":
		return DoNothing{}, nil
	default:
		return nil, fmt.Errorf("unknown bot %q", name)
	}
}

// JTK gives each ant a sticky strategy by slot and lets the rule engine
// move it.
type JTK struct {
	Engine *rules.Engine
}

func NewJTK(s rules.Settings) (*JTK, error) {
	engine, err := rules.NewEngine(rules.CompileRules(s))
	if err != nil {
		return nil, fmt.Errorf("jtk rules: %w", err)
	}
	return &JTK{Engine: engine}, nil
}

func (b *JTK) Name() string { return "jtk" }

func (b *JTK) Decide(v *world.View) ipc.Action {
	rules.AssignStrategies(v)
	return b.Engine.Decide(v)
}

// DoNothing answers every turn with the no-op code for all slots.
type DoNothing struct{}

func (DoNothing) Name() string { return "donothing" }

func (DoNothing) Decide(*world.View) ipc.Action {
	var act ipc.Action
	for i := range act {
		act[i] = rules.CodeNone
	}
	return act
}
