package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jttkim/AntServer/field"
	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/model"
	"github.com/jttkim/AntServer/world"
)

// Engine runs compiled rules for every ant of the player's team each turn.
// It holds no per-turn state: the move of an ant depends only on the view,
// the ant and the ant's strategy.
type Engine struct {
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Decide returns one action code per ant slot. Slots without a living ant
// get CodeStay.
func (e *Engine) Decide(v *world.View) ipc.Action {
	var act ipc.Action
	team := v.Team()
	for id := 0; id < field.AntsPerTeam; id++ {
		a, ok := team.Ants[id]
		if !ok {
			continue
		}
		act[id] = e.Act(v, a)
		slog.Debug("ant action", "ant", id, "code", act[id])
	}
	return act
}

// Act evaluates the rules for a single ant; the first rule whose condition
// holds picks the move.
func (e *Engine) Act(v *world.View, a *model.Ant) byte {
	if !knownStrategy(a.Strategy) {
		slog.Warn("strategy fallback", "ant", a.ID, "error", &UnknownStrategyError{Strategy: a.Strategy})
	}
	env := newAntEnv(v, a)
	for _, r := range e.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}
		slog.Debug("rule fired", "rule", r.Name, "ant", a.ID)
		return r.Action(env)
	}
	return CodeNone
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(AntEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
