package rules

import (
	"fmt"
	"log/slog"

	"github.com/jttkim/AntServer/field"
	"github.com/jttkim/AntServer/model"
	"github.com/jttkim/AntServer/world"
)

// slotStrategies fixes the strategy each ant slot starts with.
var slotStrategies = [field.AntsPerTeam]model.Strategy{
	model.StrategyHunt, model.StrategyHunt, model.StrategyHunt,
	model.StrategyGatherSugar,
	model.StrategyGatherToxin,
	model.StrategyHunt, model.StrategyHunt, model.StrategyHunt,
	model.StrategyGatherSugar,
	model.StrategyGatherToxin,
	model.StrategyHunt, model.StrategyHunt, model.StrategyHunt,
	model.StrategyGatherSugar, model.StrategyGatherSugar,
	model.StrategyGatherToxin,
}

// StrategyFor returns the strategy assigned to an ant slot.
func StrategyFor(slot int) model.Strategy {
	if slot < 0 || slot >= len(slotStrategies) {
		return model.StrategyGatherSugar
	}
	return slotStrategies[slot]
}

// AssignStrategies gives every ant of the player's team that has no
// strategy yet its slot strategy. Ants that already have one keep it.
// It returns the number of ants newly assigned.
func AssignStrategies(v *world.View) int {
	n := 0
	for id, a := range v.Team().Ants {
		if a.Strategy != model.StrategyNone {
			continue
		}
		a.Strategy = StrategyFor(id)
		slog.Debug("strategy assigned", "team", a.Team, "ant", id, "strategy", a.Strategy)
		n++
	}
	return n
}

// UnknownStrategyError is logged when an ant carries a strategy the
// engine has no rule for; the ant falls back to gathering sugar.
type UnknownStrategyError struct {
	Strategy model.Strategy
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy %q, gathering sugar", e.Strategy)
}

func knownStrategy(s model.Strategy) bool {
	switch s {
	case model.StrategyHunt, model.StrategyGatherSugar, model.StrategyGatherToxin:
		return true
	}
	return false
}
