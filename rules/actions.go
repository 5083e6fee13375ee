package rules

import (
	"log/slog"

	"github.com/jttkim/AntServer/model"
)

// ActionStay holds position with the explicit stay code.
func ActionStay(env AntEnv) byte {
	return CodeStay
}

// ActionRetreat heads home to heal, keeping clear of ants and toxin.
func ActionRetreat(env AntEnv) byte {
	return env.moveToward(env.view.Home().Pos, model.KindAnt, model.KindToxin)
}

// ActionHunt chases the nearest enemy ant. Sugar and toxin are in the way;
// other ants are what we are after.
func ActionHunt(env AntEnv) byte {
	target, ok := model.Closest(env.ant.Pos, env.enemies())
	if !ok {
		slog.Warn("no ants to hunt, gathering sugar then", "ant", env.ant.ID)
		return gatherSugar(env)
	}
	slog.Debug("hunting", "ant", env.ant.String(), "target", target.String())
	return env.moveToward(target.Pos, model.KindToxin, model.KindSugar)
}

// ActionDeliverToxin carries toxin to the nearest enemy home patch.
func ActionDeliverToxin(env AntEnv) byte {
	target, ok := model.Closest(env.ant.Pos, env.enemyHomes())
	if !ok {
		return gatherSugar(env)
	}
	slog.Debug("delivering toxin", "ant", env.ant.ID, "target", target.String())
	return env.moveToward(target.Pos, model.KindAnt, model.KindToxin)
}

// ActionSeekToxin walks to the nearest toxin, stepping around ants and sugar.
func ActionSeekToxin(env AntEnv) byte {
	target, ok := model.Closest(env.ant.Pos, env.view.Toxins)
	if !ok {
		slog.Warn("no toxins, gathering sugar then", "ant", env.ant.ID)
		return gatherSugar(env)
	}
	return env.moveToward(target.Pos, model.KindAnt, model.KindSugar)
}

// ActionGatherSugar is the fallback for every ant no earlier rule claimed.
func ActionGatherSugar(env AntEnv) byte {
	return gatherSugar(env)
}

func gatherSugar(env AntEnv) byte {
	if env.HasSugar {
		if env.AtHome() {
			return CodeStay
		}
		return env.moveToward(env.view.Home().Pos, model.KindAnt, model.KindToxin)
	}
	target, ok := model.Closest(env.ant.Pos, env.view.Sugars)
	if !ok {
		slog.Warn("no sugar to gather, doing nothing then", "ant", env.ant.ID)
		return CodeNone
	}
	return env.moveToward(target.Pos, model.KindAnt, model.KindToxin)
}
