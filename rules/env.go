package rules

import (
	"github.com/jttkim/AntServer/model"
	"github.com/jttkim/AntServer/world"
)

// AntEnv wraps one ant of the player's team and the turn it acts in. Its
// exported fields and methods are what rule conditions can refer to.
type AntEnv struct {
	Health   int
	HasSugar bool
	HasToxin bool
	Strategy string

	view *world.View
	ant  *model.Ant
}

func newAntEnv(v *world.View, a *model.Ant) AntEnv {
	return AntEnv{
		Health:   a.Health,
		HasSugar: a.HasSugar,
		HasToxin: a.HasToxin,
		Strategy: string(a.Strategy),
		view:     v,
		ant:      a,
	}
}

func (e AntEnv) AtHome() bool { return e.ant.Pos == e.view.Home().Pos }

func (e AntEnv) enemies() []model.Entity {
	others := e.view.OtherAnts()
	out := make([]model.Entity, len(others))
	for i, a := range others {
		out[i] = model.AntEntity(a)
	}
	return out
}

func (e AntEnv) enemyHomes() []model.Entity {
	teams := e.view.OtherTeams()
	out := make([]model.Entity, len(teams))
	for i, t := range teams {
		out[i] = t.Home.Entity()
	}
	return out
}

func (e AntEnv) moveToward(to model.Point, avoid ...model.Kind) byte {
	return MoveToward(e.view, e.ant.Pos, to, model.Kinds(avoid...))
}
