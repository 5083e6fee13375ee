package world

import (
	"fmt"
	"strings"

	"github.com/jttkim/AntServer/field"
	"github.com/jttkim/AntServer/model"
)

// View is one reconstructed turn. Ants holds only the ants reported this
// turn, team by team in slot order; ants that have died stay in the
// IdentityTable but never show up here.
type View struct {
	TeamID  int
	Teams   [field.Teams]*model.Team
	Ants    []*model.Ant
	Sugars  []model.Entity
	Toxins  []model.Entity
	Spatial map[model.Point]model.Entity
}

// Team returns the team this client plays.
func (v *View) Team() *model.Team { return v.Teams[v.TeamID] }

func (v *View) Home() model.HomePatch { return v.Team().Home }

func (v *View) OtherTeams() []*model.Team {
	out := make([]*model.Team, 0, len(v.Teams)-1)
	for _, t := range v.Teams {
		if t.ID != v.TeamID {
			out = append(out, t)
		}
	}
	return out
}

// OtherAnts returns the living ants of every other team.
func (v *View) OtherAnts() []*model.Ant {
	var out []*model.Ant
	for _, a := range v.Ants {
		if a.Team != v.TeamID {
			out = append(out, a)
		}
	}
	return out
}

// At reports what occupies p. Home patches win over ants, ants over
// sugar and toxin.
func (v *View) At(p model.Point) (model.Entity, bool) {
	e, ok := v.Spatial[p]
	return e, ok
}

func (v *View) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "teamId: %d\n", v.TeamID)
	fmt.Fprintf(&b, "teams: %d\n", len(v.Teams))
	fmt.Fprintf(&b, "ants: %d alive\n", len(v.Ants))
	fmt.Fprintf(&b, "sugar: %d\n", len(v.Sugars))
	fmt.Fprintf(&b, "toxin: %d\n", len(v.Toxins))
	fmt.Fprintf(&b, "home: %s\n", v.Home())
	return b.String()
}

func (v *View) TeamSummary() string { return v.Team().Summary(field.AntsPerTeam) }
