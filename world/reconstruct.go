// Package world rebuilds a queryable view of the playfield from each turn
// snapshot, re-linking ant records to the ants tracked in an IdentityTable.
package world

import (
	"fmt"

	"github.com/jttkim/AntServer/field"
	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/model"
)

// IdentityConflictError means a snapshot record resolved to a tracked ant
// whose identity differs from the record's. Local state and the server
// have diverged; the turn is abandoned with the table untouched.
type IdentityConflictError struct {
	Tracked model.AntState
	Got     model.AntState
}

func (e *IdentityConflictError) Error() string {
	return fmt.Sprintf("identity conflict: cannot update ant %d:%d from data on %d:%d",
		e.Tracked.Team, e.Tracked.ID, e.Got.Team, e.Got.ID)
}

type update struct {
	ant   *model.Ant // nil for a first sighting
	state model.AntState
}

// Reconstruct merges turn into table and returns the view of this turn.
// Every ant record is checked before the table is touched, so on error the
// table is exactly as it was before the call.
func Reconstruct(turn ipc.Turn, table *IdentityTable) (*View, error) {
	if turn.TeamID < 0 || int(turn.TeamID) >= field.Teams {
		return nil, fmt.Errorf("reconstruct: current team id %d out of range", turn.TeamID)
	}

	v := &View{TeamID: int(turn.TeamID), Spatial: make(map[model.Point]model.Entity)}
	for i, tr := range turn.Teams {
		v.Teams[i] = &model.Team{
			ID:       i,
			Name:     tr.Name,
			Points:   int(tr.Points),
			AntCount: int(tr.AntCount),
			Home:     model.HomePatch{Team: i, Pos: field.HomeBase[i]},
			Ants:     make(map[int]*model.Ant),
		}
	}

	var updates []update
	for _, rec := range turn.Objects {
		o := field.Decode(rec)
		switch {
		case o.IsAnt:
			s := model.AntState{Team: o.Team, ID: o.Ant, Pos: o.Pos(), Health: o.Health, HasSugar: o.HasSugar, HasToxin: o.HasToxin}
			a, ok := table.Get(o.Team, o.Ant)
			if ok && !a.Matches(s) {
				return nil, &IdentityConflictError{Tracked: a.State(), Got: s}
			}
			updates = append(updates, update{ant: a, state: s})
		case o.IsSugar:
			v.Sugars = append(v.Sugars, model.SugarAt(o.Pos()))
		case o.IsToxin:
			v.Toxins = append(v.Toxins, model.ToxinAt(o.Pos()))
		}
	}

	for _, u := range updates {
		a := u.ant
		if a == nil {
			// A repeated record of a fresh ant finds the one inserted just before.
			if seen, ok := table.Get(u.state.Team, u.state.ID); ok {
				a = seen
				a.Apply(u.state)
			} else {
				a = model.NewAnt(u.state)
				table.insert(a)
			}
		} else {
			a.Apply(u.state)
		}
		a.TrimHistory(table.HistoryLimit)
		v.Teams[a.Team].Ants[a.ID] = a
	}

	for _, team := range v.Teams {
		for id := 0; id < field.AntsPerTeam; id++ {
			if a, ok := team.Ants[id]; ok {
				v.Ants = append(v.Ants, a)
			}
		}
	}

	for _, e := range v.Sugars {
		v.Spatial[e.Pos] = e
	}
	for _, e := range v.Toxins {
		v.Spatial[e.Pos] = e
	}
	for _, a := range v.Ants {
		v.Spatial[a.Pos] = model.AntEntity(a)
	}
	for _, team := range v.Teams {
		v.Spatial[team.Home.Pos] = team.Home.Entity()
	}
	return v, nil
}
