package model

import (
	"fmt"
	"strings"
)

// HomePatch is a team's fixed base tile.
type HomePatch struct {
	Team int
	Pos  Point
}

func (h HomePatch) Entity() Entity { return Entity{Kind: KindHome, Pos: h.Pos, Team: h.Team} }

func (h HomePatch) String() string { return "home patch at " + h.Pos.String() }

// Team is one team's row of a turn. Ants only holds the ants seen this turn.
type Team struct {
	ID       int
	Name     string
	Points   int
	AntCount int
	Home     HomePatch
	Ants     map[int]*Ant
}

func (t *Team) String() string {
	return fmt.Sprintf("team %d: %s, %d points, %d ants", t.ID, t.Name, t.Points, t.AntCount)
}

// Summary lists the team and one line per ant slot, marking empty slots dead.
func (t *Team) Summary(slots int) string {
	var b strings.Builder
	b.WriteString(t.String())
	b.WriteByte('\n')
	for id := 0; id < slots; id++ {
		if a, ok := t.Ants[id]; ok {
			fmt.Fprintf(&b, "  %s\n", a)
		} else {
			b.WriteString("  *** dead ***\n")
		}
	}
	return b.String()
}
