package world

import (
	"fmt"
	"sort"

	"github.com/jttkim/AntServer/model"
)

// Key is an ant's persistent identity.
type Key struct {
	Team int
	Ant  int
}

func (k Key) String() string { return fmt.Sprintf("%d:%d", k.Team, k.Ant) }

// IdentityTable tracks every ant ever sighted in a session. The server
// never reports deaths, so entries are kept for the whole session; only
// per-ant history can be bounded, via HistoryLimit.
//
// A table belongs to one session and is not safe for concurrent use.
type IdentityTable struct {
	ants map[Key]*model.Ant
	// HistoryLimit caps each ant's history. 0 keeps everything.
	HistoryLimit int
}

func NewIdentityTable() *IdentityTable {
	return &IdentityTable{ants: make(map[Key]*model.Ant)}
}

func (t *IdentityTable) Get(team, ant int) (*model.Ant, bool) {
	a, ok := t.ants[Key{Team: team, Ant: ant}]
	return a, ok
}

func (t *IdentityTable) Len() int { return len(t.ants) }

// Keys returns the tracked identities in team, then ant order.
func (t *IdentityTable) Keys() []Key {
	keys := make([]Key, 0, len(t.ants))
	for k := range t.ants {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Team != keys[j].Team {
			return keys[i].Team < keys[j].Team
		}
		return keys[i].Ant < keys[j].Ant
	})
	return keys
}

// Clone performs a deep copy of the table.
func (t *IdentityTable) Clone() *IdentityTable {
	out := &IdentityTable{
		ants:         make(map[Key]*model.Ant, len(t.ants)),
		HistoryLimit: t.HistoryLimit,
	}
	for k, a := range t.ants {
		out.ants[k] = a.Clone()
	}
	return out
}

func (t *IdentityTable) insert(a *model.Ant) {
	t.ants[Key{Team: a.Team, Ant: a.ID}] = a
}
