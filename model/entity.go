package model

// Kind tags what occupies a tile.
type Kind uint8

const (
	KindNone Kind = iota
	KindAnt
	KindSugar
	KindToxin
	KindHome
)

func (k Kind) String() string {
	switch k {
	case KindAnt:
		return "ant"
	case KindSugar:
		return "sugar"
	case KindToxin:
		return "toxin"
	case KindHome:
		return "home"
	}
	return "none"
}

// KindSet is a set of kinds, e.g. the kinds a move must not step onto.
type KindSet uint8

func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

// Entity is anything with a position on the playfield. Ant is set for
// KindAnt; Team is set for KindAnt and KindHome.
type Entity struct {
	Kind Kind
	Pos  Point
	Ant  *Ant
	Team int
}

func (e Entity) String() string {
	switch e.Kind {
	case KindAnt:
		return e.Ant.String()
	case KindHome:
		return "home patch at " + e.Pos.String()
	}
	return e.Kind.String() + " at " + e.Pos.String()
}

func AntEntity(a *Ant) Entity { return Entity{Kind: KindAnt, Pos: a.Pos, Ant: a, Team: a.Team} }

func SugarAt(p Point) Entity { return Entity{Kind: KindSugar, Pos: p} }

func ToxinAt(p Point) Entity { return Entity{Kind: KindToxin, Pos: p} }

// Closest returns the entity nearest to from and whether there was any.
// Ties go to the earliest entity in the list.
func Closest(from Point, candidates []Entity) (Entity, bool) {
	best, bestD := Entity{}, -1
	for _, c := range candidates {
		if d := from.Distance(c.Pos); bestD < 0 || d < bestD {
			best, bestD = c, d
		}
	}
	return best, bestD >= 0
}
