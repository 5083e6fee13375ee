package model

import "fmt"

// Strategy is an ant's behavioural mode. It is assigned once and then
// sticks for the ant's lifetime; the zero value means "not yet assigned".
type Strategy string

const (
	StrategyNone        Strategy = ""
	StrategyHunt        Strategy = "hunt"
	StrategyGatherSugar Strategy = "gatherSugar"
	StrategyGatherToxin Strategy = "gatherToxin"
)

// AntState is one observation of an ant.
type AntState struct {
	Team     int   `json:"team"`
	ID       int   `json:"id"`
	Pos      Point `json:"pos"`
	Health   int   `json:"health"`
	HasSugar bool  `json:"hasSugar"`
	HasToxin bool  `json:"hasToxin"`
}

// Ant is an ant tracked across turns. (Team, ID) is fixed at creation.
type Ant struct {
	Team     int
	ID       int
	Pos      Point
	Health   int
	HasSugar bool
	HasToxin bool
	Strategy Strategy
	// History holds the states the ant had before each update, oldest first.
	History []AntState
}

// NewAnt creates an ant from its first sighting. History starts empty.
func NewAnt(s AntState) *Ant {
	return &Ant{
		Team:     s.Team,
		ID:       s.ID,
		Pos:      s.Pos,
		Health:   s.Health,
		HasSugar: s.HasSugar,
		HasToxin: s.HasToxin,
	}
}

func (a *Ant) State() AntState {
	return AntState{
		Team:     a.Team,
		ID:       a.ID,
		Pos:      a.Pos,
		Health:   a.Health,
		HasSugar: a.HasSugar,
		HasToxin: a.HasToxin,
	}
}

// Matches reports whether s describes the same ant.
func (a *Ant) Matches(s AntState) bool {
	return a.Team == s.Team && a.ID == s.ID
}

// Apply records the current state in History and takes over s. The caller
// must have checked Matches.
func (a *Ant) Apply(s AntState) {
	a.History = append(a.History, a.State())
	a.Pos = s.Pos
	a.Health = s.Health
	a.HasSugar = s.HasSugar
	a.HasToxin = s.HasToxin
}

// TrimHistory keeps at most the n most recent history entries. n <= 0 keeps all.
func (a *Ant) TrimHistory(n int) {
	if n <= 0 || len(a.History) <= n {
		return
	}
	a.History = append(a.History[:0:0], a.History[len(a.History)-n:]...)
}

// Age is the number of updates the ant has seen since it was first sighted.
func (a *Ant) Age() int { return len(a.History) }

func (a *Ant) Clone() *Ant {
	c := *a
	if a.History != nil {
		c.History = make([]AntState, len(a.History))
		copy(c.History, a.History)
	}
	return &c
}

func (a *Ant) String() string {
	s, t := '-', '-'
	if a.HasSugar {
		s = 's'
	}
	if a.HasToxin {
		t = 't'
	}
	return fmt.Sprintf("ant %d:%d, %v, health %d, %c%c, strat=%s, age %d",
		a.Team, a.ID, a.Pos, a.Health, s, t, a.Strategy, a.Age())
}
