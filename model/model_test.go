package model

import (
	"strings"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		p, q Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{5, 0}, 5},
		{Point{0, 0}, Point{3, -4}, 4},
		{Point{10, 10}, Point{7, 12}, 3},
	}
	for _, tc := range tests {
		if got := tc.p.Distance(tc.q); got != tc.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestAntApplyRecordsPriorState(t *testing.T) {
	a := NewAnt(AntState{Team: 0, ID: 3, Pos: Point{1, 1}, Health: 10})
	if len(a.History) != 0 {
		t.Fatalf("new ant history = %d entries, want 0", len(a.History))
	}
	first := a.State()

	a.Apply(AntState{Team: 0, ID: 3, Pos: Point{2, 1}, Health: 9, HasSugar: true})
	if len(a.History) != 1 {
		t.Fatalf("history = %d entries, want 1", len(a.History))
	}
	if a.History[0] != first {
		t.Errorf("history[0] = %+v, want %+v", a.History[0], first)
	}
	if a.Pos != (Point{2, 1}) || a.Health != 9 || !a.HasSugar {
		t.Errorf("ant not updated: %v", a)
	}
}

func TestAntMatches(t *testing.T) {
	a := NewAnt(AntState{Team: 0, ID: 3})
	if !a.Matches(AntState{Team: 0, ID: 3, Health: 1}) {
		t.Error("same identity should match")
	}
	if a.Matches(AntState{Team: 1, ID: 3}) {
		t.Error("different team should not match")
	}
	if a.Matches(AntState{Team: 0, ID: 4}) {
		t.Error("different ant id should not match")
	}
}

func TestAntTrimHistory(t *testing.T) {
	a := NewAnt(AntState{})
	for i := 1; i <= 5; i++ {
		a.Apply(AntState{Pos: Point{i, 0}})
	}
	a.TrimHistory(0)
	if len(a.History) != 5 {
		t.Fatalf("TrimHistory(0) left %d entries, want 5", len(a.History))
	}
	a.TrimHistory(2)
	if len(a.History) != 2 {
		t.Fatalf("TrimHistory(2) left %d entries, want 2", len(a.History))
	}
	if a.History[0].Pos.X != 3 || a.History[1].Pos.X != 4 {
		t.Errorf("kept %+v, want the two most recent", a.History)
	}
}

func TestAntCloneIsDeep(t *testing.T) {
	a := NewAnt(AntState{Team: 2, ID: 1})
	a.Apply(AntState{Team: 2, ID: 1, Pos: Point{1, 1}})
	c := a.Clone()
	a.Apply(AntState{Team: 2, ID: 1, Pos: Point{2, 2}})
	a.History[0].Health = 99
	if len(c.History) != 1 || c.History[0].Health != 0 {
		t.Errorf("clone shares history with original: %+v", c.History)
	}
}

func TestAntString(t *testing.T) {
	a := NewAnt(AntState{Team: 1, ID: 4, Pos: Point{3, 7}, Health: 8, HasToxin: true})
	a.Strategy = StrategyHunt
	want := "ant 1:4, (3, 7), health 8, -t, strat=hunt, age 0"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestKindSet(t *testing.T) {
	s := Kinds(KindAnt, KindToxin)
	for _, k := range []Kind{KindNone, KindAnt, KindSugar, KindToxin, KindHome} {
		want := k == KindAnt || k == KindToxin
		if got := s.Has(k); got != want {
			t.Errorf("Has(%s) = %v, want %v", k, got, want)
		}
	}
}

func TestClosest(t *testing.T) {
	if _, ok := Closest(Point{}, nil); ok {
		t.Error("Closest of empty list should report none")
	}
	cands := []Entity{
		SugarAt(Point{5, 5}),
		SugarAt(Point{2, 0}),
		SugarAt(Point{0, 2}),
	}
	got, ok := Closest(Point{}, cands)
	if !ok || got.Pos != (Point{2, 0}) {
		t.Errorf("Closest = %v, want first of the tied sugars at (2, 0)", got)
	}
}

func TestTeamSummaryMarksDeadSlots(t *testing.T) {
	team := &Team{ID: 0, Name: "jtk", Ants: map[int]*Ant{
		1: NewAnt(AntState{Team: 0, ID: 1}),
	}}
	lines := strings.Split(strings.TrimSpace(team.Summary(3)), "\n")
	if len(lines) != 4 {
		t.Fatalf("summary has %d lines, want 4:\n%s", len(lines), team.Summary(3))
	}
	if !strings.Contains(lines[1], "dead") || !strings.Contains(lines[3], "dead") {
		t.Errorf("slots 0 and 2 should be dead:\n%s", team.Summary(3))
	}
	if !strings.Contains(lines[2], "ant 0:1") {
		t.Errorf("slot 1 should list the ant, got %q", lines[2])
	}
}
