package agent

import (
	"fmt"
	"sort"

	"github.com/jttkim/AntServer/world"
)

// EventKind identifies something the server never says outright but that
// shows up when two consecutive turns are compared.
type EventKind string

const (
	EventAntSighted   EventKind = "ant_sighted"
	EventAntLost      EventKind = "ant_lost"
	EventPointsScored EventKind = "points_scored"
	EventCargoDropped EventKind = "cargo_dropped"
)

// Event is a change of the player's team detected by diffing turns.
type Event struct {
	Kind   EventKind
	Turn   int
	Ant    int // -1 when the event concerns the whole team
	Detail string
}

func (e Event) String() string {
	if e.Ant < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s ant %d: %s", e.Kind, e.Ant, e.Detail)
}

// stateSnapshot captures the diffable parts of the player's team.
type stateSnapshot struct {
	ants   map[int]bool // alive ant slots
	cargo  map[int]bool // slots carrying sugar or toxin
	points int
}

func takeSnapshot(v *world.View) stateSnapshot {
	team := v.Team()
	s := stateSnapshot{
		ants:   make(map[int]bool, len(team.Ants)),
		cargo:  make(map[int]bool),
		points: team.Points,
	}
	for id, a := range team.Ants {
		s.ants[id] = true
		if a.HasSugar || a.HasToxin {
			s.cargo[id] = true
		}
	}
	return s
}

// detectEvents compares cur against prev. The first turn has nothing to
// compare against and yields no events.
func detectEvents(prev *stateSnapshot, cur stateSnapshot, turn int) []Event {
	if prev == nil {
		return nil
	}
	var events []Event
	for _, id := range sortedSlots(cur.ants) {
		if !prev.ants[id] {
			events = append(events, Event{Kind: EventAntSighted, Turn: turn, Ant: id, Detail: "new in this turn"})
		}
	}
	for _, id := range sortedSlots(prev.ants) {
		if !cur.ants[id] {
			events = append(events, Event{Kind: EventAntLost, Turn: turn, Ant: id, Detail: "missing from snapshot"})
		}
	}
	for _, id := range sortedSlots(prev.cargo) {
		if cur.ants[id] && !cur.cargo[id] {
			events = append(events, Event{Kind: EventCargoDropped, Turn: turn, Ant: id, Detail: "no longer carrying"})
		}
	}
	if cur.points > prev.points {
		events = append(events, Event{
			Kind:   EventPointsScored,
			Turn:   turn,
			Ant:    -1,
			Detail: fmt.Sprintf("%d -> %d", prev.points, cur.points),
		})
	}
	return events
}

func sortedSlots(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func formatEvents(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.String()
	}
	return out
}
