package rules

import (
	"github.com/jttkim/AntServer/model"
	"github.com/jttkim/AntServer/world"
)

// Action codes. A step (dx, dy) maps to base(dy)+dx with base(-1)=2,
// base(0)=5 and base(1)=8, so 1..9 cover the 8 neighbours and 5 is "no
// move". CodeStay is a separate literal that the server also reads as
// standing still; it is kept apart from CodeNone on purpose.
const (
	CodeStay byte = 0
	CodeNone byte = 5
)

type step struct{ dx, dy int }

// alternatives ranks the fallback steps for each desired step, closest to
// the intended direction first.
var alternatives = map[step][4]step{
	{-1, -1}: {{-1, 0}, {0, -1}, {-1, 1}, {1, -1}},
	{0, -1}:  {{-1, -1}, {1, -1}, {-1, 0}, {1, 0}},
	{1, -1}:  {{0, -1}, {1, 0}, {-1, -1}, {1, 1}},
	{1, 0}:   {{1, -1}, {1, 1}, {0, -1}, {0, 1}},
	{1, 1}:   {{1, 0}, {0, 1}, {1, -1}, {-1, 1}},
	{0, 1}:   {{1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
	{-1, 1}:  {{-1, 0}, {0, 1}, {-1, -1}, {1, 1}},
	{-1, 0}:  {{-1, -1}, {-1, 1}, {0, -1}, {0, 1}},
}

// StepToward returns the single greedy step from one tile toward another,
// each axis clamped to -1..1.
func StepToward(from, to model.Point) (dx, dy int) {
	return clampStep(to.X - from.X), clampStep(to.Y - from.Y)
}

func clampStep(d int) int {
	return max(-1, min(d, 1))
}

// ActionCode encodes a step. Steps outside -1..1 on either axis yield CodeNone.
func ActionCode(dx, dy int) byte {
	if dx < -1 || dx > 1 {
		return CodeNone
	}
	switch dy {
	case -1:
		return byte(2 + dx)
	case 0:
		return byte(5 + dx)
	case 1:
		return byte(8 + dx)
	}
	return CodeNone
}

// MoveToward steps from one tile toward another without entering a tile
// held by any kind in avoid. The direct step is tried first, then its
// ranked alternatives; if every candidate is blocked the ant does not move.
func MoveToward(v *world.View, from, to model.Point, avoid model.KindSet) byte {
	dx, dy := StepToward(from, to)
	if dx == 0 && dy == 0 {
		return CodeNone
	}
	want := step{dx, dy}
	alts := alternatives[want]
	candidates := append([]step{want}, alts[:]...)
	for _, s := range candidates {
		if !blocked(v, from.Add(s.dx, s.dy), avoid) {
			return ActionCode(s.dx, s.dy)
		}
	}
	return CodeNone
}

func blocked(v *world.View, p model.Point, avoid model.KindSet) bool {
	e, ok := v.At(p)
	return ok && avoid.Has(e.Kind)
}
