// Package field knows the bit layout of AntServer object records and the
// static facts of the playfield. Nothing else in the module looks inside an
// ipc.ObjectRecord.
//
// Layout (w0 and w1 are the two little-endian words of the record):
//
//	b0       team id (low 4 bits)
//	b1       ant id (low 4 bits)
//	w0 0-9   x
//	w0 12    ant flag
//	w0 13    sugar flag (a sugar object, or an ant carrying sugar)
//	w0 14    toxin flag (a toxin object, or an ant carrying toxin)
//	w1 0-9   y
//	w1 10-15 health
package field

import (
	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/model"
)

const (
	Teams         = ipc.NumTeams
	AntsPerTeam   = ipc.NumSlots
	PlayfieldSize = 1000
	MaxHealth     = 63
)

const (
	coordMask  = 0x03ff
	antFlag    = 1 << 12
	sugarFlag  = 1 << 13
	toxinFlag  = 1 << 14
	idMask     = 0x0f
	healthBits = 10
)

// HomeBase holds each team's home patch, indexed by team id.
var HomeBase = [Teams]model.Point{
	{X: 125, Y: 125}, {X: 375, Y: 125}, {X: 625, Y: 125}, {X: 875, Y: 125},
	{X: 875, Y: 375}, {X: 875, Y: 625}, {X: 875, Y: 875}, {X: 625, Y: 875},
	{X: 375, Y: 875}, {X: 125, Y: 875}, {X: 125, Y: 625}, {X: 125, Y: 375},
	{X: 375, Y: 375}, {X: 625, Y: 375}, {X: 625, Y: 625}, {X: 375, Y: 625},
}

// Object is a decoded object record.
type Object struct {
	IsAnt    bool
	IsSugar  bool
	IsToxin  bool
	Team     int
	Ant      int
	X, Y     int
	Health   int
	HasSugar bool
	HasToxin bool
}

func (o Object) Pos() model.Point { return model.Point{X: o.X, Y: o.Y} }

// Decode classifies a record. An ant is never also reported as sugar or
// toxin; its flags show up as HasSugar/HasToxin instead.
func Decode(r ipc.ObjectRecord) Object {
	o := Object{
		Team:   int(r.B0 & idMask),
		Ant:    int(r.B1 & idMask),
		X:      int(r.W0 & coordMask),
		Y:      int(r.W1 & coordMask),
		Health: int(r.W1 >> healthBits),
	}
	sugar := r.W0&sugarFlag != 0
	toxin := r.W0&toxinFlag != 0
	if r.W0&antFlag != 0 {
		o.IsAnt = true
		o.HasSugar = sugar
		o.HasToxin = toxin
		return o
	}
	o.IsSugar = sugar
	o.IsToxin = !sugar && toxin
	return o
}

// Encode is the inverse of Decode for well-formed objects. Out-of-range
// values are masked to their field width.
func Encode(o Object) ipc.ObjectRecord {
	r := ipc.ObjectRecord{
		W0: uint16(o.X) & coordMask,
		W1: uint16(o.Y)&coordMask | uint16(o.Health&MaxHealth)<<healthBits,
	}
	switch {
	case o.IsAnt:
		r.B0 = uint8(o.Team) & idMask
		r.B1 = uint8(o.Ant) & idMask
		r.W0 |= antFlag
		if o.HasSugar {
			r.W0 |= sugarFlag
		}
		if o.HasToxin {
			r.W0 |= toxinFlag
		}
	case o.IsSugar:
		r.W0 |= sugarFlag
	case o.IsToxin:
		r.W0 |= toxinFlag
	}
	return r
}

// Ant builds the record of an ant; handy when scripting turns.
func Ant(team, ant int, at model.Point, health int, sugar, toxin bool) ipc.ObjectRecord {
	return Encode(Object{IsAnt: true, Team: team, Ant: ant, X: at.X, Y: at.Y, Health: health, HasSugar: sugar, HasToxin: toxin})
}

func Sugar(at model.Point) ipc.ObjectRecord {
	return Encode(Object{IsSugar: true, X: at.X, Y: at.Y})
}

func Toxin(at model.Point) ipc.ObjectRecord {
	return Encode(Object{IsToxin: true, X: at.X, Y: at.Y})
}
