// Package agent drives one player session: receive a turn, rebuild the
// world, decide, send the action back.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/record"
	"github.com/jttkim/AntServer/world"
)

// Session is the transport side of a game; *ipc.Connection implements it.
type Session interface {
	GetTurn() (ipc.Turn, error)
	SendAction(ipc.Action) error
}

// TurnWriter receives one entry per completed turn.
type TurnWriter interface {
	WriteTurn(record.Turn) error
}

// Agent owns the decision-making for a single player session. It is not
// safe for concurrent use: turns are handled strictly one after another.
type Agent struct {
	Session  Session
	Decider  Decider
	Table    *world.IdentityTable
	Recorder TurnWriter // optional

	turns int
	prev  *stateSnapshot
	last  *world.View
}

func New(s Session, d Decider, table *world.IdentityTable) *Agent {
	if table == nil {
		table = world.NewIdentityTable()
	}
	return &Agent{Session: s, Decider: d, Table: table}
}

// Turns returns the number of turns played so far.
func (a *Agent) Turns() int { return a.turns }

// View returns the most recent world view, or nil before the first turn.
func (a *Agent) View() *world.View { return a.last }

// Turn plays a single turn. A failed read or an identity conflict leaves
// the identity table as it was and no action is sent.
func (a *Agent) Turn() error {
	turn, err := a.Session.GetTurn()
	if err != nil {
		return err
	}
	v, err := world.Reconstruct(turn, a.Table)
	if err != nil {
		return err
	}
	a.turns++
	a.last = v

	snap := takeSnapshot(v)
	events := detectEvents(a.prev, snap, a.turns)
	a.prev = &snap
	for _, e := range events {
		slog.Info("team event", "turn", a.turns, "event", e.Kind, "ant", e.Ant, "detail", e.Detail)
	}

	act := a.Decider.Decide(v)
	if err := a.Session.SendAction(act); err != nil {
		return fmt.Errorf("send action: %w", err)
	}

	slog.Debug("turn played",
		"turn", a.turns,
		"team", v.TeamID,
		"points", v.Team().Points,
		"ants", len(v.Team().Ants),
		"sugar", len(v.Sugars),
		"toxin", len(v.Toxins),
		"tracked", a.Table.Len(),
	)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("team summary\n" + v.TeamSummary())
	}

	if a.Recorder != nil {
		if err := a.Recorder.WriteTurn(record.NewTurn(a.turns, v, act, formatEvents(events))); err != nil {
			slog.Warn("record turn failed", "turn", a.turns, "error", err)
		}
	}
	return nil
}

// Run plays turns until maxTurns have been played (0 means no limit), the
// context is cancelled or a turn fails. Cancellation is noticed between
// turns only; a turn in progress runs to completion or to a read error,
// which the caller can force by closing the connection.
func (a *Agent) Run(ctx context.Context, maxTurns int) error {
	slog.Info("agent started", "bot", a.Decider.Name(), "max_turns", maxTurns)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxTurns > 0 && a.turns >= maxTurns {
			slog.Info("turn limit reached", "turns", a.turns)
			return nil
		}
		if err := a.Turn(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("turn %d: %w", a.turns+1, err)
		}
	}
}
