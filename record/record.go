// Package record writes a compressed JSONL log of a game, one line per turn.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/model"
	"github.com/jttkim/AntServer/world"
)

// Turn is one line of the game log.
type Turn struct {
	Turn   int              `json:"turn"`
	TeamID int              `json:"team_id"`
	Points int              `json:"points"`
	Ants   []model.AntState `json:"ants"`
	Sugar  int              `json:"sugar"`
	Toxin  int              `json:"toxin"`
	Action []int            `json:"action"`
	Events []string         `json:"events,omitempty"`
}

// NewTurn captures the player's team from v and the action sent for it.
func NewTurn(n int, v *world.View, act ipc.Action, events []string) Turn {
	team := v.Team()
	t := Turn{
		Turn:   n,
		TeamID: v.TeamID,
		Points: team.Points,
		Sugar:  len(v.Sugars),
		Toxin:  len(v.Toxins),
		Action: make([]int, len(act)),
		Events: events,
	}
	for _, a := range v.Ants {
		if a.Team == v.TeamID {
			t.Ants = append(t.Ants, a.State())
		}
	}
	for i, c := range act {
		t.Action[i] = int(c)
	}
	return t
}

// Recorder appends zstd-compressed JSON lines to a single file.
type Recorder struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create truncates or creates path, making parent directories as needed.
func Create(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Recorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

func (r *Recorder) Path() string { return r.path }

// Write appends v as one JSON line.
func (r *Recorder) Write(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return fmt.Errorf("record %s: closed", r.path)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	return r.w.Flush()
}

func (r *Recorder) WriteTurn(t Turn) error { return r.Write(t) }

// Close flushes the encoder and closes the file. Closing twice is a no-op.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err1 error
	if r.w != nil {
		_ = r.w.Flush()
	}
	if r.enc != nil {
		err1 = r.enc.Close()
		r.enc = nil
	}
	if r.f != nil {
		if err := r.f.Close(); err1 == nil {
			err1 = err
		}
		r.f = nil
	}
	r.w = nil
	return err1
}

// ReadTurns decodes a whole game log written by a Recorder.
func ReadTurns(path string) ([]Turn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Turn
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var t Turn
		if err := json.Unmarshal(sc.Bytes(), &t); err != nil {
			return nil, fmt.Errorf("record %s line %d: %w", path, len(out)+1, err)
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
