package ipc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

var le = binary.LittleEndian

func EncodeAction(a Action) []byte {
	buf := make([]byte, ActionSize)
	copy(buf, a[:])
	return buf
}

func DecodeAction(b []byte) (Action, error) {
	var a Action
	if len(b) < ActionSize {
		return a, &ProtocolDecodeError{Message: "action", Got: len(b), Want: ActionSize}
	}
	copy(a[:], b[:ActionSize])
	return a, nil
}

// EncodeHello truncates names longer than NameSize bytes and NUL-pads shorter ones.
func EncodeHello(h Hello) []byte {
	buf := make([]byte, HelloSize)
	le.PutUint16(buf[0:2], h.Type)
	putName(buf[2:], h.Name)
	return buf
}

func DecodeHello(b []byte) (Hello, error) {
	if len(b) < HelloSize {
		return Hello{}, &ProtocolDecodeError{Message: "hello", Got: len(b), Want: HelloSize}
	}
	return Hello{
		Type: le.Uint16(b[0:2]),
		Name: getName(b[2:HelloSize]),
	}, nil
}

// EncodeTurn lays out a turn exactly as the server sends it.
func EncodeTurn(t Turn) ([]byte, error) {
	if len(t.Objects) > math.MaxUint16 {
		return nil, fmt.Errorf("encode turn: %d objects exceed the uint16 count", len(t.Objects))
	}
	buf := make([]byte, TurnHeaderSize+len(t.Objects)*ObjectSize)
	le.PutUint16(buf[0:2], uint16(t.TeamID))
	off := 2
	for _, tr := range t.Teams {
		le.PutUint16(buf[off:], tr.Points)
		le.PutUint16(buf[off+2:], tr.AntCount)
		putName(buf[off+4:off+TeamSize], tr.Name)
		off += TeamSize
	}
	le.PutUint16(buf[off:], uint16(len(t.Objects)))
	off += 2
	for _, o := range t.Objects {
		putObject(buf[off:off+ObjectSize], o)
		off += ObjectSize
	}
	return buf, nil
}

// ParseTurn decodes one complete turn message. The buffer must hold the
// header and exactly as many object records as the header announces.
func ParseTurn(raw []byte) (Turn, error) {
	var t Turn
	n, err := parseTurnHeader(raw, &t)
	if err != nil {
		return Turn{}, err
	}
	tail := raw[TurnHeaderSize:]
	if len(tail) != n*ObjectSize {
		return Turn{}, fmt.Errorf("turn announces %d objects (%d bytes), got %d bytes", n, n*ObjectSize, len(tail))
	}
	t.Objects = parseObjects(tail, n)
	return t, nil
}

func parseTurnHeader(raw []byte, t *Turn) (int, error) {
	if len(raw) < TurnHeaderSize {
		return 0, fmt.Errorf("turn header: got %d of %d bytes", len(raw), TurnHeaderSize)
	}
	t.TeamID = int16(le.Uint16(raw[0:2]))
	off := 2
	for i := range t.Teams {
		t.Teams[i] = TeamRecord{
			Points:   le.Uint16(raw[off:]),
			AntCount: le.Uint16(raw[off+2:]),
			Name:     getName(raw[off+4 : off+TeamSize]),
		}
		off += TeamSize
	}
	return int(le.Uint16(raw[off:])), nil
}

func parseObjects(b []byte, n int) []ObjectRecord {
	objs := make([]ObjectRecord, n)
	for i := range objs {
		o := b[i*ObjectSize:]
		objs[i] = ObjectRecord{
			B0: o[0],
			B1: o[1],
			W0: le.Uint16(o[2:4]),
			W1: le.Uint16(o[4:6]),
		}
	}
	return objs
}

// ReadTurn reads a whole turn. Both the header and the variable object tail
// are read with io.ReadFull, so a tail split across several TCP segments
// is reassembled before parsing.
func ReadTurn(r io.Reader) (Turn, error) {
	header := make([]byte, TurnHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return Turn{}, &TurnReadError{Stage: "header", Err: err}
	}
	var t Turn
	n, err := parseTurnHeader(header, &t)
	if err != nil {
		return Turn{}, &TurnReadError{Stage: "parse", Err: err}
	}
	tail := make([]byte, n*ObjectSize)
	if _, err := io.ReadFull(r, tail); err != nil {
		return Turn{}, &TurnReadError{Stage: "objects", Err: err}
	}
	t.Objects = parseObjects(tail, n)
	return t, nil
}

// ReadHello does a single best-effort read. On failure it returns a zero
// Hello together with a *ProtocolDecodeError.
func ReadHello(r io.Reader) (Hello, error) {
	buf := make([]byte, HelloSize)
	n, err := r.Read(buf)
	if n < HelloSize {
		return Hello{}, shortRead("hello", n, HelloSize, err)
	}
	return DecodeHello(buf)
}

// ReadAction does a single best-effort read, like ReadHello.
func ReadAction(r io.Reader) (Action, error) {
	buf := make([]byte, ActionSize)
	n, err := r.Read(buf)
	if n < ActionSize {
		return Action{}, shortRead("action", n, ActionSize, err)
	}
	return DecodeAction(buf)
}

func shortRead(msg string, got, want int, err error) error {
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return &ProtocolDecodeError{Message: msg, Got: got, Want: want, Err: err}
}

func WriteHello(w io.Writer, h Hello) error {
	if _, err := w.Write(EncodeHello(h)); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}
	return nil
}

func WriteAction(w io.Writer, a Action) error {
	if _, err := w.Write(EncodeAction(a)); err != nil {
		return fmt.Errorf("write action: %w", err)
	}
	return nil
}

func WriteTurn(w io.Writer, t Turn) error {
	buf, err := EncodeTurn(t)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write turn: %w", err)
	}
	return nil
}

func putObject(b []byte, o ObjectRecord) {
	b[0] = o.B0
	b[1] = o.B1
	le.PutUint16(b[2:4], o.W0)
	le.PutUint16(b[4:6], o.W1)
}

// putName copies at most len(dst) bytes of name; the rest stays zero.
func putName(dst []byte, name string) {
	clear(dst)
	copy(dst, name)
}

func getName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

