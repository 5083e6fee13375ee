package ipc

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTurn(n int) Turn {
	t := Turn{TeamID: 3}
	for i := range t.Teams {
		t.Teams[i] = TeamRecord{Points: uint16(i * 10), AntCount: uint16(16 - i), Name: strings.Repeat("t", i%5+1)}
	}
	for i := 0; i < n; i++ {
		t.Objects = append(t.Objects, ObjectRecord{
			B0: uint8(i % 16),
			B1: uint8(i % 7),
			W0: uint16(i*31 + 1),
			W1: uint16(0xfc00 | i),
		})
	}
	return t
}

func TestActionRoundTrip(t *testing.T) {
	tests := []Action{
		{},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{255, 254, 253, 128, 127, 1, 0, 5, 5, 5, 9, 8, 7, 6, 255, 0},
	}
	for _, want := range tests {
		got, err := DecodeAction(EncodeAction(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for v := 0; v < 256; v++ {
		var a Action
		for i := range a {
			a[i] = byte((v + i*17) % 256)
		}
		got, err := DecodeAction(EncodeAction(a))
		require.NoError(t, err)
		if got != a {
			t.Fatalf("DecodeAction(EncodeAction(%v)) = %v", a, got)
		}
	}
}

func TestActionEncodingIsSlotIndexed(t *testing.T) {
	a := Action{}
	a[3] = 6
	b := EncodeAction(a)
	if len(b) != ActionSize {
		t.Fatalf("len = %d, want %d", len(b), ActionSize)
	}
	if b[3] != 6 {
		t.Errorf("byte 3 = %d, want 6", b[3])
	}
}

func TestHelloRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{"jtk", "jtk"},
		{"exactly16bytes!!", "exactly16bytes!!"},
		{"this name is far too long", "this name is far"},
	}
	for _, tc := range tests {
		b := EncodeHello(Hello{Type: HelloPlayer, Name: tc.name})
		require.Len(t, b, HelloSize)
		got, err := DecodeHello(b)
		require.NoError(t, err)
		assert.Equal(t, HelloPlayer, got.Type)
		assert.Equal(t, tc.want, got.Name, "name %q", tc.name)
	}
}

func TestHelloLayout(t *testing.T) {
	b := EncodeHello(Hello{Type: 0x0102, Name: "ab"})
	want := []byte{0x02, 0x01, 'a', 'b', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, want, b)
}

func TestTurnLayout(t *testing.T) {
	turn := sampleTurn(2)
	turn.TeamID = -1
	b, err := EncodeTurn(turn)
	require.NoError(t, err)
	require.Len(t, b, TurnHeaderSize+2*ObjectSize)

	assert.Equal(t, []byte{0xff, 0xff}, b[0:2], "team id is a signed little-endian int16")
	// second team record starts after the id and one full record
	off := 2 + TeamSize
	assert.Equal(t, []byte{10, 0, 15, 0, 't', 't', 0}, b[off:off+7])
	assert.Equal(t, []byte{2, 0}, b[TurnHeaderSize-2:TurnHeaderSize])
	assert.Equal(t, []byte{1, 1, 32, 0, 0x01, 0xfc}, b[TurnHeaderSize+ObjectSize:])
}

func TestParseTurnRoundTrip(t *testing.T) {
	want := sampleTurn(40)
	b, err := EncodeTurn(want)
	require.NoError(t, err)

	got, err := ParseTurn(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseTurnRejectsMalformed(t *testing.T) {
	b, err := EncodeTurn(sampleTurn(3))
	require.NoError(t, err)

	_, err = ParseTurn(b[:TurnHeaderSize-1])
	assert.Error(t, err, "short header")
	_, err = ParseTurn(b[:len(b)-1])
	assert.Error(t, err, "short tail")
	_, err = ParseTurn(append(b, 0))
	assert.Error(t, err, "trailing byte")
}

func TestEncodeTurnTooManyObjects(t *testing.T) {
	turn := Turn{Objects: make([]ObjectRecord, 1<<16)}
	_, err := EncodeTurn(turn)
	assert.Error(t, err)
}

// chunkReader hands out its chunks one Read at a time, the way a socket
// delivers separate segments.
type chunkReader struct {
	chunks [][]byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n == len(r.chunks[0]) {
		r.chunks = r.chunks[1:]
	} else {
		r.chunks[0] = r.chunks[0][n:]
	}
	return n, nil
}

func TestReadTurnSplitInvariant(t *testing.T) {
	want := sampleTurn(25)
	b, err := EncodeTurn(want)
	require.NoError(t, err)

	whole, err := ReadTurn(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, want, whole)

	tail := len(b) - TurnHeaderSize
	for _, split := range []int{1, ObjectSize - 1, ObjectSize, 7, tail / 2, tail - 1} {
		r := &chunkReader{chunks: [][]byte{
			b[:TurnHeaderSize],
			b[TurnHeaderSize : TurnHeaderSize+split],
			b[TurnHeaderSize+split:],
		}}
		got, err := ReadTurn(r)
		require.NoError(t, err, "split at %d", split)
		assert.Equal(t, whole.Objects, got.Objects, "split at %d", split)
	}
}

func TestReadTurnOneByteAtATime(t *testing.T) {
	want := sampleTurn(9)
	b, err := EncodeTurn(want)
	require.NoError(t, err)

	got, err := ReadTurn(iotest.OneByteReader(bytes.NewReader(b)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadTurnTruncated(t *testing.T) {
	b, err := EncodeTurn(sampleTurn(4))
	require.NoError(t, err)

	tests := []struct {
		n     int
		stage string
	}{
		{0, "header"},
		{TurnHeaderSize - 3, "header"},
		{TurnHeaderSize, "objects"},
		{len(b) - 1, "objects"},
	}
	for _, tc := range tests {
		_, err := ReadTurn(bytes.NewReader(b[:tc.n]))
		var tre *TurnReadError
		require.True(t, errors.As(err, &tre), "n=%d: got %v", tc.n, err)
		assert.Equal(t, tc.stage, tre.Stage, "n=%d", tc.n)
	}
}

func TestReadHelloShort(t *testing.T) {
	b := EncodeHello(Hello{Type: HelloPlayer, Name: "jtk"})
	got, err := ReadHello(bytes.NewReader(b[:5]))

	var pe *ProtocolDecodeError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 5, pe.Got)
	assert.Equal(t, HelloSize, pe.Want)
	assert.Equal(t, Hello{}, got)
}

func TestReadHello(t *testing.T) {
	b := EncodeHello(Hello{Type: HelloViewer, Name: "viewer"})
	got, err := ReadHello(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, Hello{Type: HelloViewer, Name: "viewer"}, got)
}

func TestReadActionBestEffort(t *testing.T) {
	want := Action{5, 5, 5, 0, 1, 2, 3, 4, 6, 7, 8, 9, 5, 5, 5, 5}
	b := EncodeAction(want)

	got, err := ReadAction(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// A single read is all it gets; a fragmented action is reported, not retried.
	got, err = ReadAction(iotest.HalfReader(bytes.NewReader(b)))
	var pe *ProtocolDecodeError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, Action{}, got)

	_, err = ReadAction(bytes.NewReader(nil))
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, io.EOF)
}
