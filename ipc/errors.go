package ipc

import "fmt"

// ProtocolDecodeError reports a short or garbled hello/action message.
// Callers get a zero value alongside it and may carry on.
type ProtocolDecodeError struct {
	Message string // "hello" or "action"
	Got     int
	Want    int
	Err     error
}

func (e *ProtocolDecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: got %d of %d bytes: %v", e.Message, e.Got, e.Want, e.Err)
	}
	return fmt.Sprintf("decode %s: got %d of %d bytes", e.Message, e.Got, e.Want)
}

func (e *ProtocolDecodeError) Unwrap() error { return e.Err }

// TurnReadError means a turn message could not be obtained in full.
// No partial turn is ever returned with it.
type TurnReadError struct {
	Stage string // "header", "objects" or "parse"
	Err   error
}

func (e *TurnReadError) Error() string {
	return fmt.Sprintf("read turn %s: %v", e.Stage, e.Err)
}

func (e *TurnReadError) Unwrap() error { return e.Err }
