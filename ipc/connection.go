package ipc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"
)

// Connection is one client session with the ant server. It owns the socket
// and is used from a single goroutine: one turn in flight at a time.
type Connection struct {
	conn net.Conn
	Team string
}

func NewConnection(conn net.Conn) *Connection {
	return &Connection{conn: conn}
}

// Dial connects to the server. Retrying is left to the caller.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Connection, error) {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	slog.Info("connected to ant server", "addr", addr)
	return NewConnection(conn), nil
}

// Hello registers the client as a player under the given team name.
func (c *Connection) Hello(name string) error {
	if err := WriteHello(c.conn, Hello{Type: HelloPlayer, Name: name}); err != nil {
		return err
	}
	c.Team = name
	slog.Info("sent hello", "team", name)
	return nil
}

// GetTurn blocks until the next full turn has arrived.
func (c *Connection) GetTurn() (Turn, error) {
	return ReadTurn(c.conn)
}

func (c *Connection) SendAction(a Action) error {
	return WriteAction(c.conn, a)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}
