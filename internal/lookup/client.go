// Package lookup talks to the out-of-process username lookup service.
//
// A request is a 2-byte big-endian length followed by the UTF-8 handle; the
// reply is the user id as an 8-byte big-endian signed integer, 0 when the
// handle is unknown.
package lookup

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/glebk/birthday-bot/internal/domain"
)

const allowedChars = "abcdefghijklmnopqrstuvwxyz0123456789_@"

// ErrInvalidUsername is returned for handles that cannot be a Telegram username
var ErrInvalidUsername = errors.New("invalid username")

// ValidUsername reports whether handle looks like a Telegram username
func ValidUsername(handle string) bool {
	handle = strings.ToLower(handle)
	if len(handle) < 5 || len(handle) > 32 {
		return false
	}
	for _, c := range handle {
		if !strings.ContainsRune(allowedChars, c) {
			return false
		}
	}
	return true
}

// Client resolves handles through the lookup service
type Client struct {
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

// NewClient creates a Client for the service listening on addr
func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

// Resolve returns the id behind handle, or domain.ErrUserNotFound
func (c *Client) Resolve(ctx context.Context, handle string) (int64, error) {
	if !ValidUsername(handle) {
		return 0, ErrInvalidUsername
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to lookup service: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return 0, fmt.Errorf("failed to set lookup deadline: %w", err)
		}
	}

	req := make([]byte, 2+len(handle))
	binary.BigEndian.PutUint16(req, uint16(len(handle)))
	copy(req[2:], handle)

	if _, err := conn.Write(req); err != nil {
		return 0, fmt.Errorf("failed to send lookup request: %w", err)
	}

	var resp [8]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return 0, fmt.Errorf("failed to read lookup response: %w", err)
	}

	id := int64(binary.BigEndian.Uint64(resp[:]))
	if id == 0 {
		return 0, domain.ErrUserNotFound
	}

	return id, nil
}
