package lookup

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/glebk/birthday-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve starts a fake lookup service answering from ids
func serve(t *testing.T, ids map[string]int64, delay time.Duration) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()

				var size [2]byte
				if _, err := io.ReadFull(conn, size[:]); err != nil {
					return
				}
				handle := make([]byte, binary.BigEndian.Uint16(size[:]))
				if _, err := io.ReadFull(conn, handle); err != nil {
					return
				}

				time.Sleep(delay)

				var resp [8]byte
				binary.BigEndian.PutUint64(resp[:], uint64(ids[string(handle)]))
				_, _ = conn.Write(resp[:])
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestClient_Resolve(t *testing.T) {
	addr := serve(t, map[string]int64{
		"@alice_w":  5000000001,
		"@negative": -42,
	}, 0)
	c := NewClient(addr, time.Second)
	ctx := context.Background()

	id, err := c.Resolve(ctx, "@alice_w")
	require.NoError(t, err)
	assert.Equal(t, int64(5000000001), id)

	id, err = c.Resolve(ctx, "@negative")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), id, "ids are signed")

	_, err = c.Resolve(ctx, "@nobody_here")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClient_Resolve_InvalidHandle(t *testing.T) {
	c := NewClient("127.0.0.1:1", time.Second)

	_, err := c.Resolve(context.Background(), "@a")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestClient_Resolve_Timeout(t *testing.T) {
	addr := serve(t, map[string]int64{"@slow_user": 1}, 500*time.Millisecond)
	c := NewClient(addr, 50*time.Millisecond)

	_, err := c.Resolve(context.Background(), "@slow_user")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClient_Resolve_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewClient(addr, time.Second).Resolve(context.Background(), "@alice_w")
	assert.Error(t, err)
}

func TestValidUsername(t *testing.T) {
	tests := []struct {
		handle string
		want   bool
	}{
		{handle: "@alice_w", want: true},
		{handle: "Alice_W", want: true},
		{handle: "abcd", want: false},
		{handle: "@abc", want: false},
		{handle: "alice-w", want: false},
		{handle: "alicé_w", want: false},
		{handle: "a234567890123456789012345678901234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.handle))
		})
	}
}
