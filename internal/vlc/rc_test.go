package vlc

import (
	"bufio"
	"context"
	"errors"
	"net"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

func TestParseMarkedLines(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{"single active", "  speaker\n* HDMI\n  bluetooth\n", []string{"HDMI"}},
		{"none", "  speaker\n  bluetooth\n", []string{}},
		{"several", "*alsa\n  pulse\n * jack \r\n", []string{"alsa", "jack"}},
		{"bare marker", "*\n* x\n", []string{"x"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMarkedLines(tt.reply)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMarkedLines(%q) = %#v, want %#v", tt.reply, got, tt.want)
			}
		})
	}
}

// serveOnce accepts one connection, records the first line and answers with reply.
// When hold is true the connection stays open after the reply, like VLC does.
func serveOnce(t *testing.T, reply string, hold bool) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		got <- line
		_, _ = conn.Write([]byte(reply))
		if hold {
			time.Sleep(500 * time.Millisecond)
		}
	}()
	return ln.Addr().String(), got
}

func TestRCClient_SendLine(t *testing.T) {
	addr, got := serveOnce(t, "  speaker\n* HDMI\n", false)

	c := NewRCClient(addr, time.Second, zap.NewNop())
	reply, err := c.SendLine(context.Background(), "adev")
	if err != nil {
		t.Fatalf("SendLine returned error: %v", err)
	}
	if line := <-got; line != "adev\n" {
		t.Errorf("server received %q, want %q", line, "adev\n")
	}
	if reply != "  speaker\n* HDMI\n" {
		t.Errorf("reply = %q", reply)
	}
}

func TestRCClient_IdleConnection(t *testing.T) {
	addr, _ := serveOnce(t, "* vout_xcb\n", true)

	c := NewRCClient(addr, 2*time.Second, zap.NewNop())
	start := time.Now()
	reply, err := c.SendLine(context.Background(), "vout")
	if err != nil {
		t.Fatalf("SendLine returned error: %v", err)
	}
	if reply != "* vout_xcb\n" {
		t.Errorf("reply = %q", reply)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("SendLine should return after the idle window, not the full timeout")
	}
}

func TestRCClient_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	c := NewRCClient(addr, 200*time.Millisecond, zap.NewNop())
	if _, err := c.SendLine(context.Background(), "aout"); !errors.Is(err, gerrors.ErrSocket) {
		t.Fatalf("SendLine() error = %v, want ErrSocket", err)
	}
}

func TestRCClient_NoReply(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(400 * time.Millisecond)
	}()

	c := NewRCClient(ln.Addr().String(), 100*time.Millisecond, zap.NewNop())
	if _, err := c.SendLine(context.Background(), "adev"); !errors.Is(err, gerrors.ErrSocket) {
		t.Fatalf("SendLine() error = %v, want ErrSocket", err)
	}
}
