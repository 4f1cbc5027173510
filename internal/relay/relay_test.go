package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap/zaptest"
)

func startRelay(t *testing.T) string {
	t.Helper()
	srv := NewServer(zaptest.NewLogger(t))
	mux := http.NewServeMux()
	mux.HandleFunc("/play", srv.Handler)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRelayForwardsVerbatim(t *testing.T) {
	url := startRelay(t)
	a := dial(t, url)
	b := dial(t, url)

	frames := []string{"0#flag (10,25)", "D", "1#skill0 (4,4)", "D", "2#tactic1"}
	for _, f := range frames {
		if err := a.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			t.Fatal(err)
		}
	}
	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, want := range frames {
		_, msg, err := b.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if string(msg) != want {
			t.Fatalf("forwarded %q, want %q", msg, want)
		}
	}
}

func TestRelayForwardsBothDirections(t *testing.T) {
	url := startRelay(t)
	a := dial(t, url)
	b := dial(t, url)

	if err := b.WriteMessage(websocket.TextMessage, []byte("D")); err != nil {
		t.Fatal(err)
	}
	a.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := a.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "D" {
		t.Fatalf("forwarded %q, want keepalive", msg)
	}
}

// Frames sent before the opponent arrives must not be lost: they sit in the
// socket until pairing completes and are delivered in order.
func TestEarlyFramesDeliveredAfterPairing(t *testing.T) {
	url := startRelay(t)
	a := dial(t, url)
	if err := a.WriteMessage(websocket.TextMessage, []byte("0#stop")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	b := dial(t, url)

	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := b.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "0#stop" {
		t.Fatalf("early frame = %q, want 0#stop", msg)
	}
}

// A dropped peer ends the match for both: the survivor's connection closes
// instead of silently stalling forever.
func TestDisconnectTearsDownMatch(t *testing.T) {
	url := startRelay(t)
	a := dial(t, url)
	b := dial(t, url)

	a.Close()
	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := b.ReadMessage(); err == nil {
		t.Fatal("survivor read succeeded after peer disconnect")
	}
}

func TestRelayPairsIndependentMatches(t *testing.T) {
	url := startRelay(t)
	a := dial(t, url)
	b := dial(t, url)
	c := dial(t, url)
	d := dial(t, url)

	if err := c.WriteMessage(websocket.TextMessage, []byte("0#stop")); err != nil {
		t.Fatal(err)
	}
	d.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := d.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "0#stop" {
		t.Fatalf("second match got %q", msg)
	}

	// The first match must not have seen the second match's traffic.
	a.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := a.ReadMessage(); err == nil {
		t.Fatal("first match received cross-match traffic")
	}
	_ = b
}
