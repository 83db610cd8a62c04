package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ws "github.com/coder/websocket"
	"github.com/dukerupert/mealcart/internal/auth"
	"github.com/dukerupert/mealcart/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, userID int64) *Client {
	return &Client{
		hub:    hub,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	hub := NewHub(m, slog.Default())

	c1 := mockClient(hub, 1)
	c2 := mockClient(hub, 2)
	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}
	if got := testutil.ToFloat64(m.WSConnections); got != 2 {
		t.Errorf("connections gauge = %v, want 2", got)
	}

	hub.Unregister(c1)
	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}
	if got := testutil.ToFloat64(m.WSConnections); got != 1 {
		t.Errorf("connections gauge = %v, want 1", got)
	}

	hub.Unregister(c2)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestPublishOnlyReachesOwner(t *testing.T) {
	hub := NewHub(nil, slog.Default())

	mine1 := mockClient(hub, 1)
	mine2 := mockClient(hub, 1)
	other := mockClient(hub, 2)
	for _, c := range []*Client{mine1, mine2, other} {
		hub.Register(c)
	}

	hub.Publish(1, NewMessage("shopping_item", "checked", 42, map[string]any{"list_id": float64(3)}))

	for _, c := range []*Client{mine1, mine2} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "shopping_item_checked" || got.ID != 42 {
				t.Errorf("got %+v", got)
			}
			if got.Extra["list_id"] != float64(3) {
				t.Errorf("extra = %v", got.Extra)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	select {
	case <-other.send:
		t.Error("message leaked to another user")
	default:
	}
}

func TestPublishNoClients(t *testing.T) {
	hub := NewHub(nil, slog.Default())
	hub.Publish(9, NewMessage("shopping_list", "deleted", 1, nil))
}

func TestPublishFullBuffer(t *testing.T) {
	hub := NewHub(nil, slog.New(slog.NewTextHandler(&strings.Builder{}, nil)))
	c := mockClient(hub, 1)
	hub.Register(c)

	for i := 0; i < sendBufferSize; i++ {
		hub.Publish(1, NewMessage("test", "fill", int64(i), nil))
	}
	hub.Publish(1, NewMessage("test", "dropped", 999, nil))

	if got := len(c.send); got != sendBufferSize {
		t.Errorf("expected %d queued messages, got %d", sendBufferSize, got)
	}
	hub.Unregister(c)
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("shopping_list", "archived", 5, nil)
	if msg.Type != "shopping_list_archived" {
		t.Errorf("expected type shopping_list_archived, got %s", msg.Type)
	}
	if msg.Entity != "shopping_list" || msg.Action != "archived" || msg.ID != 5 {
		t.Errorf("got %+v", msg)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(nil, slog.Default())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			c := mockClient(hub, uid)
			hub.Register(c)
			hub.Publish(uid, NewMessage("test", "concurrent", 0, nil))
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}(int64(i % 3))
	}
	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
}

func TestHandleWebSocket(t *testing.T) {
	tokens := auth.NewTokenIssuer("websocket-secret-12345", time.Hour)
	hub := NewHub(nil, slog.Default())
	srv := httptest.NewServer(HandleWebSocket(hub, tokens, slog.Default()))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	t.Run("rejects missing token", func(t *testing.T) {
		resp, err := http.Get(srv.URL)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("delivers published messages", func(t *testing.T) {
		tok, _, err := tokens.Issue(11, "ws@example.com")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		conn, _, err := ws.Dial(ctx, wsURL+"?token="+tok, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.CloseNow()

		deadline := time.Now().Add(time.Second)
		for hub.ClientCount() == 0 {
			if time.Now().After(deadline) {
				t.Fatal("client never registered")
			}
			time.Sleep(5 * time.Millisecond)
		}

		hub.Publish(11, NewMessage("shopping_list", "created", 7, nil))

		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != "shopping_list_created" || got.ID != 7 {
			t.Errorf("got %+v", got)
		}
	})
}
