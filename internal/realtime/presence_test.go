package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, hub *PresenceHub, userID int) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, userID)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitOnline(t *testing.T, hub *PresenceHub, userID int, want bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.IsOnline(userID) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("user %d online=%v never observed", userID, want)
}

func TestServeRegistersAndUnregisters(t *testing.T) {
	hub := NewPresenceHub()
	conn := dial(t, hub, 7)

	waitOnline(t, hub, 7, true)
	assert.Equal(t, 1, hub.OnlineCount())

	conn.Close()
	waitOnline(t, hub, 7, false)
	assert.Equal(t, 0, hub.OnlineCount())
}

func TestBroadcastReachesAllConnections(t *testing.T) {
	hub := NewPresenceHub()
	a := dial(t, hub, 1)
	b := dial(t, hub, 2)
	waitOnline(t, hub, 1, true)
	waitOnline(t, hub, 2, true)

	hub.Broadcast("new_activity", map[string]interface{}{"action": "REGISTER"})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, "new_activity", ev.Type)
	}
}

func TestBroadcastSurvivesDeadConnection(t *testing.T) {
	hub := NewPresenceHub()
	a := dial(t, hub, 1)
	waitOnline(t, hub, 1, true)

	// a second, already-closed peer must not break the fan-out
	b := dial(t, hub, 2)
	waitOnline(t, hub, 2, true)
	b.Close()

	hub.Broadcast("stats_update", map[string]interface{}{"type": "USER_REGISTERED"})

	require.NoError(t, a.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, a.ReadJSON(&ev))
	assert.Equal(t, "stats_update", ev.Type)
}

func TestBroadcastFromManyGoroutines(t *testing.T) {
	hub := NewPresenceHub()
	conn := dial(t, hub, 1)
	waitOnline(t, hub, 1, true)

	// drain so the server side writes never back up
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				hub.Broadcast("new_activity", map[string]interface{}{"seq": i})
			}
		}()
	}
	wg.Wait()

	assert.True(t, hub.IsOnline(1))
}

func TestAnonymousListener(t *testing.T) {
	hub := NewPresenceHub()
	dial(t, hub, 0)
	waitOnline(t, hub, 0, true)
	assert.False(t, hub.IsOnline(42))
}
