package hub_test

import (
	"context"
	"testing"
	"time"

	"github.com/XavierBriggs/Janus/internal/client"
	"github.com/XavierBriggs/Janus/internal/hub"
	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*hub.Hub, context.CancelFunc) {
	t.Helper()
	h := hub.NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return h, cancel
}

func receive(t *testing.T, c *client.Client) models.ServerMessage {
	t.Helper()
	select {
	case msg := <-c.Send:
		return msg
	case <-time.After(time.Second):
		t.Fatalf("client %s received nothing", c.ID)
		return models.ServerMessage{}
	}
}

func TestHub_PublishRoutesBySession(t *testing.T) {
	h, _ := startHub(t)

	a1 := client.NewClient("a1", "session-a", nil, h, nil)
	a2 := client.NewClient("a2", "session-a", nil, h, nil)
	b := client.NewClient("b", "session-b", nil, h, nil)
	for _, c := range []*client.Client{a1, a2, b} {
		require.True(t, h.Register(c))
	}

	patch := models.Patch{Target: "games-container", Mode: models.PatchInner, HTML: "<p>ok</p>", Token: 7}
	h.Publish("session-a", patch)

	for _, c := range []*client.Client{a1, a2} {
		msg := receive(t, c)
		assert.Equal(t, models.MessageTypeContainerUpdate, msg.Type)
		assert.Equal(t, patch, msg.Payload)
	}

	h.Publish("session-b", models.Patch{Target: "current-date"})
	assert.Equal(t, "current-date", receive(t, b).Payload.(models.Patch).Target)

	assert.Empty(t, a1.Send)
	assert.Equal(t, 3, h.GetClientCount())
	assert.Equal(t, 2, h.SessionClients("session-a"))
}

func TestHub_Unregister(t *testing.T) {
	h, _ := startHub(t)

	c := client.NewClient("a1", "session-a", nil, h, nil)
	require.True(t, h.Register(c))
	h.Unregister(c)

	// Send is closed once the hub drops the client
	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, h.SessionClients("session-a"))

	// Unknown clients are ignored
	h.Unregister(client.NewClient("ghost", "session-a", nil, h, nil))
	assert.Equal(t, 0, h.GetClientCount())
}

func TestHub_Metrics(t *testing.T) {
	h, _ := startHub(t)

	c := client.NewClient("a1", "session-a", nil, h, nil)
	require.True(t, h.Register(c))
	h.Publish("session-a", models.Patch{Target: "x"})
	receive(t, c)

	// The counter moves after the send completes
	assert.Eventually(t, func() bool {
		return h.GetMetrics()["total_messages"] == int64(1)
	}, time.Second, 5*time.Millisecond)

	metrics := h.GetMetrics()
	assert.Equal(t, 1, metrics["active_clients"])
	assert.Equal(t, 1, metrics["active_sessions"])
	assert.EqualValues(t, 1, metrics["total_connections"])
	assert.Equal(t, 1000, metrics["broadcast_capacity"])
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	h, cancel := startHub(t)

	c := client.NewClient("a1", "session-a", nil, h, nil)
	require.True(t, h.Register(c))
	cancel()

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed on shutdown")
	}

	// Calls after shutdown return instead of blocking
	assert.Eventually(t, func() bool {
		return !h.Register(client.NewClient("late", "session-a", nil, h, nil))
	}, time.Second, 10*time.Millisecond)
	h.Unregister(c)
}
