package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityHubBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewActivityHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	sent := entity.Activity{Type: entity.ActivityOrder, Title: "New order placed: ORD-1000", Timestamp: time.Now().UTC().Truncate(time.Second)}
	hub.Publish(sent)

	var got entity.Activity
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, sent.Title, got.Title)
	assert.Equal(t, sent.Type, got.Type)
	assert.True(t, sent.Timestamp.Equal(got.Timestamp))

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestPublishWithoutRunnerDoesNotBlock(t *testing.T) {
	hub := NewActivityHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(entity.Activity{Title: "x"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
