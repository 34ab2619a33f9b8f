package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// ActivityHub คือศูนย์กลาง feed ของ admin dashboard ผ่าน WebSocket
type ActivityHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan entity.Activity
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{} // closed when Run returns
	mu         sync.Mutex
	upgrader   websocket.Upgrader
}

// สร้าง ActivityHub ใหม่
func NewActivityHub() *ActivityHub {
	return &ActivityHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan entity.Activity, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run คอยฟัง register/unregister/broadcast จนกว่า ctx จะจบ
func (h *ActivityHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		// มี dashboard ใหม่เชื่อมต่อ
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		// dashboard ปิดไป
		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		// มี activity ใหม่ → กระจายให้ทุก dashboard
		case a := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(a); err != nil {
					slog.Warn("ws write error", "error", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish never blocks a request; when the buffer is full the event is dropped.
func (h *ActivityHub) Publish(a entity.Activity) {
	select {
	case h.broadcast <- a:
	default:
		slog.Warn("activity dropped, hub busy", "title", a.Title)
	}
}

func (h *ActivityHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// WS route: /api/admin/ws (หลัง WSAuth + RequireRole)
func (h *ActivityHub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("ws upgrade error", "error", err)
		return
	}
	select {
	case h.register <- conn:
		go h.listen(conn)
	case <-h.done:
		conn.Close()
	}
}

// listen อ่านทิ้งจนกว่า client จะปิด (feed เป็นทางเดียว)
func (h *ActivityHub) listen(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
