package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocketBuffers sizes the I/O buffers of upgraded game connections.
// Zero leaves the gorilla default in place.
type WebSocketBuffers struct {
	ReadBufferSize  int `mapstructure:"read_buffer_size"`
	WriteBufferSize int `mapstructure:"write_buffer_size"`
}

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds the upgrader for /play. Any origin is accepted, the
// same as the CORS policy of the plain HTTP routes.
func NewWebSocket(buffers WebSocketBuffers) *WebSocket {
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  buffers.ReadBufferSize,
			WriteBufferSize: buffers.WriteBufferSize,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}
