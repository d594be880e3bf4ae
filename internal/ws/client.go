package ws

import (
	"github.com/gorilla/websocket"
)

// Client is one connected observer (a live results dashboard).
type Client struct {
	Conn *websocket.Conn
	Send chan Event
}

func (c *Client) ReadPump(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		c.Conn.Close()
	}()

	// Observers only display values; inbound frames are drained solely to
	// detect disconnects.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			return
		}
	}
}
