package simweb

import (
	"github.com/gorilla/websocket"
)

// client is a single websocket connection to a Room.
type client struct {
	// socket is the web socket for this client.
	socket *websocket.Conn
	// send is a channel on which frames are sent.
	send chan []byte
	// room is the room this client is listening to.
	room *Room
}

// read discards anything the client sends and returns once the connection fails.
func (c *client) read() {
	defer c.socket.Close()
	for {
		if _, _, err := c.socket.ReadMessage(); err != nil {
			return
		}
	}
}

// write sends frames to the client until the room closes the send channel.
func (c *client) write() {
	defer c.socket.Close()
	for msg := range c.send {
		if err := c.socket.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
