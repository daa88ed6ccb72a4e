// Package simweb publishes simulation telemetry to websocket clients.
//
// The broadcast room is adapted from Mat Ryer's Go Blueprints chat example,
// see https://github.com/matryer/goblueprints
package simweb

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/westphae/mavsim/metrics"
)

// Room broadcasts every frame it is given to all connected clients.
type Room struct {
	// forward is a channel that holds messages to send to the clients.
	forward chan []byte
	// join is a channel for clients wishing to join the room.
	join chan *client
	// leave is a channel for clients wishing to leave the room.
	leave chan *client
	// done stops Run.
	done chan struct{}
	// clients holds all current clients in this room.
	clients map[*client]bool
}

// NewRoom makes a new room that is ready to go.
func NewRoom() *Room {
	return &Room{
		forward: make(chan []byte),
		join:    make(chan *client),
		leave:   make(chan *client),
		done:    make(chan struct{}),
		clients: make(map[*client]bool),
	}
}

// Run services the room until Stop is called.
func (r *Room) Run() {
	for {
		select {
		case client := <-r.join:
			r.clients[client] = true
			log.Println("SimWeb: New client joined")
		case client := <-r.leave:
			if r.clients[client] {
				delete(r.clients, client)
				close(client.send)
				log.Println("SimWeb: Client left")
			}
		case msg := <-r.forward:
			for client := range r.clients {
				select {
				case client.send <- msg:
				default:
					metrics.FrameDropped()
				}
			}
		case <-r.done:
			for client := range r.clients {
				delete(r.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Stop ends Run and disconnects all clients.
func (r *Room) Stop() {
	close(r.done)
}

// Broadcast hands msg to the room for delivery to every client.
// It returns false if the room has been stopped.
func (r *Room) Broadcast(msg []byte) bool {
	select {
	case r.forward <- msg:
		return true
	case <-r.done:
		return false
	}
}

const (
	socketBufferSize  = 1024
	messageBufferSize = 64
)

var upgrader = &websocket.Upgrader{ReadBufferSize: socketBufferSize, WriteBufferSize: socketBufferSize}

// ServeHTTP upgrades the connection to a websocket and joins it to the room.
func (r *Room) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	socket, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("SimWeb: Error upgrading connection:", err)
		return
	}
	client := &client{
		socket: socket,
		send:   make(chan []byte, messageBufferSize),
		room:   r,
	}
	select {
	case r.join <- client:
	case <-r.done:
		socket.Close()
		return
	}
	defer func() {
		select {
		case r.leave <- client:
		case <-r.done:
		}
	}()
	go client.write()
	client.read()
}
