package models

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks the websocket connections of logged-in authors so that
// moderation events can be pushed to the right person. All four maps
// and slices are owned by the hub's run loop; other goroutines talk to
// it only through the channels.
type Hub struct {
	Clients     map[*Client]bool
	Broadcast   chan []byte
	Notify      chan UserEvent
	Register    chan *Client
	Unregister  chan *Client
	UserClients map[uint][]*Client
}

type Client struct {
	ID     string
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
}

// Event is the envelope for every message pushed over a moderation
// feed, e.g. {"type": "comment_created", "data": {...}}.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// UserEvent is a marshaled Event addressed to one author's sockets.
type UserEvent struct {
	UserID  uint
	Payload []byte
}

func NewHub() *Hub {
	return &Hub{
		Clients:     make(map[*Client]bool),
		Broadcast:   make(chan []byte),
		Notify:      make(chan UserEvent, 256),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		UserClients: make(map[uint][]*Client),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}
}
