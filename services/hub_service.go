package services

import (
	"encoding/json"
	"log"

	"quill/models"
)

// HubService runs the moderation feed hub. Comment controllers push
// events here; the websocket handler registers author connections.
type HubService struct {
	hub *models.Hub
}

func NewHubService() *HubService {
	hub := models.NewHub()
	service := &HubService{hub: hub}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.registerClient(client)

		case client := <-h.hub.Unregister:
			h.unregisterClient(client)

		case message := <-h.hub.Broadcast:
			h.broadcastToAll(message)

		case event := <-h.hub.Notify:
			h.deliverToUser(event)
		}
	}
}

func (h *HubService) registerClient(client *models.Client) {
	h.hub.Clients[client] = true
	h.hub.UserClients[client.UserID] = append(h.hub.UserClients[client.UserID], client)
}

func (h *HubService) unregisterClient(client *models.Client) {
	if _, ok := h.hub.Clients[client]; ok {
		delete(h.hub.Clients, client)
		close(client.Send)

		if clients, exists := h.hub.UserClients[client.UserID]; exists {
			for i, c := range clients {
				if c == client {
					h.hub.UserClients[client.UserID] = append(clients[:i], clients[i+1:]...)
					break
				}
			}
			if len(h.hub.UserClients[client.UserID]) == 0 {
				delete(h.hub.UserClients, client.UserID)
			}
		}
	}
}

func (h *HubService) broadcastToAll(message []byte) {
	for client := range h.hub.Clients {
		select {
		case client.Send <- message:
		default:
			h.unregisterClient(client)
		}
	}
}

// deliverToUser runs on the hub loop. Clients with a full send buffer
// are dropped; unregisterClient is the only place that closes Send.
func (h *HubService) deliverToUser(event models.UserEvent) {
	for _, client := range h.hub.UserClients[event.UserID] {
		select {
		case client.Send <- event.Payload:
		default:
			h.unregisterClient(client)
		}
	}
}

// NotifyUser pushes an event to every open connection of one author.
// The event is handed to the hub loop, which owns the client maps, so
// it is safe to call from any request goroutine. Authors without an
// open socket simply miss the event; moderation state lives in the
// database, the feed is only a nudge.
func (h *HubService) NotifyUser(userID uint, eventType string, data interface{}) {
	event := models.Event{
		Type: eventType,
		Data: data,
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling hub event: %v", err)
		return
	}

	h.hub.Notify <- models.UserEvent{UserID: userID, Payload: messageBytes}
}
