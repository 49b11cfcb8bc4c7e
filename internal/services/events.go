package services

import "log"

// Entity event types published after successful writes.
const (
	EventUserCreated    = "user.created"
	EventUserUpdated    = "user.updated"
	EventUserDeleted    = "user.deleted"
	EventStoreCreated   = "store.created"
	EventStoreUpdated   = "store.updated"
	EventStoreDeleted   = "store.deleted"
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher delivers entity events to an external broker.
type EventPublisher interface {
	PublishEvent(eventType string, data interface{}) error
}

// deletedEntity is the payload of *.deleted events.
type deletedEntity struct {
	ID uint `json:"id"`
}

// publish sends an event when a publisher is configured. Delivery failures
// are logged and never fail the request that produced the event.
func publish(p EventPublisher, eventType string, data interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(eventType, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
