package events

import (
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInquiryReceived EventType = "inquiry_received"
	EventCatalogChanged  EventType = "catalog_changed"
	EventAdminLoggedIn   EventType = "admin_logged_in"
)

// CatalogAction names the mutation behind EventCatalogChanged.
type CatalogAction string

const (
	CatalogCreated CatalogAction = "created"
	CatalogUpdated CatalogAction = "updated"
	CatalogDeleted CatalogAction = "deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InquiryReceivedPayload carries the submitted inquiry.
type InquiryReceivedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
	// PackageTitle is resolved in the inquiry locale when a package was referenced.
	PackageTitle string `json:"package_title,omitempty"`
}

// CatalogChangedPayload identifies the touched record.
type CatalogChangedPayload struct {
	Resource string        `json:"resource"`
	ID       string        `json:"id"`
	Action   CatalogAction `json:"action"`
}

// AdminLoggedInPayload payload.
type AdminLoggedInPayload struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
