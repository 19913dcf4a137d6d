package domain

import "time"

type PropertyType string

const (
	PropertyTypeStay       PropertyType = "stay"
	PropertyTypeCar        PropertyType = "car"
	PropertyTypeAttraction PropertyType = "attraction"
	PropertyTypeExperience PropertyType = "experience"
)

// PropertyStatus values are the exact strings the marketplace UI displays.
type PropertyStatus string

const (
	PropertyStatusOnline   PropertyStatus = "En ligne"
	PropertyStatusDraft    PropertyStatus = "Brouillon"
	PropertyStatusPending  PropertyStatus = "En attente"
	PropertyStatusRejected PropertyStatus = "Rejeté"
)

type Property struct {
	ID          int32        `json:"id"`
	HostID      int32        `json:"host_id"`
	Host        *User        `json:"host,omitempty"` // Populated when fetching property details
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Type        PropertyType `json:"type"`
	// RawPrice is the nightly (or daily, for cars) price in minor currency units.
	RawPrice        int64          `json:"raw_price"`
	Status          PropertyStatus `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	// InstantBook decides the booking entry point: when true a paid booking
	// is created directly in Confirmé, otherwise it starts En attente and
	// waits for host approval.
	InstantBook bool      `json:"instant_book"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}
