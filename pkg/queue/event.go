package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const EventCatalogChanged = "catalog.changed"

// CatalogEvent announces a write to the catalog. Entity is one of
// "creator", "tier", "post", "product" or "user"; Slug is the owning creator's slug when known.
type CatalogEvent struct {
	Type   string    `json:"type"`
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	Slug   string    `json:"slug,omitempty"`
	At     time.Time `json:"at"`
}

func NewCatalogEvent(entityName, id, slug string) CatalogEvent {
	return CatalogEvent{
		Type:   EventCatalogChanged,
		Entity: entityName,
		ID:     id,
		Slug:   slug,
		At:     time.Now().UTC(),
	}
}

func (e CatalogEvent) Encode() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}

func DecodeCatalogEvent(body []byte) (CatalogEvent, error) {
	var event CatalogEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return CatalogEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Type == "" {
		return CatalogEvent{}, errors.New("event has no type")
	}
	return event, nil
}
