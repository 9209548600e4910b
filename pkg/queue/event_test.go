package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewCatalogEvent("tier", "t-1", "luna-artistry")

	assert.Equal(t, EventCatalogChanged, event.Type)
	assert.Equal(t, "tier", event.Entity)
	assert.Equal(t, "t-1", event.ID)
	assert.Equal(t, "luna-artistry", event.Slug)
	assert.False(t, event.At.Before(before))
}

func TestCatalogEvent_EncodeDecode(t *testing.T) {
	event := NewCatalogEvent("creator", "c-1", "beat-master")

	body, err := event.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"catalog.changed"`)

	decoded, err := DecodeCatalogEvent(body)
	require.NoError(t, err)
	assert.Equal(t, event.Entity, decoded.Entity)
	assert.Equal(t, event.Slug, decoded.Slug)
	assert.True(t, event.At.Equal(decoded.At))
}

func TestDecodeCatalogEvent_Rejects(t *testing.T) {
	_, err := DecodeCatalogEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = DecodeCatalogEvent([]byte(`{"entity":"creator"}`))
	assert.Error(t, err)
}

func TestNilClient(t *testing.T) {
	var c *Client
	assert.NoError(t, c.PublishCatalogEvent(NewCatalogEvent("post", "p-1", "")))
	assert.NoError(t, c.Close())
	assert.NoError(t, c.ConsumeCatalogEvents(context.Background(), func(CatalogEvent) error { return nil }))
}
