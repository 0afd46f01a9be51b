package schemaregistry

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/seriouslag/confluent-schema-registry/v1/serde"
)

// Cache maps registry IDs to parsed schema codecs and fetches missing
// entries from the remote registry on demand.
//
// The cache is unbounded and append-only for the lifetime of the owning
// SchemaRegistry instance: a registry ID's content is immutable by protocol
// design, so entries are never evicted or invalidated, only cleared
// wholesale via Clear. All methods are safe for concurrent use.
type Cache struct {
	remote   Remote
	backends serde.Registry

	mu     sync.RWMutex
	codecs map[int]serde.Codec

	// flight coalesces concurrent fetches so that at most one outbound
	// request per missing ID is in flight at any time. Clear swaps the
	// group; fetches already dispatched keep their old group and may
	// repopulate the cache after clearing, which is accepted.
	flight *singleflight.Group
}

// NewCache creates a cache fetching missing schemas through remote and
// parsing them with backends.
func NewCache(remote Remote, backends serde.Registry) *Cache {
	return &Cache{
		remote:   remote,
		backends: backends,
		codecs:   make(map[int]serde.Codec),
		flight:   &singleflight.Group{},
	}
}

// GetSchema returns the cached codec for id, if present. Pure lookup, no I/O.
func (c *Cache) GetSchema(id int) (serde.Codec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	codec, ok := c.codecs[id]
	return codec, ok
}

// SetSchema parses schema with the backend matching schemaType and stores
// the codec under id. Calling twice with the same id is safe; the entry is
// overwritten with the equivalent parsed content.
func (c *Cache) SetSchema(id int, schemaType serde.SchemaType, schema string) (serde.Codec, error) {
	codec, err := c.backends.Parse(schemaType, schema)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.codecs[id] = codec
	c.mu.Unlock()

	return codec, nil
}

// Resolve returns the codec for id, fetching it from the remote registry if
// it is not cached. A cached entry is returned without any outbound call.
//
// Concurrent calls for the same missing id are coalesced: only the first
// triggers a remote fetch, and every caller observes the identical result,
// success or failure. Callers arriving after the fetch settled hit the
// populated cache instead of triggering another fetch.
func (c *Cache) Resolve(ctx context.Context, id int) (serde.Codec, error) {
	if codec, ok := c.GetSchema(id); ok {
		return codec, nil
	}

	c.mu.RLock()
	flight := c.flight
	c.mu.RUnlock()

	v, err, _ := flight.Do(strconv.Itoa(id), func() (interface{}, error) {
		// Re-check under the flight: a caller that lost the race to a
		// fetch that already settled must see the settled result.
		if codec, ok := c.GetSchema(id); ok {
			return codec, nil
		}

		schema, err := c.remote.FetchSchemaByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return c.SetSchema(id, schema.Type, schema.Definition)
	})
	if err != nil {
		return nil, err
	}

	return v.(serde.Codec), nil
}

// Clear empties the cache and the pending-fetch table. Fetches already in
// flight still complete against the old table and may repopulate the cache
// afterwards.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.codecs = make(map[int]serde.Codec)
	c.flight = &singleflight.Group{}
	c.mu.Unlock()
}
