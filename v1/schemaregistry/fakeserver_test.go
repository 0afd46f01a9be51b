package schemaregistry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeRegistry is an in-memory Confluent Schema Registry used by the tests
// in this package. It implements the subset of the v1 API the client talks
// to, with the registry's documented error codes.
type fakeRegistry struct {
	mu sync.Mutex

	nextID      int
	schemasByID map[int]schemaRequest
	versions    map[string][]int       // subject -> ids in registration order
	idByContent map[string]int         // exact content -> id (global, like the real registry)
	configs     map[string]string      // subject -> compatibility level

	// fetchByIDCalls counts GET /schemas/ids/{id} requests, for asserting
	// fetch coalescing.
	fetchByIDCalls int

	// fetchDelay is applied to GET /schemas/ids/{id} so concurrent callers
	// actually overlap.
	fetchDelay time.Duration

	server *httptest.Server
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	t.Helper()

	f := &fakeRegistry{
		nextID:      1,
		schemasByID: make(map[int]schemaRequest),
		versions:    make(map[string][]int),
		idByContent: make(map[string]int),
		configs:     make(map[string]string),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRegistry) URL() string {
	return f.server.URL
}

func (f *fakeRegistry) FetchByIDCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchByIDCalls
}

func (f *fakeRegistry) SetFetchDelay(d time.Duration) {
	f.mu.Lock()
	f.fetchDelay = d
	f.mu.Unlock()
}

// SetConfig sets a subject's compatibility out-of-band, simulating an
// operator changing the registry configuration directly.
func (f *fakeRegistry) SetConfig(subject, level string) {
	f.mu.Lock()
	f.configs[subject] = level
	f.mu.Unlock()
}

func (f *fakeRegistry) Config(subject string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	level, ok := f.configs[subject]
	return level, ok
}

func contentKey(req schemaRequest) string {
	return req.SchemaType + "\x00" + req.Schema
}

func (f *fakeRegistry) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 3 && parts[0] == "subjects" && parts[2] == "versions" && r.Method == http.MethodPost:
		f.handleRegister(w, r, parts[1])
	case len(parts) == 3 && parts[0] == "schemas" && parts[1] == "ids" && r.Method == http.MethodGet:
		f.handleFetchByID(w, parts[2])
	case len(parts) == 4 && parts[0] == "subjects" && parts[2] == "versions" && parts[3] == "latest" && r.Method == http.MethodGet:
		f.handleLatest(w, parts[1])
	case len(parts) == 2 && parts[0] == "config" && r.Method == http.MethodGet:
		f.handleGetConfig(w, parts[1])
	case len(parts) == 2 && parts[0] == "config" && r.Method == http.MethodPut:
		f.handlePutConfig(w, r, parts[1])
	case len(parts) == 2 && parts[0] == "subjects" && r.Method == http.MethodPost:
		f.handleLookup(w, r, parts[1])
	default:
		writeRegistryError(w, http.StatusNotFound, 404, "unknown endpoint "+r.URL.Path)
	}
}

func (f *fakeRegistry) handleRegister(w http.ResponseWriter, r *http.Request, subject string) {
	var req schemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schema == "" {
		writeRegistryError(w, http.StatusUnprocessableEntity, 42201, "invalid schema")
		return
	}

	// A transparently invalid definition is rejected the way the real
	// registry rejects unparseable Avro.
	if strings.Contains(req.Schema, "\"type\":\"nonsense\"") {
		writeRegistryError(w, http.StatusUnprocessableEntity, 42201, "invalid schema definition")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := contentKey(req)
	id, ok := f.idByContent[key]
	if !ok {
		id = f.nextID
		f.nextID++
		f.idByContent[key] = id
		f.schemasByID[id] = req
	}

	registered := false
	for _, existing := range f.versions[subject] {
		if existing == id {
			registered = true
			break
		}
	}
	if !registered {
		f.versions[subject] = append(f.versions[subject], id)
	}

	writeJSON(w, map[string]int{"id": id})
}

func (f *fakeRegistry) handleFetchByID(w http.ResponseWriter, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeRegistryError(w, http.StatusNotFound, 40403, "schema not found")
		return
	}

	f.mu.Lock()
	f.fetchByIDCalls++
	delay := f.fetchDelay
	req, ok := f.schemasByID[id]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if !ok {
		writeRegistryError(w, http.StatusNotFound, 40403, "schema not found")
		return
	}

	writeJSON(w, map[string]string{
		"schema":     req.Schema,
		"schemaType": req.SchemaType,
	})
}

func (f *fakeRegistry) handleLatest(w http.ResponseWriter, subject string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.versions[subject]
	if len(ids) == 0 {
		writeRegistryError(w, http.StatusNotFound, 40401, "subject not found")
		return
	}

	id := ids[len(ids)-1]
	req := f.schemasByID[id]
	writeJSON(w, map[string]interface{}{
		"id":         id,
		"version":    len(ids),
		"schema":     req.Schema,
		"schemaType": req.SchemaType,
		"subject":    subject,
	})
}

func (f *fakeRegistry) handleGetConfig(w http.ResponseWriter, subject string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	level, ok := f.configs[subject]
	if !ok {
		writeRegistryError(w, http.StatusNotFound, 40408, "subject compatibility not configured")
		return
	}
	writeJSON(w, map[string]string{"compatibilityLevel": level})
}

func (f *fakeRegistry) handlePutConfig(w http.ResponseWriter, r *http.Request, subject string) {
	var req struct {
		Compatibility string `json:"compatibility"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusUnprocessableEntity, 42203, "invalid compatibility level")
		return
	}

	f.mu.Lock()
	f.configs[subject] = req.Compatibility
	f.mu.Unlock()

	writeJSON(w, req)
}

func (f *fakeRegistry) handleLookup(w http.ResponseWriter, r *http.Request, subject string) {
	var req schemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusUnprocessableEntity, 42201, "invalid schema")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ids, ok := f.versions[subject]
	if !ok {
		writeRegistryError(w, http.StatusNotFound, 40401, "subject not found")
		return
	}

	id, ok := f.idByContent[contentKey(req)]
	if ok {
		for _, registered := range ids {
			if registered == id {
				writeJSON(w, map[string]interface{}{
					"subject": subject,
					"id":      id,
					"schema":  req.Schema,
				})
				return
			}
		}
	}

	writeRegistryError(w, http.StatusNotFound, 40403, "schema not found")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", contentType)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRegistryError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error_code": code,
		"message":    message,
	})
}
