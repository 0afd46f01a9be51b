package schemaregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/seriouslag/confluent-schema-registry/v1/serde"
)

// Schema is a schema definition together with the language it is written in.
// Immutable once constructed.
type Schema struct {
	// Type is the schema language tag (AVRO, JSON, PROTOBUF).
	Type serde.SchemaType

	// Definition is the raw textual schema.
	Definition string
}

// Metadata contains metadata about a registered schema version.
type Metadata struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Schema  string `json:"schema"`
	Subject string `json:"subject"`
	Type    string `json:"schemaType,omitempty"`
}

// Client is the typed call surface over the remote registry's HTTP API.
// It maps the registry's error codes to this package's sentinel errors and
// does nothing else: no caching, no retries, no timeouts beyond the
// configured HTTP client timeout.
type Client struct {
	url        string
	httpClient *http.Client

	// Authentication
	username string
	password string
}

const contentType = "application/vnd.schemaregistry.v1+json"

// NewClient creates a new schema registry client.
// Returns the concrete *Client type.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("schema registry URL is required")
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		username: cfg.Username,
		password: cfg.Password,
	}, nil
}

// schemaRequest is the request body shared by the register and lookup
// endpoints. The schemaType field is omitted for Avro, which the registry
// treats as the default.
type schemaRequest struct {
	Schema     string `json:"schema"`
	SchemaType string `json:"schemaType,omitempty"`
}

func newSchemaRequest(schema Schema) schemaRequest {
	req := schemaRequest{Schema: schema.Definition}
	if schema.Type != "" && schema.Type != serde.Avro {
		req.SchemaType = schema.Type.String()
	}
	return req
}

// RegisterSchema registers schema content under subject and returns the
// registry ID the remote assigned. Registering identical content again
// returns the same ID. Malformed content yields ErrInvalidSchemaDefinition.
func (c *Client) RegisterSchema(ctx context.Context, subject string, schema Schema) (int, error) {
	var out struct {
		ID int `json:"id"`
	}

	path := "/subjects/" + url.PathEscape(subject) + "/versions"
	if err := c.do(ctx, http.MethodPost, path, newSchemaRequest(schema), &out); err != nil {
		var remote *remoteError
		if errors.As(err, &remote) && (remote.Code == remoteCodeInvalidSchema || remote.StatusCode == http.StatusUnprocessableEntity) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidSchemaDefinition, remote.Message)
		}
		return 0, err
	}

	return out.ID, nil
}

// FetchSchemaByID retrieves the schema registered under id.
// An ID unknown to the registry yields ErrSchemaNotFound.
func (c *Client) FetchSchemaByID(ctx context.Context, id int) (Schema, error) {
	var out struct {
		Schema     string `json:"schema"`
		SchemaType string `json:"schemaType"`
	}

	path := "/schemas/ids/" + strconv.Itoa(id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		var remote *remoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return Schema{}, fmt.Errorf("%w: id %d", ErrSchemaNotFound, id)
		}
		return Schema{}, err
	}

	return Schema{Type: schemaTypeOrAvro(out.SchemaType), Definition: out.Schema}, nil
}

// FetchLatestVersion retrieves the latest schema version registered under
// subject. A subject with no versions yields ErrSubjectNotFound.
func (c *Client) FetchLatestVersion(ctx context.Context, subject string) (*Metadata, error) {
	var metadata Metadata

	path := "/subjects/" + url.PathEscape(subject) + "/versions/latest"
	if err := c.do(ctx, http.MethodGet, path, nil, &metadata); err != nil {
		var remote *remoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %q", ErrSubjectNotFound, subject)
		}
		return nil, err
	}

	metadata.Subject = subject
	return &metadata, nil
}

// GetCompatibility returns the compatibility level configured for subject.
// The second return value reports whether a level is configured at all;
// an unset level is not an error.
func (c *Client) GetCompatibility(ctx context.Context, subject string) (Compatibility, bool, error) {
	var out struct {
		CompatibilityLevel string `json:"compatibilityLevel"`
	}

	path := "/config/" + url.PathEscape(subject)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		var remote *remoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, err
	}

	return Compatibility(out.CompatibilityLevel), true, nil
}

// SetCompatibility sets the compatibility level for subject.
func (c *Client) SetCompatibility(ctx context.Context, subject string, level Compatibility) error {
	body := struct {
		Compatibility string `json:"compatibility"`
	}{Compatibility: string(level)}

	path := "/config/" + url.PathEscape(subject)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// FindRegistrationByContent looks up the registry ID assigned to the exact
// schema content under subject. An unknown subject yields ErrSubjectNotFound;
// a known subject with no matching version yields ErrSchemaNotFoundForSubject.
func (c *Client) FindRegistrationByContent(ctx context.Context, subject string, schema Schema) (int, error) {
	var out struct {
		ID int `json:"id"`
	}

	path := "/subjects/" + url.PathEscape(subject)
	if err := c.do(ctx, http.MethodPost, path, newSchemaRequest(schema), &out); err != nil {
		var remote *remoteError
		if errors.As(err, &remote) {
			switch remote.Code {
			case remoteCodeSubjectNotFound:
				return 0, fmt.Errorf("%w: %q", ErrSubjectNotFound, subject)
			case remoteCodeSchemaNotFound:
				return 0, fmt.Errorf("%w: subject %q", ErrSchemaNotFoundForSubject, subject)
			}
		}
		return 0, err
	}

	return out.ID, nil
}

// do issues one request against the registry. Response bodies with an error
// status are decoded into *remoteError; transport failures are wrapped and
// propagated without reinterpretation.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", contentType)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("schema registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		remote := &remoteError{StatusCode: resp.StatusCode}
		var errBody struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			remote.Code = errBody.ErrorCode
			remote.Message = errBody.Message
		}
		return remote
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// schemaTypeOrAvro maps the registry's schemaType field to a tag; the
// registry omits the field for Avro.
func schemaTypeOrAvro(s string) serde.SchemaType {
	if s == "" {
		return serde.Avro
	}
	return serde.SchemaType(s)
}
