package schemaregistry

import "time"

// Compatibility is a subject-scoped schema evolution rule owned by the remote
// registry.
type Compatibility string

const (
	// Backward allows new schemas to read data written with the previous schema.
	// This is the registry default when a subject has no level configured.
	Backward Compatibility = "BACKWARD"

	// BackwardTransitive is Backward against all previous versions.
	BackwardTransitive Compatibility = "BACKWARD_TRANSITIVE"

	// Forward allows the previous schema to read data written with the new schema.
	Forward Compatibility = "FORWARD"

	// ForwardTransitive is Forward against all previous versions.
	ForwardTransitive Compatibility = "FORWARD_TRANSITIVE"

	// Full combines Backward and Forward.
	Full Compatibility = "FULL"

	// FullTransitive is Full against all previous versions.
	FullTransitive Compatibility = "FULL_TRANSITIVE"

	// None disables compatibility checking for the subject.
	None Compatibility = "NONE"
)

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the schema registry client.
type Config struct {
	// URL is the schema registry endpoint (e.g., "http://localhost:8081")
	URL string

	// Username for basic auth (optional)
	Username string

	// Password for basic auth (optional)
	Password string

	// Timeout for HTTP requests
	// Default: 10 seconds
	Timeout time.Duration

	// DefaultCompatibility is the level Register establishes on a subject
	// whose compatibility is not yet configured, unless the call requests
	// a different one.
	// Default: Backward
	DefaultCompatibility Compatibility
}
