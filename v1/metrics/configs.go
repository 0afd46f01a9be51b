package metrics

// Config holds configuration for the metrics server.
type Config struct {
	// Address is the listen address for the /metrics endpoint
	// (e.g., ":9090")
	Address string

	// ServiceName is applied as a constant "service" label to all metrics
	ServiceName string

	// EnableDefaultCollectors controls registration of the standard Go,
	// process and build info collectors
	EnableDefaultCollectors bool
}
