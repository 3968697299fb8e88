package models

// ContactsResponse is the payload of the JSON contact-listing and search
// endpoints. The shape matches what the client map and search scripts
// consume.
type ContactsResponse struct {
	// Success is true when the listing was produced without a storage
	// failure.
	Success bool `json:"success"`

	// Contacts is the full ordered set of records, or the filtered set
	// for search responses. Never nil in a successful response.
	Contacts []Contact `json:"contacts"`

	// Count is len(Contacts), provided so clients can validate the
	// response without iterating.
	Count int `json:"count"`

	// Error carries a generic message when Success is false.
	Error string `json:"error,omitempty"`
}

// GeocodeResponse is the payload of the JSON geocode-proxy endpoint.
type GeocodeResponse struct {
	// Success is true when the provider returned at least one match.
	Success bool `json:"success"`

	// Result is the best-ranked match, present only on success.
	Result *GeocodeResult `json:"result,omitempty"`

	// Error carries a message when Success is false.
	Error string `json:"error,omitempty"`
}

// DeleteResponse is the payload of the AJAX contact-delete endpoint.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is the payload of the health-check endpoint.
type HealthResponse struct {
	// Status is "healthy" while the process is serving requests.
	Status string `json:"status"`

	// Timestamp is the RFC 3339 server time at response generation.
	Timestamp string `json:"timestamp"`

	// UptimeSeconds is how long the process has been running.
	UptimeSeconds float64 `json:"uptime"`

	// Version is the configured application version string.
	Version string `json:"version,omitempty"`
}
