package models

import "time"

// AuthResponse is the body returned by the register and login endpoints:
// a freshly issued bearer token plus the normalized user view.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
// Message is human-readable and never carries internal error detail.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AckResponse acknowledges a destructive operation (task deletion).
type AckResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse is returned by the /health endpoint. Database is either
// "connected" or "disconnected"; the endpoint itself always answers 200.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// ServiceInfoResponse is the banner served at the API root.
type ServiceInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
