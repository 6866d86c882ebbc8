// Package analytics posts anonymous usage events to an optional collector
// endpoint. Without an endpoint the service stays disabled and events are
// dropped on the floor; failures to deliver are logged and never surface to
// callers.
package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const postTimeout = 5 * time.Second

// TelemetryService implements Service over a plain HTTP POST per event.
type TelemetryService struct {
	endpoint  string
	client    HTTPClient
	sessionID string

	mu      sync.Mutex
	enabled bool
}

// Option configures a TelemetryService.
type Option func(*TelemetryService)

// WithHTTPClient replaces the HTTP client used to deliver events.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *TelemetryService) { s.client = client }
}

// NewTelemetryService builds the service. An empty endpoint leaves it
// disabled; Enable has no effect in that case.
func NewTelemetryService(endpoint string, opts ...Option) *TelemetryService {
	s := &TelemetryService{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: postTimeout},
		sessionID: uuid.NewString(),
		enabled:   endpoint != "",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enable turns event emission on, provided an endpoint is configured.
func (s *TelemetryService) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = s.endpoint != ""
}

// Disable turns event emission off.
func (s *TelemetryService) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

func (s *TelemetryService) isEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// EmitEvent delivers event to the collector endpoint. Delivery is
// fire-and-forget: the POST runs on its own goroutine and failures are only
// logged.
func (s *TelemetryService) EmitEvent(event TrackEvent) {
	if !s.isEnabled() {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Debug("failed to serialize analytics event", "event", event.Name, "error", err)
		return
	}

	go func() {
		resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
		if err != nil {
			slog.Debug("failed to deliver analytics event", "event", event.Name, "error", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusBadRequest {
			slog.Debug("analytics collector rejected event", "event", event.Name, "status", resp.StatusCode)
		}
	}()
}
