package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Event names emitted by this server.
const (
	eventServerStartup = "server_startup"
	eventToolInvoked   = "tool_invoked"
)

// TrackEvent is one usage event posted to the collector endpoint.
type TrackEvent struct {
	EventID    string         `json:"event_id"`
	SessionID  string         `json:"session_id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
	Time       time.Time      `json:"time"`
}

// StartupEventInfo carries the non-identifying server facts reported once
// at startup.
type StartupEventInfo struct {
	ServerVersion string
	Transport     string
	EagerConnect  bool
}

func (s *TelemetryService) newEvent(name string, properties map[string]any) TrackEvent {
	return TrackEvent{
		EventID:    uuid.NewString(),
		SessionID:  s.sessionID,
		Name:       name,
		Properties: properties,
		Time:       time.Now().UTC(),
	}
}

// NewStartupEvent builds the event emitted when the server boots.
func (s *TelemetryService) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return s.newEvent(eventServerStartup, map[string]any{
		"server_version": info.ServerVersion,
		"transport":      info.Transport,
		"eager_connect":  info.EagerConnect,
	})
}

// NewToolsEvent builds the event emitted on every tool invocation. Only the
// tool name is recorded, never arguments or results.
func (s *TelemetryService) NewToolsEvent(toolUsed string) TrackEvent {
	return s.newEvent(eventToolInvoked, map[string]any{
		"tool": toolUsed,
	})
}
