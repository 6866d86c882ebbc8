package analytics_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/frosthollow/snowflake-mcp/internal/analytics"
)

// capturingClient records posted payloads and signals each delivery, since
// EmitEvent delivers asynchronously.
type capturingClient struct {
	delivered chan postedEvent
}

type postedEvent struct {
	url         string
	contentType string
	body        []byte
}

func newCapturingClient() *capturingClient {
	return &capturingClient{delivered: make(chan postedEvent, 8)}
}

func (c *capturingClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	c.delivered <- postedEvent{url: url, contentType: contentType, body: data}
	return &http.Response{
		StatusCode: http.StatusAccepted,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func (c *capturingClient) waitForEvent(t *testing.T) postedEvent {
	t.Helper()
	select {
	case ev := <-c.delivered:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
		return postedEvent{}
	}
}

func TestEmitEventPostsJSON(t *testing.T) {
	client := newCapturingClient()
	svc := analytics.NewTelemetryService("https://collector.example/events", analytics.WithHTTPClient(client))

	svc.EmitEvent(svc.NewToolsEvent("query-database"))

	got := client.waitForEvent(t)
	if got.url != "https://collector.example/events" {
		t.Errorf("posted to %q", got.url)
	}
	if got.contentType != "application/json" {
		t.Errorf("content type = %q", got.contentType)
	}

	var event analytics.TrackEvent
	if err := json.Unmarshal(got.body, &event); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if event.EventID == "" || event.SessionID == "" {
		t.Error("event is missing identifiers")
	}
	if event.Properties["tool"] != "query-database" {
		t.Errorf("tool property = %v", event.Properties["tool"])
	}
}

func TestEventsShareOneSession(t *testing.T) {
	client := newCapturingClient()
	svc := analytics.NewTelemetryService("https://collector.example/events", analytics.WithHTTPClient(client))

	first := svc.NewToolsEvent("list-tables")
	second := svc.NewStartupEvent(analytics.StartupEventInfo{ServerVersion: "1.0.0", Transport: "stdio"})

	if first.SessionID != second.SessionID {
		t.Error("events from one service should share a session id")
	}
	if first.EventID == second.EventID {
		t.Error("each event should carry its own event id")
	}
}

func TestDisabledServiceDropsEvents(t *testing.T) {
	client := newCapturingClient()

	// No endpoint configured: stays disabled even after Enable.
	svc := analytics.NewTelemetryService("", analytics.WithHTTPClient(client))
	svc.Enable()
	svc.EmitEvent(svc.NewToolsEvent("query-database"))

	// Explicitly disabled with an endpoint configured.
	svc = analytics.NewTelemetryService("https://collector.example/events", analytics.WithHTTPClient(client))
	svc.Disable()
	svc.EmitEvent(svc.NewToolsEvent("query-database"))

	select {
	case ev := <-client.delivered:
		t.Fatalf("unexpected delivery: %s", ev.body)
	case <-time.After(100 * time.Millisecond):
	}
}
