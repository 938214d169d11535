package report

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juan-oclock/kansyl-assets/internal/catalog"
	"github.com/juan-oclock/kansyl-assets/internal/config"
	"github.com/juan-oclock/kansyl-assets/internal/mqtt"
	"github.com/juan-oclock/kansyl-assets/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	specs := catalog.IOS()
	return &pipeline.Result{
		Theme:  "calendar",
		Target: pipeline.OutputTarget{Dir: "Assets.xcassets/AppIcon-Calendar.appiconset"},
		Entries: []pipeline.EntryResult{
			{Spec: specs[0], Filename: specs[0].Filename(), PixelSize: 40},
			{Spec: specs[1], Filename: specs[1].Filename(), PixelSize: 60, Err: errors.New("disk full")},
		},
		Written:  1,
		Failed:   1,
		Started:  start,
		Finished: start.Add(1500 * time.Millisecond),
	}
}

func TestFromResult(t *testing.T) {
	s := FromResult("calendar", sampleResult())
	if s.Command != "calendar" || s.Theme != "calendar" {
		t.Errorf("Command/Theme = %q/%q", s.Command, s.Theme)
	}
	if s.Written != 1 || s.Failed != 1 {
		t.Errorf("Written/Failed = %d/%d", s.Written, s.Failed)
	}
	if s.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", s.DurationMS)
	}
	if len(s.Entries) != 2 {
		t.Fatalf("len(Entries) = %d", len(s.Entries))
	}
	if s.Entries[0].Error != "" || s.Entries[1].Error != "disk full" {
		t.Errorf("Entries = %+v", s.Entries)
	}
	if s.Backup != "" {
		t.Errorf("Backup = %q, want empty", s.Backup)
	}
}

func TestSummaryJSON(t *testing.T) {
	data, err := FromResult("calendar", sampleResult()).JSON()
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["dir"] != "Assets.xcassets/AppIcon-Calendar.appiconset" {
		t.Errorf("dir = %v", m["dir"])
	}
	if _, ok := m["backup"]; ok {
		t.Error("backup should be omitted when empty")
	}
}

func TestNotifierDisabled(t *testing.T) {
	n := NewNotifier(config.Default(), io.Discard)
	if n.Enabled() {
		t.Error("default config should not enable notifications")
	}
	n.publish = func(mqtt.Options, []byte) error {
		t.Error("publish called while disabled")
		return nil
	}
	n.Notify(Summary{})
}

func TestNotifierWebhook(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Webhook.URL = srv.URL
	var warn strings.Builder
	NewNotifier(cfg, &warn).Notify(FromResult("simple", sampleResult()))

	if !strings.Contains(body, `"command":"simple"`) {
		t.Errorf("body = %s", body)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warning: %s", warn.String())
	}
}

func TestNotifierMQTTFailureWarns(t *testing.T) {
	cfg := config.Default()
	cfg.MQTT.Broker = "tcp://broker:1883"
	var warn strings.Builder
	n := NewNotifier(cfg, &warn)

	var got mqtt.Options
	n.publish = func(o mqtt.Options, payload []byte) error {
		got = o
		return errors.New("mqtt: connect timeout")
	}
	n.Notify(FromResult("simple", sampleResult()))

	if got.Topic != config.DefaultMQTTTopic || got.ClientID != config.DefaultMQTTClientID {
		t.Errorf("options = %+v", got)
	}
	if !strings.Contains(warn.String(), "Warning: mqtt: connect timeout") {
		t.Errorf("warning = %q", warn.String())
	}
}
