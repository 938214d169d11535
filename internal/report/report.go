// Package report turns a pipeline result into a run summary and fans it
// out to the configured notification sinks.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/juan-oclock/kansyl-assets/internal/config"
	"github.com/juan-oclock/kansyl-assets/internal/mqtt"
	"github.com/juan-oclock/kansyl-assets/internal/pipeline"
	"github.com/juan-oclock/kansyl-assets/internal/webhook"
)

// Entry is the outcome of one catalog entry.
type Entry struct {
	Filename  string `json:"filename"`
	PixelSize int    `json:"pixel_size"`
	Error     string `json:"error,omitempty"`
}

// Summary describes one icon-set run.
type Summary struct {
	Command    string    `json:"command"`
	Theme      string    `json:"theme"`
	Dir        string    `json:"dir"`
	Written    int       `json:"written"`
	Failed     int       `json:"failed"`
	Backup     string    `json:"backup,omitempty"`
	Started    time.Time `json:"started"`
	DurationMS int64     `json:"duration_ms"`
	Entries    []Entry   `json:"entries"`
}

// FromResult builds the summary for a finished run.
func FromResult(command string, r *pipeline.Result) Summary {
	s := Summary{
		Command:    command,
		Theme:      r.Theme,
		Dir:        r.Target.Dir,
		Written:    r.Written,
		Failed:     r.Failed,
		Started:    r.Started,
		DurationMS: r.Finished.Sub(r.Started).Milliseconds(),
		Entries:    make([]Entry, 0, len(r.Entries)),
	}
	if r.Backup != nil {
		s.Backup = r.Backup.Path()
	}
	for _, e := range r.Entries {
		entry := Entry{Filename: e.Filename, PixelSize: e.PixelSize}
		if e.Err != nil {
			entry.Error = e.Err.Error()
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

// JSON encodes the summary for MQTT and webhook payloads.
func (s Summary) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// Notifier publishes summaries. Failures are printed as warnings and
// never returned.
type Notifier struct {
	mqtt    *mqtt.Options
	hookURL string
	headers map[string]string
	warn    io.Writer

	publish func(mqtt.Options, []byte) error
	send    func(string, []byte, map[string]string) error
}

// NewNotifier returns a Notifier for the sinks enabled in cfg. Warnings
// go to warn.
func NewNotifier(cfg config.Config, warn io.Writer) *Notifier {
	n := &Notifier{
		hookURL: cfg.Webhook.URL,
		headers: cfg.Webhook.Headers,
		warn:    warn,
		publish: mqtt.Publish,
		send:    webhook.Send,
	}
	if cfg.MQTT.Broker != "" {
		n.mqtt = &mqtt.Options{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      cfg.MQTT.QoS,
			Retain:   cfg.MQTT.Retain,
		}
	}
	return n
}

// Enabled reports whether any sink is configured.
func (n *Notifier) Enabled() bool {
	return n.mqtt != nil || n.hookURL != ""
}

// Notify sends s to every configured sink.
func (n *Notifier) Notify(s Summary) {
	if !n.Enabled() {
		return
	}
	payload, err := s.JSON()
	if err != nil {
		fmt.Fprintf(n.warn, "Warning: report: %v\n", err)
		return
	}
	if n.mqtt != nil {
		if err := n.publish(*n.mqtt, payload); err != nil {
			fmt.Fprintf(n.warn, "Warning: %v\n", err)
		}
	}
	if n.hookURL != "" {
		if err := n.send(n.hookURL, payload, n.headers); err != nil {
			fmt.Fprintf(n.warn, "Warning: %v\n", err)
		}
	}
}
