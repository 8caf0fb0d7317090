package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/device-quote/internal/metrics"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // clean audit
	colorYellow = 0xF1C40F // contact-for-price items only
	colorOrange = 0xE67E22 // missing prices or inactive anchors
)

// Discord allows at most 10 embeds per message and 25 fields per embed.
const (
	maxEmbeds       = 10
	maxFindingLines = 20
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAuditReport posts a summary embed followed by one embed per batch of
// findings.
func (d *DiscordNotifier) SendAuditReport(ctx context.Context, report *domain.AuditReport) error {
	payload := discordWebhookPayload{Embeds: buildEmbeds(report)}

	start := time.Now()
	err := d.post(ctx, payload)
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
	}
	return err
}

func buildEmbeds(report *domain.AuditReport) []discordEmbed {
	summary := discordEmbed{
		Title: fmt.Sprintf("Pricing audit: %d findings", len(report.Findings)),
		Color: reportColor(report),
		Fields: []discordEmbedField{
			{Name: "Devices", Value: strconv.Itoa(report.DevicesScanned), Inline: true},
			{Name: "Without price", Value: strconv.Itoa(report.DevicesWithoutPrice), Inline: true},
			{Name: "Inactive anchors", Value: strconv.Itoa(report.InactiveAnchors), Inline: true},
			{Name: "Contact for price", Value: strconv.Itoa(report.ContactForPrice), Inline: true},
		},
	}
	if !report.StartedAt.IsZero() {
		summary.Timestamp = report.StartedAt.UTC().Format(time.RFC3339)
	}

	embeds := []discordEmbed{summary}
	for start := 0; start < len(report.Findings); start += maxFindingLines {
		if len(embeds) == maxEmbeds-1 {
			embeds = append(embeds, discordEmbed{
				Title:       fmt.Sprintf("... and %d more findings", len(report.Findings)-start),
				Color:       colorYellow,
				Description: "Run `dqt audit` for the full list.",
			})
			break
		}
		end := min(start+maxFindingLines, len(report.Findings))
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("Findings %d-%d", start+1, end),
			Color:       summary.Color,
			Description: findingLines(report.Findings[start:end]),
		})
	}

	return embeds
}

func findingLines(findings []domain.AuditFinding) string {
	var b strings.Builder
	for _, f := range findings {
		fmt.Fprintf(&b, "`%s` %s (repair %d, buyback %d, contact %d)\n",
			f.DeviceID, f.Reason, f.RepairRows, f.BuybackRows, f.ContactItems)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func reportColor(report *domain.AuditReport) int {
	switch {
	case report.DevicesWithoutPrice > 0 || report.InactiveAnchors > 0:
		return colorOrange
	case report.ContactForPrice > 0:
		return colorYellow
	default:
		return colorGreen
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
