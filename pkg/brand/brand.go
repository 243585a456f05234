package brand

import (
	"strings"

	"github.com/mailwright/mailwright/pkg/validator"
)

// UTMDefaults are the tracking parameters appended to outbound links when a
// link carries none of its own.
type UTMDefaults struct {
	Source   string `json:"source" yaml:"source"`
	Medium   string `json:"medium" yaml:"medium"`
	Campaign string `json:"campaign" yaml:"campaign"`
}

// UnsubscribePolicy declares which purposes require an unsubscribe link.
type UnsubscribePolicy struct {
	RequiredFor []string `json:"required_for" yaml:"required_for"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
}

// AttachmentsPolicy bounds what may be attached to brand emails.
type AttachmentsPolicy struct {
	Allowed   []string `json:"allowed" yaml:"allowed"`
	MaxSizeMB int      `json:"max_size_mb" yaml:"max_size_mb"`
}

// Config is a brand's full identity. Only Name is required; everything else
// defaults via applyDefaults.
type Config struct {
	Name string `json:"name" yaml:"name"`

	// Visuals / layout
	LogoURL        string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
	Primary        string `json:"primary" yaml:"primary"`
	Secondary      string `json:"secondary" yaml:"secondary"`
	Background     string `json:"background" yaml:"background"`
	TextColor      string `json:"text_color" yaml:"text_color"`
	ContentWidthPx int    `json:"content_width_px" yaml:"content_width_px"`
	FontFamily     string `json:"font_family" yaml:"font_family"`
	ButtonRadiusPx int    `json:"button_radius_px" yaml:"button_radius_px"`

	// Links & copy blocks
	Links         map[string]string `json:"links" yaml:"links"`
	SignatureHTML string            `json:"signature_html,omitempty" yaml:"signature_html,omitempty"`
	FooterHTML    string            `json:"footer_html,omitempty" yaml:"footer_html,omitempty"`
	LegalAddress  string            `json:"legal_address,omitempty" yaml:"legal_address,omitempty"`

	// Sending metadata
	FromName    string `json:"from_name,omitempty" yaml:"from_name,omitempty"`
	FromEmail   string `json:"from_email,omitempty" yaml:"from_email,omitempty"`
	ReplyTo     string `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	LabelPrefix string `json:"label_prefix" yaml:"label_prefix"`

	// Behavior
	UTMDefaults       UTMDefaults       `json:"utm_defaults" yaml:"utm_defaults"`
	Unsubscribe       UnsubscribePolicy `json:"unsubscribe" yaml:"unsubscribe"`
	AttachmentsPolicy AttachmentsPolicy `json:"attachments_policy" yaml:"attachments_policy"`
	InlineImages      bool              `json:"inline_images" yaml:"inline_images"`
}

// applyDefaults fills every optional field a brand file may omit.
func (c *Config) applyDefaults() {
	if c.Primary == "" {
		c.Primary = "#2563EB"
	}
	if c.Secondary == "" {
		c.Secondary = "#111827"
	}
	if c.Background == "" {
		c.Background = "#FFFFFF"
	}
	if c.TextColor == "" {
		c.TextColor = "#111827"
	}
	if c.ContentWidthPx == 0 {
		c.ContentWidthPx = 600
	}
	if c.FontFamily == "" {
		c.FontFamily = "Arial, Helvetica, sans-serif"
	}
	if c.ButtonRadiusPx == 0 {
		c.ButtonRadiusPx = 6
	}
	if c.Links == nil {
		c.Links = map[string]string{}
	}
	if c.LabelPrefix == "" {
		c.LabelPrefix = "Agent-Sent"
	}
	if c.UTMDefaults.Source == "" {
		c.UTMDefaults.Source = "agent"
	}
	if c.UTMDefaults.Medium == "" {
		c.UTMDefaults.Medium = "email"
	}
	if c.UTMDefaults.Campaign == "" {
		c.UTMDefaults.Campaign = "generic"
	}
	if c.Unsubscribe.RequiredFor == nil {
		c.Unsubscribe.RequiredFor = []string{"newsletter", "outreach"}
	}
	if c.AttachmentsPolicy.Allowed == nil {
		c.AttachmentsPolicy.Allowed = []string{"pdf", "png", "jpg", "jpeg"}
	}
	if c.AttachmentsPolicy.MaxSizeMB == 0 {
		c.AttachmentsPolicy.MaxSizeMB = 10
	}
}

// Validate checks the semantic invariants a brand file must satisfy.
func (c Config) Validate() error {
	return validator.Apply(
		validator.Required("name", c.Name),
		validator.ValidHexColor("primary", c.Primary),
		validator.ValidHexColor("secondary", c.Secondary),
		validator.ValidHexColor("background", c.Background),
		validator.ValidHexColor("text_color", c.TextColor),
		logoSchemeRule(c.LogoURL),
	)
}

// logoSchemeRule accepts http(s), cid: and data: logo references only.
func logoSchemeRule(logoURL string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			if logoURL == "" {
				return true
			}
			for _, prefix := range []string{"http", "cid:", "data:"} {
				if strings.HasPrefix(logoURL, prefix) {
					return true
				}
			}
			return false
		},
		Error: validator.ValidationError{
			Field:   "logo_url",
			Message: "must use an http(s), cid: or data: scheme",
		},
	}
}

// Default returns the built-in brand used when no brand directory is
// configured, so the pipeline works out of the box.
func Default() Config {
	cfg := Config{
		Name: "Mailwright",
		Links: map[string]string{
			"website": "https://mailwright.dev",
			"support": "https://mailwright.dev/support",
		},
		SignatureHTML: "<p>— The Mailwright Team</p>",
		FooterHTML:    `<p>© Mailwright • <a href="https://mailwright.dev">mailwright.dev</a></p>`,
	}
	cfg.applyDefaults()
	return cfg
}
