package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailwright/mailwright/pkg/validator"
)

// Mode is the delivery disposition.
type Mode string

const (
	// ModeDraft creates the message without sending it.
	ModeDraft Mode = "draft"
	// ModeSend dispatches the message immediately.
	ModeSend Mode = "send"
)

// ParseMode validates a caller-supplied mode string. Empty input defaults
// to draft, the safer disposition.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ModeDraft, nil
	case ModeDraft:
		return ModeDraft, nil
	case ModeSend:
		return ModeSend, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMode, s)
	}
}

// Message is a fully-rendered email ready for a provider.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text"`
	BrandID  string `json:"brand_id"`
}

// Validate checks the message before it reaches any provider.
func (m Message) Validate() error {
	return validator.Apply(
		validator.Required("to", m.To),
		validator.ValidEmail("to", m.To),
		validator.Required("subject", m.Subject),
		validator.Required("body_html", m.BodyHTML),
	)
}

// Result reports what the provider did.
type Result struct {
	Status        Mode     `json:"status"`
	ID            string   `json:"id"`
	LabelsApplied []string `json:"labels_applied"`
}

// Deliverer is the provider contract consumed by the orchestrator.
type Deliverer interface {
	Deliver(ctx context.Context, msg Message, mode Mode) (Result, error)
}

// Plan is the deterministic, side-effect-free delivery plan shown in
// previews. No provider is contacted to produce it.
type Plan struct {
	Action Mode     `json:"action"`
	Labels []string `json:"labels"`
}

// PlanFor describes what a deliver call with default settings would do.
func PlanFor(labelPrefix string) Plan {
	return Plan{
		Action: ModeDraft,
		Labels: []string{labelPrefix + "/Draft"},
	}
}

// labelHierarchy is the parent/leaf label pair applied to every delivered
// message so they group under a common parent per brand.
func labelHierarchy(prefix, brandID string) []string {
	if brandID == "" {
		brandID = "default"
	}
	return []string{prefix, prefix + "/" + brandID}
}
