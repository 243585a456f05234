package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevDeliverer implements Deliverer for local development and tests. It
// saves each message as an HTML file plus a JSON metadata file instead of
// contacting a mail provider, and serves both draft and send modes.
type DevDeliverer struct {
	dir         string
	labelPrefix string
}

// NewDevDeliverer creates a file-backed deliverer writing into dir. The
// directory is created on first delivery.
func NewDevDeliverer(dir, labelPrefix string) *DevDeliverer {
	if labelPrefix == "" {
		labelPrefix = "Agent-Sent"
	}
	return &DevDeliverer{dir: dir, labelPrefix: labelPrefix}
}

// devMetadata is the JSON sidecar written next to each HTML file.
type devMetadata struct {
	Timestamp     string   `json:"timestamp"`
	To            string   `json:"to"`
	Subject       string   `json:"subject"`
	Mode          Mode     `json:"mode"`
	BrandID       string   `json:"brand_id"`
	LabelsApplied []string `json:"labels_applied"`
	BodyText      string   `json:"body_text,omitempty"`
}

// Deliver implements Deliverer.
func (d *DevDeliverer) Deliver(ctx context.Context, msg Message, mode Mode) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if mode != ModeDraft && mode != ModeSend {
		return Result{}, fmt.Errorf("%w: got %q", ErrInvalidMode, mode)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}

	now := time.Now()
	id := uuid.NewString()
	labels := labelHierarchy(d.labelPrefix, msg.BrandID)
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0o644); err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}

	meta := devMetadata{
		Timestamp:     now.Format(time.RFC3339),
		To:            msg.To,
		Subject:       msg.Subject,
		Mode:          mode,
		BrandID:       msg.BrandID,
		LabelsApplied: labels,
		BodyText:      msg.BodyText,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}

	return Result{Status: mode, ID: id, LabelsApplied: labels}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject into a safe lower-case filename stem.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
