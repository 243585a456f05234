package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkDeliverer sends mail through Postmark's transactional API.
// Postmark has no draft concept, so draft mode is rejected with a tagged
// Failure rather than silently sending.
type PostmarkDeliverer struct {
	client      *postmark.Client
	from        string
	replyTo     string
	labelPrefix string
}

// NewPostmarkDeliverer creates a Postmark-backed deliverer. Both tokens and
// the sender address are required so misconfiguration fails at startup, not
// on the first send.
func NewPostmarkDeliverer(cfg Config) (*PostmarkDeliverer, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	prefix := cfg.LabelPrefix
	if prefix == "" {
		prefix = "Agent-Sent"
	}
	return &PostmarkDeliverer{
		client:      postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:        cfg.SenderEmail,
		replyTo:     cfg.ReplyToEmail,
		labelPrefix: prefix,
	}, nil
}

// Deliver implements Deliverer. Tracking is enabled for opens and HTML link
// clicks only, and the brand label hierarchy is carried as the Postmark tag.
func (p *PostmarkDeliverer) Deliver(ctx context.Context, msg Message, mode Mode) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if mode != ModeSend {
		return Result{}, &Failure{
			StatusCode: 400,
			Detail:     fmt.Sprintf("postmark does not support mode %q; use send", mode),
		}
	}

	labels := labelHierarchy(p.labelPrefix, msg.BrandID)
	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:       p.from,
		ReplyTo:    p.replyTo,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        labels[1],
		HTMLBody:   msg.BodyHTML,
		TextBody:   msg.BodyText,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}
	if resp.ErrorCode > 0 {
		return Result{}, &Failure{
			StatusCode: int(resp.ErrorCode),
			Detail:     fmt.Sprintf("postmark error: %s", resp.Message),
		}
	}

	return Result{Status: ModeSend, ID: resp.MessageID, LabelsApplied: labels}, nil
}
