package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mailwright/mailwright/pkg/logger"
)

// GmailDeliverer creates Gmail drafts or sends immediately, then applies a
// <prefix> / <prefix>/<brand> label pair so delivered messages group under a
// common parent per brand.
type GmailDeliverer struct {
	svc         *gmail.Service
	labelPrefix string
	from        string
	replyTo     string
	log         *slog.Logger
}

// GmailOption configures the deliverer.
type GmailOption func(*GmailDeliverer)

// WithGmailLogger sets the logger used for delivery records.
func WithGmailLogger(log *slog.Logger) GmailOption {
	return func(g *GmailDeliverer) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGmailDeliverer builds a deliverer from stored OAuth credentials: the
// OAuth client definition plus a previously obtained user token, both read
// from the configured files. Obtaining the token interactively is the
// operator's concern, not this package's.
func NewGmailDeliverer(ctx context.Context, cfg Config, opts ...GmailOption) (*GmailDeliverer, error) {
	clientData, err := os.ReadFile(cfg.GoogleClientFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading oauth client file: %w", ErrInvalidConfig, err)
	}
	oauthCfg, err := google.ConfigFromJSON(clientData, gmail.GmailModifyScope, gmail.GmailComposeScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing oauth client file: %w", ErrInvalidConfig, err)
	}

	tokenData, err := os.ReadFile(cfg.GoogleTokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading oauth token file: %w", ErrInvalidConfig, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("%w: parsing oauth token file: %w", ErrInvalidConfig, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, &token)))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	prefix := cfg.LabelPrefix
	if prefix == "" {
		prefix = "Agent-Sent"
	}
	g := &GmailDeliverer{
		svc:         svc,
		labelPrefix: prefix,
		from:        cfg.SenderEmail,
		replyTo:     cfg.ReplyToEmail,
		log:         logger.Noop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Deliver implements Deliverer.
func (g *GmailDeliverer) Deliver(ctx context.Context, msg Message, mode Mode) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if mode != ModeDraft && mode != ModeSend {
		return Result{}, fmt.Errorf("%w: got %q", ErrInvalidMode, mode)
	}

	mime, err := buildMIME(msg, g.from, g.replyTo)
	if err != nil {
		return Result{}, errors.Join(ErrDeliveryFailed, err)
	}
	raw := toRawMessage(mime)

	labelNames := labelHierarchy(g.labelPrefix, msg.BrandID)
	labelIDs, err := g.ensureLabels(ctx, labelNames)
	if err != nil {
		return Result{}, asDeliveryError(err)
	}

	var msgID string
	switch mode {
	case ModeSend:
		sent, err := g.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
		if err != nil {
			return Result{}, asDeliveryError(err)
		}
		msgID = sent.Id
		g.log.InfoContext(ctx, "gmail message sent", "id", msgID, "to", msg.To, "subject", msg.Subject)
	default:
		d, err := g.svc.Users.Drafts.Create("me", &gmail.Draft{
			Message: &gmail.Message{Raw: raw},
		}).Context(ctx).Do()
		if err != nil {
			return Result{}, asDeliveryError(err)
		}
		if d.Message != nil {
			msgID = d.Message.Id
		}
		g.log.InfoContext(ctx, "gmail draft created", "id", msgID, "to", msg.To, "subject", msg.Subject)
	}

	// Label the underlying message so drafts and sent mail file identically.
	_, err = g.svc.Users.Messages.Modify("me", msgID, &gmail.ModifyMessageRequest{
		AddLabelIds: labelIDs,
	}).Context(ctx).Do()
	if err != nil {
		return Result{}, asDeliveryError(err)
	}

	return Result{Status: mode, ID: msgID, LabelsApplied: labelIDs}, nil
}

// ensureLabels resolves the parent and leaf label names to ids, creating
// whichever don't exist yet.
func (g *GmailDeliverer) ensureLabels(ctx context.Context, names []string) ([]string, error) {
	resp, err := g.svc.Users.Labels.List("me").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	existing := make(map[string]string, len(resp.Labels))
	for _, lb := range resp.Labels {
		existing[lb.Name] = lb.Id
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := existing[name]; ok {
			ids = append(ids, id)
			continue
		}
		created, err := g.svc.Users.Labels.Create("me", &gmail.Label{
			Name:                  name,
			LabelListVisibility:   "labelShow",
			MessageListVisibility: "show",
		}).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		ids = append(ids, created.Id)
	}
	return ids, nil
}

// asDeliveryError maps a Gmail API error onto the tagged Failure type,
// preserving the remote status code for the orchestration layer.
func asDeliveryError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &Failure{StatusCode: apiErr.Code, Detail: apiErr.Message}
	}
	return errors.Join(ErrDeliveryFailed, err)
}
