package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/mailwright/mailwright/pkg/brand"
	"github.com/mailwright/mailwright/pkg/delivery"
	"github.com/mailwright/mailwright/pkg/draft"
	"github.com/mailwright/mailwright/pkg/interpret"
	"github.com/mailwright/mailwright/pkg/logger"
	"github.com/mailwright/mailwright/pkg/render"
	"github.com/mailwright/mailwright/pkg/session"
)

// collaboratorTimeout bounds every render/deliver collaborator call so a
// hung provider surfaces as a distinguishable failure instead of blocking.
const collaboratorTimeout = 30 * time.Second

// Preview is the no-side-effect result of rendering a request.
type Preview struct {
	Subject string        `json:"subject"`
	HTML    string        `json:"html"`
	Text    string        `json:"text"`
	Plan    delivery.Plan `json:"plan"`
}

// DeliverResult is what a committed delivery reports back.
type DeliverResult struct {
	Status        delivery.Mode `json:"status"`
	ID            string        `json:"id"`
	LabelsApplied []string      `json:"labels_applied"`
	To            string        `json:"to"`
	Subject       string        `json:"subject"`
}

// Service orchestrates the drafting pipeline against injected collaborators.
type Service struct {
	brands      brand.Loader
	deliverer   delivery.Deliverer
	sessions    session.Store
	log         *slog.Logger
	labelPrefix string
	defaultMode delivery.Mode
	timeout     time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the structured logger; defaults to a noop logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLabelPrefix sets the label prefix reported in preview plans.
func WithLabelPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.labelPrefix = prefix
		}
	}
}

// WithDefaultMode sets the disposition used when a deliver call omits one.
func WithDefaultMode(mode delivery.Mode) Option {
	return func(s *Service) {
		if mode == delivery.ModeDraft || mode == delivery.ModeSend {
			s.defaultMode = mode
		}
	}
}

// WithTimeout overrides the collaborator call timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New wires a Service. brands, deliverer and sessions are required
// collaborators; pass session.NewMemoryStore() for single-process use.
func New(brands brand.Loader, deliverer delivery.Deliverer, sessions session.Store, opts ...Option) *Service {
	s := &Service{
		brands:      brands,
		deliverer:   deliverer,
		sessions:    sessions,
		log:         logger.Noop(),
		labelPrefix: "Agent-Sent",
		defaultMode: delivery.ModeDraft,
		timeout:     collaboratorTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft normalizes the input and composes subject and body text without
// rendering or touching iteration memory.
func (s *Service) Draft(ctx context.Context, raw map[string]any) (draft.Draft, error) {
	req := draft.Normalize(raw)
	if err := req.Validate(); err != nil {
		return draft.Draft{}, err
	}
	b, err := s.brands.Load(req.BrandID)
	if err != nil {
		return draft.Draft{}, err
	}
	return draft.Compose(req, b.Name), nil
}

// Preview renders the normalized request and records it as the
// conversation's base.
func (s *Service) Preview(ctx context.Context, conversationID string, raw map[string]any) (Preview, error) {
	req := draft.Normalize(raw)
	s.record(ctx, conversationID, session.Memory{Base: req})
	return s.preview(ctx, req)
}

// PreviewWithUpdate applies a structured update before rendering and
// records both base and update for a later deliver call.
func (s *Service) PreviewWithUpdate(ctx context.Context, conversationID string, raw map[string]any, upd draft.Update) (Preview, error) {
	base := draft.Normalize(raw)
	s.record(ctx, conversationID, session.Memory{Base: base, Update: &upd})
	return s.preview(ctx, draft.Apply(base, upd))
}

// PreviewWithInstruction interprets a natural-language instruction, applies
// the resulting update and records the instruction verbatim so delivery can
// re-interpret the latest phrasing.
func (s *Service) PreviewWithInstruction(ctx context.Context, conversationID string, raw map[string]any, instruction string) (Preview, error) {
	base := draft.Normalize(raw)
	s.record(ctx, conversationID, session.Memory{Base: base, Instruction: instruction})
	upd := interpret.Interpret(instruction)
	return s.preview(ctx, draft.Apply(base, upd))
}

// Deliver commits the request through the mail provider. When upd is nil
// the conversation's iteration memory decides: the last recorded
// instruction wins over the last structured update; with neither, the base
// request ships as-is.
func (s *Service) Deliver(ctx context.Context, conversationID string, raw map[string]any, upd *draft.Update, mode delivery.Mode) (DeliverResult, error) {
	req := draft.Normalize(raw)
	if upd == nil {
		upd = s.recallUpdate(ctx, conversationID)
	}
	if upd != nil {
		req = draft.Apply(req, *upd)
	}
	return s.deliver(ctx, req, mode)
}

// DeliverWithInstruction interprets the instruction and commits in one call.
func (s *Service) DeliverWithInstruction(ctx context.Context, conversationID string, raw map[string]any, instruction string, mode delivery.Mode) (DeliverResult, error) {
	upd := interpret.Interpret(instruction)
	req := draft.Apply(draft.Normalize(raw), upd)
	return s.deliver(ctx, req, mode)
}

// record stores iteration memory; failures are logged, never fatal, since
// memory is a convenience for the next turn.
func (s *Service) record(ctx context.Context, conversationID string, mem session.Memory) {
	if conversationID == "" {
		conversationID = session.DefaultConversation
	}
	if err := s.sessions.Record(ctx, conversationID, mem); err != nil {
		s.log.WarnContext(ctx, "failed to record iteration memory", "conversation", conversationID, "error", err)
	}
}

// recallUpdate resolves the update for a deliver call that supplied none.
func (s *Service) recallUpdate(ctx context.Context, conversationID string) *draft.Update {
	if conversationID == "" {
		conversationID = session.DefaultConversation
	}
	mem, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil
	}
	if mem.Instruction != "" {
		upd := interpret.Interpret(mem.Instruction)
		return &upd
	}
	return mem.Update
}

// prepare validates the request and renders it into a deliverable email.
func (s *Service) prepare(ctx context.Context, req draft.Request) (brand.Config, draft.Draft, string, string, error) {
	if err := req.Validate(); err != nil {
		return brand.Config{}, draft.Draft{}, "", "", err
	}
	b, err := s.brands.Load(req.BrandID)
	if err != nil {
		return brand.Config{}, draft.Draft{}, "", "", err
	}

	d := draft.Compose(req, b.Name)
	html, text, err := render.Render(render.Input{
		Subject:   d.Subject,
		BodyText:  d.BodyText,
		Brand:     b,
		Purpose:   req.Purpose,
		Variables: renderVariables(req),
	})
	if err != nil {
		return brand.Config{}, draft.Draft{}, "", "", err
	}
	return b, d, html, text, nil
}

func (s *Service) preview(ctx context.Context, req draft.Request) (Preview, error) {
	_, d, html, text, err := s.prepare(ctx, req)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Subject: d.Subject,
		HTML:    html,
		Text:    text,
		Plan:    delivery.PlanFor(s.labelPrefix),
	}, nil
}

func (s *Service) deliver(ctx context.Context, req draft.Request, mode delivery.Mode) (DeliverResult, error) {
	if mode == "" {
		mode = s.defaultMode
	}
	_, d, html, text, err := s.prepare(ctx, req)
	if err != nil {
		return DeliverResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.deliverer.Deliver(ctx, delivery.Message{
		To:       req.Recipient.Email,
		Subject:  d.Subject,
		BodyHTML: html,
		BodyText: text,
		BrandID:  req.BrandID,
	}, mode)
	if err != nil {
		s.log.ErrorContext(ctx, "delivery failed", "to", req.Recipient.Email, "mode", mode, "error", err)
		return DeliverResult{}, err
	}

	s.log.InfoContext(ctx, "delivery committed", "to", req.Recipient.Email, "mode", res.Status, "id", res.ID)
	return DeliverResult{
		Status:        res.Status,
		ID:            res.ID,
		LabelsApplied: res.LabelsApplied,
		To:            req.Recipient.Email,
		Subject:       d.Subject,
	}, nil
}

// renderVariables enriches the request context with personalization hints
// and defaults welcome emails to the long-form intro unless the caller
// explicitly decided.
func renderVariables(req draft.Request) map[string]any {
	vars := make(map[string]any, len(req.Context)+3)
	for k, v := range req.Context {
		vars[k] = v
	}
	if _, ok := vars["recipient_name"]; !ok {
		vars["recipient_name"] = req.Recipient.Name
	}
	if _, ok := vars["recipient_email"]; !ok {
		vars["recipient_email"] = req.Recipient.Email
	}
	if _, ok := vars["long_form"]; !ok && req.Purpose == draft.PurposeWelcome {
		vars["long_form"] = true
	}
	return vars
}
