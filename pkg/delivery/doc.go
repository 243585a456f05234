// Package delivery hands finished emails to a mail provider, either as a
// draft or an immediate send, and reports which labels were applied.
//
// The package is built around the Deliverer interface so providers can be
// swapped without touching the drafting pipeline:
//   - GmailDeliverer creates drafts or sends via the Gmail API and maintains
//     a small label hierarchy <prefix> / <prefix>/<brand> on every message.
//   - PostmarkDeliverer sends through Postmark's transactional API (send
//     mode only; Postmark has no draft concept).
//   - DevDeliverer saves emails to disk for local development and tests.
//
// Remote rejections surface as a tagged *Failure carrying the provider's
// status code and detail, wrapped with ErrDeliveryFailed - never as a panic
// and never as an opaque error the orchestration layer can't inspect.
package delivery
