// Package draft contains the canonical value types and pure operations of the
// drafting pipeline: normalization of loosely-shaped caller input into a
// Request, merge application of sparse Updates, and composition of the
// subject/body text for a request.
//
// All operations are pure and copy their inputs. A Request or Update passed in
// is never mutated, so callers may safely reuse the same value across a
// preview-then-deliver conversation turn.
//
// # Normalization
//
// Normalize accepts an arbitrary map and produces a Request with every
// required field defaulted: a recipient resolved from the documented alias
// list (or any top-level string containing "@"), a purpose mapped onto the
// known vocabulary, and per-purpose default bullets and call-to-action seeded
// into the context. Normalization fails soft - a request without a resolvable
// email is returned as-is and rejected later by Request.Validate.
//
// # Updates
//
// Update is a sparse record: every field is independently optional, and
// presence of a field (even with an empty value) always means "apply this
// value". Apply merges an Update into a Request with replace-wins semantics
// for bullets.
package draft
