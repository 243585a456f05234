// Package session holds short-lived, per-conversation iteration memory for
// the drafting pipeline.
//
// Every preview or iterate call records the normalized base request together
// with the edit that produced it (a structured update or a natural-language
// instruction). A later deliver call that omits an explicit update consults
// this memory so the most recently discussed edit is what ships.
//
// Memory is keyed by an explicit conversation id and guarded by a lock, so
// concurrent conversations in one process never corrupt each other's state.
// Nothing is persisted: a process restart starts every conversation empty,
// and delivery does not clear the slot.
package session
