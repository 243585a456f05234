package session

import (
	"context"
	"errors"
	"sync"

	"github.com/mailwright/mailwright/pkg/draft"
)

// DefaultConversation is the slot used when the caller supplies no
// conversation id (single-conversation deployments).
const DefaultConversation = "default"

var (
	// ErrNotFound is returned when a conversation has no recorded memory.
	ErrNotFound = errors.New("session: conversation not found")
	// ErrEmptyConversationID is returned for a blank conversation id.
	ErrEmptyConversationID = errors.New("session: conversation id is required")
)

// Memory is the per-conversation iteration state: the last normalized base
// request and the last edit applied to it. Exactly one of Update and
// Instruction is meaningful per record; recording overwrites the whole slot.
type Memory struct {
	Base        draft.Request
	Update      *draft.Update
	Instruction string
}

// clone deep-copies the memory so stored state never aliases caller values.
func (m Memory) clone() Memory {
	out := m
	out.Base = m.Base.Clone()
	if m.Update != nil {
		upd := *m.Update
		if m.Update.BulletsReplace != nil {
			upd.BulletsReplace = draft.Replace(*m.Update.BulletsReplace...)
		}
		upd.BulletsAdd = append([]string(nil), m.Update.BulletsAdd...)
		out.Update = &upd
	}
	return out
}

// Store is the iteration memory contract consumed by the orchestrator.
type Store interface {
	// Record overwrites the conversation's memory.
	Record(ctx context.Context, conversationID string, mem Memory) error
	// Get returns a copy of the conversation's memory, or ErrNotFound.
	Get(ctx context.Context, conversationID string) (Memory, error)
}

// MemoryStore is the in-process Store implementation: a mutex-guarded map
// keyed by conversation id.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]Memory
}

// NewMemoryStore creates an empty in-process iteration memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]Memory)}
}

// Record implements Store.
func (s *MemoryStore) Record(ctx context.Context, conversationID string, mem Memory) error {
	if conversationID == "" {
		return ErrEmptyConversationID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[conversationID] = mem.clone()
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, conversationID string) (Memory, error) {
	if conversationID == "" {
		return Memory{}, ErrEmptyConversationID
	}
	s.mu.RLock()
	mem, ok := s.slots[conversationID]
	s.mu.RUnlock()
	if !ok {
		return Memory{}, ErrNotFound
	}
	return mem.clone(), nil
}
