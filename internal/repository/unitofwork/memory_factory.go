package unitofwork

import (
	"context"
	"sync"

	"ai-pdfchat-be/internal/repository/contract"
	"ai-pdfchat-be/internal/repository/memory"
)

// MemoryFactory produces units of work over shared in-memory stores. It is
// used when no database connection is configured, and by tests.
//
// The memory stores cannot roll back, so Begin serializes writers instead:
// two concurrent replace-uploads to one session resolve last-writer-wins
// rather than interleaving.
type MemoryFactory struct {
	mu            sync.Mutex
	sessions      *memory.SessionRepository
	chunks        *memory.ChunkRepository
	conversations *memory.ConversationRepository
}

func NewMemoryFactory(
	sessions *memory.SessionRepository,
	chunks *memory.ChunkRepository,
	conversations *memory.ConversationRepository,
) *MemoryFactory {
	return &MemoryFactory{
		sessions:      sessions,
		chunks:        chunks,
		conversations: conversations,
	}
}

func (f *MemoryFactory) NewUnitOfWork(_ context.Context) UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

type memoryUnitOfWork struct {
	factory *MemoryFactory
	active  bool
}

func (u *memoryUnitOfWork) Begin(_ context.Context) error {
	u.factory.mu.Lock()
	u.active = true
	return nil
}

func (u *memoryUnitOfWork) Commit() error {
	if u.active {
		u.active = false
		u.factory.mu.Unlock()
	}
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	// No-op when Commit already released the lock (the usual defer pattern).
	if u.active {
		u.active = false
		u.factory.mu.Unlock()
	}
	return nil
}

func (u *memoryUnitOfWork) SessionRepository() contract.SessionRepository {
	return u.factory.sessions
}

func (u *memoryUnitOfWork) ChunkRepository() contract.ChunkRepository {
	return u.factory.chunks
}

func (u *memoryUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.factory.conversations
}
