// Package session owns the per-user state registry: each user id maps
// to one Session holding that user's conversation buffer and context.
// The registry lives for the process lifetime and is bounded by LRU
// eviction so sustained user churn cannot grow it without limit.
package session

import (
	"container/list"
	"sync"

	"github.com/dulceai/dulceai/memory"
)

// DefaultMaxUsers bounds the registry when no explicit limit is set.
const DefaultMaxUsers = 1000

// Session pairs one user's conversation buffer with their accumulated
// context. The embedded mutex serializes request handling for the same
// user id; two concurrent requests for one user would otherwise race on
// Memory and Context.
type Session struct {
	UserID  string
	Memory  *memory.Conversation
	Context *memory.UserContext

	mu sync.Mutex
}

// Lock acquires the per-user mutex for the duration of one request.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-user mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

type entry struct {
	sess *Session
	elem *list.Element
}

// StoreOptions configure a Store.
type StoreOptions struct {
	// MaxMessages caps each user's conversation buffer.
	MaxMessages int
	// MaxUsers caps the number of tracked users; the least recently
	// active user is evicted when the cap is exceeded. Zero or
	// negative means DefaultMaxUsers.
	MaxUsers int
}

// Store is a process-local registry of user sessions, safe for
// concurrent access. Creation is atomic check-then-insert so two
// concurrent first requests for a new user id share one session.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*entry
	order       *list.List // front = most recently used
	maxMessages int
	maxUsers    int
}

// NewStore constructs an empty registry.
func NewStore(optFns ...func(o *StoreOptions)) *Store {
	opts := StoreOptions{
		MaxMessages: memory.DefaultMaxMessages,
		MaxUsers:    DefaultMaxUsers,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxUsers <= 0 {
		opts.MaxUsers = DefaultMaxUsers
	}
	return &Store{
		sessions:    make(map[string]*entry),
		order:       list.New(),
		maxMessages: opts.MaxMessages,
		maxUsers:    opts.MaxUsers,
	}
}

// GetOrCreate returns the session for the user id, creating it lazily
// on first contact. The returned session is the shared instance, not a
// copy; callers serialize access through Session.Lock.
func (s *Store) GetOrCreate(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[userID]; ok {
		s.order.MoveToFront(e.elem)
		return e.sess
	}

	sess := &Session{
		UserID:  userID,
		Memory:  memory.NewConversation(s.maxMessages),
		Context: memory.NewUserContext(userID),
	}
	s.sessions[userID] = &entry{sess: sess, elem: s.order.PushFront(userID)}

	for len(s.sessions) > s.maxUsers {
		oldest := s.order.Back()
		if oldest == nil {
			break
		}
		evicted := oldest.Value.(string)
		s.order.Remove(oldest)
		delete(s.sessions, evicted)
	}

	return sess
}

// Get returns the session for the user id without creating one.
func (s *Store) Get(userID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	return e.sess, true
}

// Count returns the number of tracked users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
