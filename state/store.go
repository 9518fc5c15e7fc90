package state

import (
	"sync"

	"github.com/kbukum/storefront/logger"
)

// Listener observes applied transitions. prev and next are private copies.
type Listener func(prev, next State, action Action)

// Store owns the current State. It is safe for concurrent use: dispatches
// are serialised and listeners run after the lock is released, in
// subscription order. Notifications are delivered in dispatch order by one
// goroutine at a time. A Dispatch made while another delivery is in progress
// (from a listener or a concurrent caller) queues its notification for that
// delivery and returns without waiting for it.
type Store struct {
	mu         sync.Mutex
	state      State
	listeners  []subscription
	nextID     int
	pending    []notification
	delivering bool
	log        *logger.Logger
}

type notification struct {
	prev, next State
	action     Action
	listeners  []subscription
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l.WithComponent("state") }
}

// WithListener subscribes fn before the first dispatch.
func WithListener(fn Listener) Option {
	return func(s *Store) { s.subscribe(fn) }
}

// NewStore creates a store holding initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{state: initial.Clone(), log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a and returns the resulting snapshot. Actions of an
// unknown kind leave the state untouched and notify nobody.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	next, applied := reduce(prev, a)
	if !applied {
		s.mu.Unlock()
		s.log.Debug("action ignored", logger.Fields(logger.FieldAction, string(a.Kind)))
		return prev.Clone()
	}
	s.state = next
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.pending = append(s.pending, notification{prev: prev, next: next, action: a, listeners: listeners})
	drain := !s.delivering
	s.delivering = true
	s.mu.Unlock()

	s.log.Debug("action applied", logger.Fields(
		logger.FieldAction, string(a.Kind),
		"cart_items", len(next.Cart.CartItems),
		"signed_in", next.SignedIn(),
	))
	if drain {
		s.deliver()
	}
	return next.Clone()
}

// deliver drains pending notifications until the queue is empty.
func (s *Store) deliver() {
	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.delivering = false
			s.mu.Unlock()
		}
	}()
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.delivering = false
			s.mu.Unlock()
			done = true
			return
		}
		n := s.pending[0]
		s.pending[0] = notification{}
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, sub := range n.listeners {
			sub.fn(n.prev.Clone(), n.next.Clone(), n.action)
		}
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.subscribe(fn)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) subscribe(fn Listener) int {
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: s.nextID, fn: fn})
	return s.nextID
}
