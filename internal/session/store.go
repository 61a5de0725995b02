// Package session keeps inspection sessions in process memory. The Store is the
// single owner of session state: every change goes through Update, which applies
// it to the latest state under a lock.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/internal/utils"
	"rentinspect/pkg/types"

	"github.com/sirupsen/logrus"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*inspection.Session
	maxAge   time.Duration
	logger   *logrus.Logger

	now func() time.Time
}

func NewStore(maxAge time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		sessions: make(map[string]*inspection.Session),
		maxAge:   maxAge,
		logger:   logger,
		now:      time.Now,
	}
}

// Create starts a new session and returns a snapshot of it.
func (s *Store) Create(ctx context.Context) (*inspection.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	sess := inspection.NewSession(utils.NanoIDSize(32), s.now())
	s.sessions[sess.ID] = sess

	s.logger.WithField("session_id", sess.ID).Debug("session created")

	return sess.Clone(), nil
}

// Put stores sess as-is, replacing any session with the same id.
func (s *Store) Put(ctx context.Context, sess *inspection.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := sess.Clone()
	cp.UpdatedAt = s.now()
	s.sessions[cp.ID] = cp

	return nil
}

// Get returns a snapshot of the session.
func (s *Store) Get(ctx context.Context, id string) (*inspection.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}

	return sess.Clone(), nil
}

// Update runs fn against the latest state of the session. Changes are kept only
// when fn returns nil.
func (s *Store) Update(ctx context.Context, id string, fn func(*inspection.Session) error) (*inspection.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}

	working := sess.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.UpdatedAt = s.now()
	s.sessions[id] = working

	return working.Clone(), nil
}

func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Sweep drops expired sessions and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Store) liveLocked(id string) (*inspection.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrSessionNotFound, id)
	}

	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("%w: %s expired", types.ErrSessionNotFound, id)
	}

	return sess, nil
}

func (s *Store) sweepLocked() int {
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.WithField("removed", removed).Info("expired sessions swept")
	}

	return removed
}

func (s *Store) expired(sess *inspection.Session) bool {
	return s.maxAge > 0 && s.now().Sub(sess.UpdatedAt) > s.maxAge
}
