package store

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/utils"
)

// TryOnSnapshot is a consistent view of the try-on state. Product,
// Session and Recommendations are copies; the camera handle is shared
// because the underlying resource is singular.
type TryOnSnapshot struct {
	SelectedProduct *model.Product
	IsActive        bool
	CurrentSession  *model.TryOnSession
	CameraStream    backend.CameraStream
	Recommendations []model.Product
}

// TryOnStore owns the lifecycle of one try-on interaction and the
// recommendation cache. Session lifecycle: Idle → StartTryOn → Active
// → EndTryOn → Idle. Starting while active replaces the current
// session in place; the replaced session is returned to the caller so
// its completion can still be reported downstream rather than silently
// dropped.
//
// The store holds only the user id of whoever starts a session, never
// the user value itself; identity stays with the AuthStore.
type TryOnStore struct {
	mu          sync.RWMutex
	recommender backend.Recommender
	now         func() time.Time

	selected *model.Product
	active   bool
	session  *model.TryOnSession
	camera   backend.CameraStream

	recommendations []model.Product
	recGen          uint64
}

// NewTryOnStore returns an idle store backed by the given
// recommendation collaborator.
func NewTryOnStore(r backend.Recommender) *TryOnStore {
	return &TryOnStore{recommender: r, now: time.Now}
}

// SelectProduct replaces the current selection unconditionally. An
// in-progress session is not affected; the new selection applies to
// the next StartTryOn.
func (s *TryOnStore) SelectProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &p
}

// StartTryOn creates a fresh session for the given user against the
// currently selected product and activates it. When no product is
// selected the session carries an empty product id; callers that need
// a selection must check beforehand. When a session is already active
// it is replaced and returned as replaced, without teardown of the
// camera stream (the stream belongs to the view, not the session).
func (s *TryOnStore) StartTryOn(userID string) (session model.TryOnSession, replaced *model.TryOnSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.session != nil {
		old := *s.session
		old.Duration = s.now().Sub(old.StartedAt)
		replaced = &old
	}
	productID := ""
	if s.selected != nil {
		productID = s.selected.ID
	}
	sess := model.TryOnSession{
		ID:        utils.NewID(),
		UserID:    userID,
		ProductID: productID,
		StartedAt: s.now().UTC(),
	}
	s.session = &sess
	s.active = true
	return sess, replaced
}

// RecordInteraction increments the current session's interaction
// counter. No-op when idle.
func (s *TryOnStore) RecordInteraction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.session != nil {
		s.session.Interactions++
	}
}

// MarkConverted flags the current session as converted. No-op when idle.
func (s *TryOnStore) MarkConverted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.session != nil {
		s.session.Converted = true
	}
}

// EndTryOn deactivates the session, clears it, and releases the camera
// stream. The ended session is returned with its final duration so the
// caller can publish its completion; nil when the store was already
// idle, making double EndTryOn harmless. The camera handle is stopped
// on every path that clears it, so the device is released exactly once
// even on abrupt navigation away from the try-on view.
func (s *TryOnStore) EndTryOn() *model.TryOnSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ended *model.TryOnSession
	if s.session != nil {
		done := *s.session
		done.Duration = s.now().Sub(done.StartedAt)
		ended = &done
	}
	s.active = false
	s.session = nil
	if s.camera != nil {
		_ = s.camera.Stop()
		s.camera = nil
	}
	return ended
}

// SetCameraStream installs the live camera handle for lifecycle
// coordination. Ownership of the device stays with the capture
// collaborator; the store only guarantees Stop on EndTryOn. A handle
// being replaced is stopped first. Pass nil to detach.
func (s *TryOnStore) SetCameraStream(stream backend.CameraStream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.camera != nil && s.camera != stream {
		_ = s.camera.Stop()
	}
	s.camera = stream
}

// GenerateRecommendations asks the recommendation collaborator for a
// fresh list and replaces the cache atomically on completion. The
// cache is best-effort: concurrent calls resolve last-call-wins via a
// generation counter, and a stale completion is discarded. Errors from
// the collaborator leave the existing cache untouched.
func (s *TryOnStore) GenerateRecommendations(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.recGen++
	gen := s.recGen
	s.mu.Unlock()

	recs, err := s.recommender.Recommend(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.recGen {
		return nil
	}
	s.recommendations = recs
	return nil
}

// Snapshot returns a consistent copy of the try-on state.
func (s *TryOnStore) Snapshot() TryOnSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := TryOnSnapshot{
		IsActive:     s.active,
		CameraStream: s.camera,
	}
	if s.selected != nil {
		p := *s.selected
		snap.SelectedProduct = &p
	}
	if s.session != nil {
		sess := *s.session
		snap.CurrentSession = &sess
	}
	if len(s.recommendations) > 0 {
		snap.Recommendations = append([]model.Product(nil), s.recommendations...)
	}
	return snap
}
