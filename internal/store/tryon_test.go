package store

import (
	"context"
	"sync"
	"testing"

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

func testProduct(id string) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Category: model.CategoryClothing}
}

// countingStream records Stop calls so tests can assert the camera is
// released exactly once.
type countingStream struct {
	mu    sync.Mutex
	stops int
}

func (c *countingStream) Capture() ([]byte, error) { return nil, nil }
func (c *countingStream) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops++
	return nil
}
func (c *countingStream) stopCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stops
}

func TestStartWithoutSelectionProducesEmptyProductID(t *testing.T) {
	// Current, documented behavior: a session started with no product
	// selected references an empty product id instead of failing.
	s := NewTryOnStore(backend.NewMockRecommender(0))
	sess, replaced := s.StartTryOn("u1")
	if replaced != nil {
		t.Fatal("no session should be replaced on first start")
	}
	if sess.ProductID != "" {
		t.Fatalf("productID = %q, want empty", sess.ProductID)
	}
	if !s.Snapshot().IsActive {
		t.Fatal("store must be active after start")
	}
}

func TestStartAfterSelectReferencesProduct(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	s.SelectProduct(testProduct("p42"))
	sess, _ := s.StartTryOn("u1")
	if sess.ProductID != "p42" {
		t.Fatalf("productID = %q, want p42", sess.ProductID)
	}
	snap := s.Snapshot()
	if !snap.IsActive || snap.CurrentSession == nil || snap.CurrentSession.ID != sess.ID {
		t.Fatalf("snapshot = %+v, want active with session %s", snap, sess.ID)
	}
	if sess.ID == "" || sess.UserID != "u1" {
		t.Fatalf("session = %+v, want fresh id and user u1", sess)
	}
}

// Start followed by end returns the store to its pre-start shape except
// for the selection, which is preserved.
func TestLifecycleReturnsToIdlePreservingSelection(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	s.SelectProduct(testProduct("p1"))
	before := s.Snapshot()

	s.StartTryOn("u1")
	ended := s.EndTryOn()
	if ended == nil {
		t.Fatal("EndTryOn must return the ended session")
	}

	after := s.Snapshot()
	if after.IsActive != before.IsActive || after.CurrentSession != nil || after.CameraStream != nil {
		t.Fatalf("after = %+v, want idle shape", after)
	}
	if after.SelectedProduct == nil || after.SelectedProduct.ID != "p1" {
		t.Fatal("selection must survive the lifecycle")
	}
}

func TestEndWhenIdleIsHarmless(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	if ended := s.EndTryOn(); ended != nil {
		t.Fatalf("ended = %+v, want nil when idle", ended)
	}
}

// Starting while active replaces the session in place and hands the
// displaced session back instead of dropping it.
func TestStartWhileActiveReplacesSession(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	s.SelectProduct(testProduct("p1"))
	first, _ := s.StartTryOn("u1")
	second, replaced := s.StartTryOn("u1")
	if replaced == nil || replaced.ID != first.ID {
		t.Fatalf("replaced = %+v, want the first session", replaced)
	}
	if second.ID == first.ID {
		t.Fatal("replacement must create a fresh session id")
	}
	snap := s.Snapshot()
	if snap.CurrentSession.ID != second.ID {
		t.Fatal("the newest session must be current")
	}
}

func TestEndStopsCameraExactlyOnce(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	cam := &countingStream{}
	s.StartTryOn("u1")
	s.SetCameraStream(cam)
	s.EndTryOn()
	s.EndTryOn() // idle; no handle left to stop
	if got := cam.stopCount(); got != 1 {
		t.Fatalf("camera stopped %d times, want 1", got)
	}
}

func TestReplacedCameraStreamIsStopped(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	old := &countingStream{}
	s.SetCameraStream(old)
	s.SetCameraStream(&countingStream{})
	if old.stopCount() != 1 {
		t.Fatal("replaced camera handle must be stopped")
	}
}

func TestGenerateRecommendationsReturnsOrderedList(t *testing.T) {
	s := NewTryOnStore(backend.NewMockRecommender(0))
	// The stubbed engine ignores the user id; any value yields the list.
	if err := s.GenerateRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	recs := s.Snapshot().Recommendations
	if len(recs) == 0 {
		t.Fatal("expected a non-empty recommendation list")
	}
	if recs[0].Name != "Classic Denim Jacket" {
		t.Fatalf("first recommendation = %q, want the canned ordering", recs[0].Name)
	}
}

// gatedRecommender blocks each Recommend call until its user gate closes.
type gatedRecommender struct {
	calls chan string
	gates map[string]chan struct{}
}

func (g *gatedRecommender) Recommend(ctx context.Context, userID string) ([]model.Product, error) {
	g.calls <- userID
	<-g.gates[userID]
	return []model.Product{{ID: "for-" + userID}}, nil
}

func TestRecommendationsLastCallWins(t *testing.T) {
	g := &gatedRecommender{
		calls: make(chan string, 2),
		gates: map[string]chan struct{}{"u1": make(chan struct{}), "u2": make(chan struct{})},
	}
	s := NewTryOnStore(g)

	first := make(chan error, 1)
	go func() { first <- s.GenerateRecommendations(context.Background(), "u1") }()
	<-g.calls
	second := make(chan error, 1)
	go func() { second <- s.GenerateRecommendations(context.Background(), "u2") }()
	<-g.calls

	close(g.gates["u2"])
	if err := <-second; err != nil {
		t.Fatalf("second call: %v", err)
	}
	close(g.gates["u1"])
	if err := <-first; err != nil {
		t.Fatalf("first call: %v", err)
	}

	recs := s.Snapshot().Recommendations
	if len(recs) != 1 || recs[0].ID != "for-u2" {
		t.Fatalf("recommendations = %+v, want only the newest call's result", recs)
	}
}
