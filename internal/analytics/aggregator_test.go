package analytics

import (
	"testing"

	"github.com/iliyamo/virtual-tryon-platform/internal/queue"
)

func TestRecordCompletedMovesTryOnCounter(t *testing.T) {
	a := NewAggregator()
	before := a.Overview()

	a.RecordCompleted(queue.TryOnCompletedEvent{SessionID: "s1", Converted: false})
	a.RecordCompleted(queue.TryOnCompletedEvent{SessionID: "s2", Converted: true})

	after := a.Overview()
	if after.TotalTryOns != before.TotalTryOns+2 {
		t.Fatalf("tryOns = %d, want %d", after.TotalTryOns, before.TotalTryOns+2)
	}
	if after.ConversionRate != before.ConversionRate {
		t.Fatalf("conversion rate moved from baseline: %v -> %v", before.ConversionRate, after.ConversionRate)
	}
}

func TestActiveSessionGauge(t *testing.T) {
	a := NewAggregator()
	base := a.Overview().ActiveSessions

	a.SessionStarted()
	a.SessionStarted()
	if got := a.Overview().ActiveSessions; got != base+2 {
		t.Fatalf("active = %d, want %d", got, base+2)
	}
	a.SessionEnded()
	if got := a.Overview().ActiveSessions; got != base+1 {
		t.Fatalf("active = %d, want %d", got, base+1)
	}
}

func TestOverviewReturnsCopies(t *testing.T) {
	a := NewAggregator()
	o := a.Overview()
	o.Engagement[0].Sessions = -1
	o.CategoryShare[0].Percent = -1

	fresh := a.Overview()
	if fresh.Engagement[0].Sessions == -1 || fresh.CategoryShare[0].Percent == -1 {
		t.Fatal("overview slices must not alias internal state")
	}
}
