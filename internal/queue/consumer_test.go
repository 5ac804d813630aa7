package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for the duration of the test,
// standing in for t.Chdir which needs a newer Go release.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

type recordingSink struct {
	events []TryOnCompletedEvent
}

func (r *recordingSink) RecordCompleted(ev TryOnCompletedEvent) {
	r.events = append(r.events, ev)
}

func TestHandleMessageLogsAndRecords(t *testing.T) {
	chdir(t, t.TempDir())
	sink := &recordingSink{}

	body := []byte(`{"session_id":"s1","user_id":"u1","product_id":"p1","duration_ms":1200,"interactions":3,"converted":true,"ended_at":"2026-08-28T10:00:00Z"}`)
	if err := handleMessage(body, sink); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sink.events) != 1 || sink.events[0].SessionID != "s1" {
		t.Fatalf("sink events = %+v, want the decoded event", sink.events)
	}

	logged, err := os.ReadFile(filepath.Join("logs", "tryon.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logged), "session_id=s1") || !strings.Contains(string(logged), "converted=true") {
		t.Fatalf("log line = %q", logged)
	}
}

func TestHandleMessageRejectsMalformedBody(t *testing.T) {
	chdir(t, t.TempDir())
	sink := &recordingSink{}
	if err := handleMessage([]byte("{not json"), sink); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if len(sink.events) != 0 {
		t.Fatal("malformed message must not reach the sink")
	}
}

// A message whose log append fails is rejected; the sink must not have
// counted it, or a dropped message would still move the analytics.
func TestHandleMessageFailedLogDoesNotCount(t *testing.T) {
	chdir(t, t.TempDir())
	// A plain file named "logs" makes the directory creation fail.
	if err := os.WriteFile("logs", nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	sink := &recordingSink{}

	body := []byte(`{"session_id":"s1","user_id":"u1"}`)
	if err := handleMessage(body, sink); err == nil {
		t.Fatal("expected log append failure")
	}
	if len(sink.events) != 0 {
		t.Fatal("a rejected message must not be counted")
	}
}
