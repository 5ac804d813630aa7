package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCatalogCacheKeySeparatesQueries(t *testing.T) {
	all := catalogCacheKey("catalog", "/v1/products", "")
	shoes := catalogCacheKey("catalog", "/v1/products", "category=shoes")
	if all == shoes {
		t.Fatal("filtered and unfiltered listings must cache apart")
	}
	if catalogCacheKey("catalog", "/v1/products", "category=shoes") != shoes {
		t.Fatal("key must be stable for identical requests")
	}
}

func TestPackUnpackCatalogResponse(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`{"products":[]}`)

	bs, err := packCatalogResponse(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	status, gotHdr, gotBody, ok := unpackCatalogResponse(bs)
	if !ok {
		t.Fatal("unpack failed")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("header = %v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestUnpackRejectsTruncatedPayload(t *testing.T) {
	if _, _, _, ok := unpackCatalogResponse([]byte{1, 2, 3}); ok {
		t.Fatal("short payload must not unpack")
	}
}

func TestBodyRecorderTruncatesCopyNotResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	r := &bodyRecorder{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	if _, err := r.Write([]byte("0123456789")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.Body.String() != "0123456789" {
		t.Fatal("client must receive the full body")
	}
	if r.buf.String() != "0123" {
		t.Fatalf("recorded copy = %q, want the first limit bytes", r.buf.String())
	}
	if !r.overflowed() {
		t.Fatal("oversized response must be flagged uncacheable")
	}
}
