package searchapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kailas-cloud/docview/internal/domain"
)

func TestSearch_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": "n1", "highlight": map[string]string{"text": "<gzkNfoUU>hit</gzkNfoUU>"}},
				{"id": "n2"},
			},
			"recordMap": map[string]any{
				"block": map[string]any{
					"n1": map[string]any{"value": map[string]any{"id": "n1", "type": "text"}},
				},
			},
			"total": 2,
		})
	}))
	defer ts.Close()

	client := New(ts.URL, WithAPIKey("key-1"))

	resp, err := client.Search(context.Background(), "hit", "root-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer key-1" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody["query"] != "hit" || gotBody["ancestorId"] != "root-1" {
		t.Errorf("unexpected request body %v", gotBody)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].HighlightText != "<gzkNfoUU>hit</gzkNfoUU>" {
		t.Errorf("unexpected highlight %q", resp.Results[0].HighlightText)
	}
	if resp.Results[1].HighlightText != "" {
		t.Errorf("expected empty highlight for n2, got %q", resp.Results[1].HighlightText)
	}
	if _, ok := resp.RecordMap.Node("n1"); !ok {
		t.Error("record-map fragment not hydrated")
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	if resp.Err() != nil {
		t.Errorf("unexpected in-band error: %v", resp.Err())
	}
}

func TestSearch_InBandError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"errorId": "quota",
			"message": "limit reached",
		})
	}))
	defer ts.Close()

	resp, err := New(ts.URL).Search(context.Background(), "q", "root")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}

	inband := resp.Err()
	if inband == nil {
		t.Fatal("expected in-band error")
	}
	if !errors.Is(inband, domain.ErrSearchProvider) {
		t.Errorf("expected ErrSearchProvider, got %v", inband)
	}

	var provErr *domain.SearchProviderError
	if !errors.As(inband, &provErr) {
		t.Fatalf("expected SearchProviderError, got %T", inband)
	}
	if provErr.ID != "quota" || provErr.Message != "limit reached" {
		t.Errorf("unexpected payload %+v", provErr)
	}
}

func TestSearch_LegacyErrorField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer ts.Close()

	resp, err := New(ts.URL).Search(context.Background(), "q", "root")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	if resp.ErrorMessage != "boom" {
		t.Errorf("expected legacy error message, got %+v", resp)
	}
}

func TestSearch_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // refuse connections

	if _, err := New(ts.URL).Search(context.Background(), "q", "root"); err == nil {
		t.Error("expected transport error")
	}
}

func TestSearch_MalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	if _, err := New(ts.URL).Search(context.Background(), "q", "root"); err == nil {
		t.Error("expected decode error")
	}
}
