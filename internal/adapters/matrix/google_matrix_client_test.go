package matrix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-matrix-service/internal/ports"
)

func TestFetchMatrixEncodesQuery(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key":            q.Get("key"),
			"client":         q.Get("client"),
			"channel":        q.Get("channel"),
			"origins":        q.Get("origins"),
			"destinations":   q.Get("destinations"),
			"mode":           q.Get("mode"),
			"departure_time": q.Get("departure_time"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"origin_addresses": ["A", "B"],
			"destination_addresses": ["C"],
			"rows": [
				{"elements": [{"status": "OK", "duration": {"value": 60, "text": "1 min"}, "distance": {"value": 1000, "text": "1 km"}}]},
				{"elements": [{"status": "OK", "duration": {"value": 120, "text": "2 mins"}, "distance": {"value": 2000, "text": "2 km"}}]}
			]
		}`))
	}))
	defer srv.Close()

	client, err := NewGoogleMatrixClient("test-key", "test-client", "test-channel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.baseURL = srv.URL

	departure := int64(1787583600)
	resp, err := client.FetchMatrix(context.Background(), ports.MatrixRequest{
		Origins:       "A|B",
		Destinations:  "C",
		Mode:          "transit",
		DepartureTime: &departure,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"key":            "test-key",
		"client":         "test-client",
		"channel":        "test-channel",
		"origins":        "A|B",
		"destinations":   "C",
		"mode":           "transit",
		"departure_time": "1787583600",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(resp.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Rows))
	}
	if resp.Rows[1].Elements[0].Distance.Value != 2000 {
		t.Errorf("row 1 distance = %d, want 2000", resp.Rows[1].Elements[0].Distance.Value)
	}
}

func TestFetchMatrixOmitsOptionalParams(t *testing.T) {
	var hasMode, hasDeparture bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasMode = q["mode"]
		_, hasDeparture = q["departure_time"]
		w.Write([]byte(`{"status": "OK", "rows": []}`))
	}))
	defer srv.Close()

	client, err := NewGoogleMatrixClient("test-key", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.baseURL = srv.URL

	_, err = client.FetchMatrix(context.Background(), ports.MatrixRequest{
		Origins:      "A",
		Destinations: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hasMode {
		t.Error("mode parameter sent for an unrestricted request")
	}
	if hasDeparture {
		t.Error("departure_time parameter sent for a non-transit request")
	}
}

func TestFetchMatrixRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "rows": []}`))
	}))
	defer srv.Close()

	client, err := NewGoogleMatrixClient("bad-key", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.baseURL = srv.URL

	_, err = client.FetchMatrix(context.Background(), ports.MatrixRequest{
		Origins:      "A",
		Destinations: "B",
	})
	if err == nil {
		t.Fatal("expected error for REQUEST_DENIED status")
	}
}
