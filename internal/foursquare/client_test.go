package foursquare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Search(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("X-Places-Api-Version")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"fsq_place_id":"p1","name":"Taco Stand"},{"fsq_place_id":"p2","name":"Burrito Bar"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	results, err := client.Search(context.Background(), map[string]string{
		"query": "tacos",
		"near":  "Dallas",
		"limit": "20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/places/search" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotVersion != "2025-06-17" {
		t.Fatalf("unexpected api version: %s", gotVersion)
	}
	if gotQuery["near"][0] != "Dallas" || gotQuery["query"][0] != "tacos" {
		t.Fatalf("unexpected query params: %v", gotQuery)
	}
	if len(results) != 2 || results[0].FsqPlaceID != "p1" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestClient_SearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "bad-key")
	if _, err := client.Search(context.Background(), map[string]string{"query": "tacos"}); err == nil {
		t.Fatalf("expected error for 401 response")
	} else if !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected status in error, got: %v", err)
	}
}

func TestClient_Details(t *testing.T) {
	var gotPath, gotFields string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fsq_id":"p1","rating":4.2,"price":2,"hours":{"open_now":true,"display":"Open"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	place, err := client.Details(context.Background(), "p1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/places/p1" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotFields != DefaultDetailFields {
		t.Fatalf("expected default field selector, got %s", gotFields)
	}
	if place.Rating == nil || *place.Rating != 4.2 {
		t.Fatalf("unexpected rating: %v", place.Rating)
	}
	if place.Hours == nil || place.Hours.OpenNow == nil || !*place.Hours.OpenNow {
		t.Fatalf("unexpected hours: %+v", place.Hours)
	}
}

func TestClient_DetailsErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	_, err := client.Details(context.Background(), "p1", "rating")
	if err == nil {
		t.Fatalf("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected body in error, got: %v", err)
	}
}
