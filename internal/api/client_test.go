package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gameshelf/gameshelf/internal/config"
	"github.com/gameshelf/gameshelf/internal/models"
)

func newTestClient(t *testing.T, handler nethttp.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.APIBaseURL = server.URL
	cfg.APIKey = "test-key"

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, server
}

func TestQuerySendsExpectedParameters(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/Videogames/GetVideoGames" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(models.Page{
			Items:      []models.VideoGame{{ID: 1, Title: "Celeste"}},
			PageIndex:  2,
			TotalPages: 5,
			TotalCount: 42,
		})
	}))

	page, err := client.Query(context.Background(), "cele", "rating", true, 2, 10)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if gotAuth != "Token test-key" {
		t.Errorf("Authorization = %q, want Token test-key", gotAuth)
	}

	want := map[string]string{
		"pageIndex":      "2",
		"pageSize":       "10",
		"searchTerm":     "cele",
		"sortBy":         "rating",
		"sortDescending": "true",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if page.PageIndex != 2 || page.TotalPages != 5 || page.TotalCount != 42 {
		t.Errorf("decoded page metadata = %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "Celeste" {
		t.Errorf("decoded items = %+v", page.Items)
	}
}

func TestQueryOmitsEmptySearchTerm(t *testing.T) {
	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if _, present := r.URL.Query()["searchTerm"]; present {
			t.Error("searchTerm should be omitted when empty")
		}
		json.NewEncoder(w).Encode(models.Page{PageIndex: 1, TotalPages: 0})
	}))

	if _, err := client.Query(context.Background(), "", "title", false, 1, 10); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
}

func TestQueryServerErrorSurfacesStatus(t *testing.T) {
	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "boom", nethttp.StatusBadRequest)
	}))

	_, err := client.Query(context.Background(), "", "title", false, 1, 10)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestGetByID(t *testing.T) {
	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/Videogames/GetVideoGame/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.VideoGame{ID: 7, Title: "Hades"})
	}))

	game, err := client.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if game.ID != 7 || game.Title != "Hades" {
		t.Errorf("game = %+v", game)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.NotFound(w, r)
	}))

	_, err := client.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want wrapped ErrNotFound", err)
	}
	if !IsNotFoundError(err) {
		t.Error("IsNotFoundError() = false for 404 response")
	}
}

func TestUpdateSendsDraftAsJSON(t *testing.T) {
	var got models.VideoGameUpdate

	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPut {
			t.Errorf("method = %q, want PUT", r.Method)
		}
		if r.URL.Path != "/Videogames/UpdateVideoGame/3" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}))

	price := 19.99
	upd := models.VideoGameUpdate{ID: 3, Title: "Stardew Valley", Price: &price}
	if err := client.Update(context.Background(), upd); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.ID != 3 || got.Title != "Stardew Valley" {
		t.Errorf("server received %+v", got)
	}
	if got.Price == nil || *got.Price != 19.99 {
		t.Error("price was not carried in the update body")
	}
}

func TestUpdateNotFound(t *testing.T) {
	client, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.NotFound(w, r)
	}))

	err := client.Update(context.Background(), models.VideoGameUpdate{ID: 12, Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want wrapped ErrNotFound", err)
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrNotFound, true},
		{fmt.Errorf("get video game 5: %w", ErrNotFound), true},
		{errors.New("query failed: status 404: missing"), true},
		{errors.New("record does not exist"), true},
		{errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		if got := IsNotFoundError(tt.err); got != tt.want {
			t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
