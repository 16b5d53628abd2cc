package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// newTestServer returns a server and a client pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare JSON before the handler writes; otherwise net/http
		// sniffs text/plain and the client will not decode the body.
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, nil)
}

func TestFetchEntries(t *testing.T) {
	t.Parallel()

	entries := []catalog.Entry{
		{
			ID:       1,
			Key:      "greeting.hello",
			Category: "common",
			Translations: map[string]catalog.TranslationValue{
				"en": {Value: "Hello", UpdatedBy: "alice"},
				"fr": {Value: "Bonjour", UpdatedBy: "bob"},
			},
			ProjectID: "web",
		},
	}

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/localizations/web" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(entries)
	})

	got, err := client.FetchEntries(context.Background(), "web")
	if err != nil {
		t.Fatalf("FetchEntries() error: %v", err)
	}
	if len(got) != 1 || got[0].Key != "greeting.hello" {
		t.Fatalf("FetchEntries() = %+v, want one greeting.hello entry", got)
	}
	if got[0].Translations["fr"].Value != "Bonjour" {
		t.Errorf("fr value = %q, want %q", got[0].Translations["fr"].Value, "Bonjour")
	}
}

func TestFetchEntriesTransportError(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchEntries(context.Background(), "web")
	if err == nil {
		t.Fatal("FetchEntries() expected error on 500")
	}
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T, want *TransportError", err)
	}
	if te.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", te.Status)
	}
	if !errors.Is(err, ErrTransport) {
		t.Error("errors.Is(err, ErrTransport) = false, want true")
	}
}

func TestUpdateEntrySendsFullTranslationMap(t *testing.T) {
	t.Parallel()

	var body struct {
		Translations map[string]catalog.TranslationValue `json:"translations"`
	}
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/localizations/web/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(catalog.Entry{ID: 7})
	})

	translations := catalog.Merge(map[string]catalog.TranslationValue{
		"fr": {Value: "Bonjour"},
	}, "en", "Hi", "alice", time.Now())

	if _, err := client.UpdateEntry(context.Background(), "web", 7, translations); err != nil {
		t.Fatalf("UpdateEntry() error: %v", err)
	}
	if body.Translations["en"].Value != "Hi" || body.Translations["fr"].Value != "Bonjour" {
		t.Errorf("request translations = %+v, want en=Hi and fr=Bonjour", body.Translations)
	}
}

func TestUpdateEntriesBatch(t *testing.T) {
	t.Parallel()

	var body struct {
		Entries []EntryUpdate `json:"entries"`
	}
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/localizations/web/batch" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	updates := []EntryUpdate{
		{ID: 1, Translations: map[string]catalog.TranslationValue{"en": {Value: "a"}}},
		{ID: 2, Translations: map[string]catalog.TranslationValue{"en": {Value: "b"}}},
	}
	if err := client.UpdateEntriesBatch(context.Background(), "web", updates); err != nil {
		t.Fatalf("UpdateEntriesBatch() error: %v", err)
	}
	if len(body.Entries) != 2 {
		t.Errorf("server received %d updates, want 2", len(body.Entries))
	}
}

func TestCreateEntryRequiresTranslations(t *testing.T) {
	t.Parallel()

	// Any network call here would fail the test: validation must reject
	// the request before the transport is touched.
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called for an invalid create")
	})

	_, err := client.CreateEntry(context.Background(), "web", NewEntry{Key: "a", Category: "common"})
	if err == nil {
		t.Fatal("CreateEntry() expected validation error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "translations" {
		t.Errorf("error = %v, want *ValidationError on translations", err)
	}
}

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/localizations/web" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(catalog.Entry{ID: 42, Key: "button.save"})
	})

	created, err := client.CreateEntry(context.Background(), "web", NewEntry{
		Key:          "button.save",
		Category:     "common",
		Translations: map[string]NewTranslation{"en": {Value: "Save"}},
	})
	if err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("created.ID = %d, want 42", created.ID)
	}
}

func TestListProjectsAndLanguages(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects":
			_ = json.NewEncoder(w).Encode([]catalog.Project{{ID: "web", Name: "Web App"}})
		case "/languages":
			_ = json.NewEncoder(w).Encode([]catalog.Language{{Code: "en", Name: "English"}})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	})

	projects, err := client.ListProjects(context.Background())
	if err != nil || len(projects) != 1 || projects[0].ID != "web" {
		t.Errorf("ListProjects() = %v, %v; want one web project", projects, err)
	}
	languages, err := client.ListLanguages(context.Background())
	if err != nil || len(languages) != 1 || languages[0].Code != "en" {
		t.Errorf("ListLanguages() = %v, %v; want one en language", languages, err)
	}
}
