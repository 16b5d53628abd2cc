package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// DefaultTimeout bounds every sync client call, including its connection
// retries. A timed-out save surfaces as a transport failure and the edit
// surface stays open for manual retry.
const DefaultTimeout = 15 * time.Second

// NewTranslation is the creation-time shape of a language value: the server
// stamps updated_at/updated_by itself on create.
type NewTranslation struct {
	Value string `json:"value"`
}

// NewEntry is the payload for creating a localization entry.
type NewEntry struct {
	Key          string                    `json:"key"`
	Category     string                    `json:"category"`
	Description  string                    `json:"description,omitempty"`
	Translations map[string]NewTranslation `json:"translations"`
}

// EntryUpdate pairs an entry id with its full replacement translation map.
// The map must carry every language the entry holds, not just the edited
// one; build it with catalog.Merge.
type EntryUpdate struct {
	ID           int64                               `json:"id"`
	Translations map[string]catalog.TranslationValue `json:"translations"`
}

// Client talks to the localization service. All methods fail with a
// *TransportError on network errors or non-success statuses.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates a sync client for the given base URL. A nil logger
// disables request logging.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(250 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only connection-level failures retry. HTTP error statuses
			// surface immediately so saves are never replayed.
			return err != nil
		})
	return &Client{http: c, log: logger}
}

// FetchEntries returns all localization entries for a project.
func (c *Client) FetchEntries(ctx context.Context, projectID string) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	r, err := c.http.R().SetContext(ctx).
		SetResult(&entries).
		Get(fmt.Sprintf("/localizations/%s", projectID))
	if err != nil {
		return nil, &TransportError{Op: "fetch entries", Err: err}
	}
	if r.IsError() {
		return nil, &TransportError{Op: "fetch entries", Status: r.StatusCode()}
	}
	c.log.Debug("fetched entries", "project", projectID, "count", len(entries))
	return entries, nil
}

// CreateEntry creates a new entry. At least one language value must be
// present; an empty translations map is rejected before any network call.
func (c *Client) CreateEntry(ctx context.Context, projectID string, entry NewEntry) (*catalog.Entry, error) {
	if len(entry.Translations) == 0 {
		return nil, &ValidationError{Field: "translations", Message: "at least one language value is required"}
	}
	var created catalog.Entry
	r, err := c.http.R().SetContext(ctx).
		SetBody(entry).
		SetResult(&created).
		Post(fmt.Sprintf("/localizations/%s", projectID))
	if err != nil {
		return nil, &TransportError{Op: "create entry", Err: err}
	}
	if r.IsError() {
		return nil, &TransportError{Op: "create entry", Status: r.StatusCode()}
	}
	return &created, nil
}

// UpdateEntry replaces one entry's full translation map. Last write wins:
// no version check is sent, matching the service contract.
func (c *Client) UpdateEntry(ctx context.Context, projectID string, entryID int64, translations map[string]catalog.TranslationValue) (*catalog.Entry, error) {
	var updated catalog.Entry
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"translations": translations}).
		SetResult(&updated).
		Put(fmt.Sprintf("/localizations/%s/%d", projectID, entryID))
	if err != nil {
		return nil, &TransportError{Op: "update entry", Err: err}
	}
	if r.IsError() {
		return nil, &TransportError{Op: "update entry", Status: r.StatusCode()}
	}
	c.log.Debug("updated entry", "project", projectID, "entry", entryID)
	return &updated, nil
}

// UpdateEntriesBatch submits every update in a single request. Whether the
// server applies the list atomically is its own contract; the client only
// reports one success or failure for the whole batch.
func (c *Client) UpdateEntriesBatch(ctx context.Context, projectID string, updates []EntryUpdate) error {
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"entries": updates}).
		Put(fmt.Sprintf("/localizations/%s/batch", projectID))
	if err != nil {
		return &TransportError{Op: "batch update", Err: err}
	}
	if r.IsError() {
		return &TransportError{Op: "batch update", Status: r.StatusCode()}
	}
	c.log.Debug("batch updated entries", "project", projectID, "count", len(updates))
	return nil
}

// ListProjects returns the known projects.
func (c *Client) ListProjects(ctx context.Context) ([]catalog.Project, error) {
	var projects []catalog.Project
	r, err := c.http.R().SetContext(ctx).
		SetResult(&projects).
		Get("/projects")
	if err != nil {
		return nil, &TransportError{Op: "list projects", Err: err}
	}
	if r.IsError() {
		return nil, &TransportError{Op: "list projects", Status: r.StatusCode()}
	}
	return projects, nil
}

// ListLanguages returns the known languages.
func (c *Client) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	var languages []catalog.Language
	r, err := c.http.R().SetContext(ctx).
		SetResult(&languages).
		Get("/languages")
	if err != nil {
		return nil, &TransportError{Op: "list languages", Err: err}
	}
	if r.IsError() {
		return nil, &TransportError{Op: "list languages", Status: r.StatusCode()}
	}
	return languages, nil
}
