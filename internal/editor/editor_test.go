package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/catalog"
)

// fakeClient records update calls and fails while fail is set.
type fakeClient struct {
	fail         bool
	updates      []map[string]catalog.TranslationValue
	batches      [][]api.EntryUpdate
	lastEntryID  int64
	lastProject  string
	invalidation int
}

var errFakeTransport = errors.New("fake transport failure")

func (f *fakeClient) UpdateEntry(_ context.Context, projectID string, entryID int64, translations map[string]catalog.TranslationValue) (*catalog.Entry, error) {
	if f.fail {
		return nil, errFakeTransport
	}
	f.lastProject = projectID
	f.lastEntryID = entryID
	f.updates = append(f.updates, translations)
	return &catalog.Entry{ID: entryID, Translations: translations}, nil
}

func (f *fakeClient) UpdateEntriesBatch(_ context.Context, projectID string, updates []api.EntryUpdate) error {
	if f.fail {
		return errFakeTransport
	}
	f.lastProject = projectID
	f.batches = append(f.batches, updates)
	return nil
}

func (f *fakeClient) InvalidateEntries(string) { f.invalidation++ }

// blockingClient parks each update call until release is closed, so a test
// can observe controller state while the save is still in flight.
type blockingClient struct {
	fakeClient
	entered chan struct{}
	release chan struct{}
}

func newBlockingClient() *blockingClient {
	return &blockingClient{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (c *blockingClient) UpdateEntry(ctx context.Context, projectID string, entryID int64, translations map[string]catalog.TranslationValue) (*catalog.Entry, error) {
	c.entered <- struct{}{}
	<-c.release
	return c.fakeClient.UpdateEntry(ctx, projectID, entryID, translations)
}

func (c *blockingClient) UpdateEntriesBatch(ctx context.Context, projectID string, updates []api.EntryUpdate) error {
	c.entered <- struct{}{}
	<-c.release
	return c.fakeClient.UpdateEntriesBatch(ctx, projectID, updates)
}

// testEntries builds n entries cycling through the given categories, with
// en and fr values derived from the index.
func testEntries(n int, categories ...string) []catalog.Entry {
	if len(categories) == 0 {
		categories = []string{"common"}
	}
	entries := make([]catalog.Entry, n)
	for i := range n {
		entries[i] = catalog.Entry{
			ID:       int64(i + 1),
			Key:      fmt.Sprintf("key.%d", i+1),
			Category: categories[i%len(categories)],
			Translations: map[string]catalog.TranslationValue{
				"en": {Value: fmt.Sprintf("english %d", i+1)},
				"fr": {Value: fmt.Sprintf("french %d", i+1)},
			},
			ProjectID: "web",
		}
	}
	return entries
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}
