package editor

import (
	"context"

	"github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/catalog"
)

// SyncClient is the slice of the sync client the edit controllers need.
// *api.Client satisfies it; tests substitute fakes.
type SyncClient interface {
	UpdateEntry(ctx context.Context, projectID string, entryID int64, translations map[string]catalog.TranslationValue) (*catalog.Entry, error)
	UpdateEntriesBatch(ctx context.Context, projectID string, updates []api.EntryUpdate) error
}

// EntrySource resolves entry ids to their current cached state. *View
// satisfies it.
type EntrySource interface {
	Entry(id int64) (catalog.Entry, bool)
}

// Invalidator drops a project's cached entry list so the next read
// refetches. Controllers call it after every successful save.
type Invalidator interface {
	InvalidateEntries(projectID string)
}
