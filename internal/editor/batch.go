package editor

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/catalog"
)

// BatchState is the batch edit session lifecycle state.
type BatchState int

const (
	// BatchClosed means no batch edit is in progress.
	BatchClosed BatchState = iota
	// BatchOpen means drafts are held for the selected entries.
	BatchOpen
	// BatchSaving means the batch save is in flight; the form is busy
	// until it resolves.
	BatchSaving
)

// String returns the state name.
func (s BatchState) String() string {
	switch s {
	case BatchClosed:
		return "closed"
	case BatchOpen:
		return "open"
	case BatchSaving:
		return "saving"
	}
	return "unknown"
}

// SelectionView is the slice of the View the batch controller needs: the
// selected ids to edit and the ability to clear them after a successful
// save.
type SelectionView interface {
	SelectedIDs() []int64
	ClearSelection()
}

// Batch is the multi-key bulk edit controller for one language column. The
// whole batch is submitted as a single call; on failure every draft and the
// selection survive unchanged so the user can retry without re-entering
// values.
type Batch struct {
	mu        sync.Mutex
	state     BatchState
	lang      string
	ids       []int64
	drafts    map[int64]string
	saveErr   error
	client    SyncClient
	source    EntrySource
	selection SelectionView
	inval     Invalidator
	projectID string
	editorID  string
	now       func() time.Time
	log       *slog.Logger
}

// NewBatch creates a closed batch controller for one project. A nil clock
// defaults to time.Now.
func NewBatch(client SyncClient, source EntrySource, selection SelectionView, inval Invalidator, projectID, editorID string, now func() time.Time, logger *slog.Logger) *Batch {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Batch{
		client:    client,
		source:    source,
		selection: selection,
		inval:     inval,
		projectID: projectID,
		editorID:  editorID,
		now:       now,
		log:       logger,
	}
}

// Open starts a batch edit over the current selection for the given
// language, seeding one draft per selected entry with its current value for
// that language (empty when absent). Requires a non-empty selection and a
// closed controller.
func (b *Batch) Open(lang string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case BatchSaving:
		return ErrSaving
	case BatchOpen:
		return ErrBatchOpen
	}
	ids := b.selection.SelectedIDs()
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	drafts := make(map[int64]string, len(ids))
	for _, id := range ids {
		entry, ok := b.source.Entry(id)
		if !ok {
			return ErrUnknownEntry
		}
		drafts[id] = entry.Value(lang)
	}
	b.state = BatchOpen
	b.lang = lang
	b.ids = ids
	b.drafts = drafts
	b.saveErr = nil
	return nil
}

// UpdateDraft replaces one entry's draft. Allowed only while open.
func (b *Batch) UpdateDraft(entryID int64, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case BatchSaving:
		return ErrSaving
	case BatchClosed:
		return ErrBatchNotOpen
	}
	if _, ok := b.drafts[entryID]; !ok {
		return ErrUnknownEntry
	}
	b.drafts[entryID] = value
	return nil
}

// Save persists every draft in one batch call. Each payload entry carries
// the entry's full current translation map with only the active language
// replaced. On success the drafts and the selection are cleared, the
// controller closes, and the entry cache is invalidated. On failure the
// drafts and the selection are preserved unchanged; the batch either
// applied or it did not, which is the collaborator's contract, and the
// client reports one failure for the whole batch.
func (b *Batch) Save(ctx context.Context) error {
	b.mu.Lock()
	switch b.state {
	case BatchSaving:
		b.mu.Unlock()
		return ErrSaving
	case BatchClosed:
		b.mu.Unlock()
		return ErrBatchNotOpen
	}
	now := b.now()
	updates := make([]api.EntryUpdate, 0, len(b.ids))
	for _, id := range b.ids {
		entry, ok := b.source.Entry(id)
		if !ok {
			b.mu.Unlock()
			return ErrUnknownEntry
		}
		updates = append(updates, api.EntryUpdate{
			ID:           id,
			Translations: catalog.Merge(entry.Translations, b.lang, b.drafts[id], b.editorID, now),
		})
	}
	b.state = BatchSaving
	count := len(updates)
	b.mu.Unlock()

	err := b.client.UpdateEntriesBatch(ctx, b.projectID, updates)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.state = BatchOpen
		b.saveErr = err
		b.log.Warn("batch save failed", "count", count, "lang", b.lang, "error", err)
		return err
	}
	b.state = BatchClosed
	b.ids = nil
	b.drafts = nil
	b.saveErr = nil
	b.selection.ClearSelection()
	b.inval.InvalidateEntries(b.projectID)
	b.log.Debug("batch saved", "count", count, "lang", b.lang)
	return nil
}

// Cancel discards every draft and closes the controller. The selection is
// left intact: cancelling the edits does not cancel the selection.
func (b *Batch) Cancel() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case BatchSaving:
		return ErrSaving
	case BatchClosed:
		return ErrBatchNotOpen
	}
	b.state = BatchClosed
	b.ids = nil
	b.drafts = nil
	b.saveErr = nil
	return nil
}

// State returns the current lifecycle state.
func (b *Batch) State() BatchState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Language returns the language column the batch edits.
func (b *Batch) Language() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lang
}

// IDs returns the entry ids covered by the open batch, in ascending order.
func (b *Batch) IDs() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]int64, len(b.ids))
	copy(out, b.ids)
	return out
}

// Draft returns one entry's draft value.
func (b *Batch) Draft(entryID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.drafts[entryID]
	return v, ok
}

// Drafts returns a copy of all drafts keyed by entry id.
func (b *Batch) Drafts() map[int64]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[int64]string, len(b.drafts))
	maps.Copy(out, b.drafts)
	return out
}

// Err returns the last save failure, cleared on Open, successful Save, or
// Cancel.
func (b *Batch) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saveErr
}
