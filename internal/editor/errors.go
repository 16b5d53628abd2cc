// Package editor implements the translation matrix editing core: the
// filtered and paginated view over a project's entries, the selection set,
// and the single-cell and batch edit state machines. It is front-end
// agnostic; the TUI and CLI call its methods synchronously.
package editor

import "errors"

// Sentinel errors for editing operations.
var (
	// ErrNotEditing indicates an operation that requires an active edit
	// session while none is open.
	ErrNotEditing = errors.New("editor: no active edit session")

	// ErrSaving indicates the session or batch is busy with an in-flight
	// save and rejects further mutation until the save resolves.
	ErrSaving = errors.New("editor: save in flight")

	// ErrEmptySelection indicates a batch edit was opened with nothing
	// selected.
	ErrEmptySelection = errors.New("editor: selection is empty")

	// ErrBatchNotOpen indicates a batch operation outside an open batch
	// session.
	ErrBatchNotOpen = errors.New("editor: batch session not open")

	// ErrBatchOpen indicates an attempt to open a batch session twice.
	ErrBatchOpen = errors.New("editor: batch session already open")

	// ErrUnknownEntry indicates an entry id that is not present in the
	// current entry set.
	ErrUnknownEntry = errors.New("editor: unknown entry")

	// ErrNotFiltered indicates an entry id outside the currently filtered
	// set; selection only operates over visible-filter members.
	ErrNotFiltered = errors.New("editor: entry not in filtered set")
)
