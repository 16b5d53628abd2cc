package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// SessionState is the edit session lifecycle state.
type SessionState int

const (
	// SessionIdle means no cell is being edited.
	SessionIdle SessionState = iota
	// SessionEditing means one cell holds an unsaved draft.
	SessionEditing
	// SessionSaving means a save is in flight; the cell is busy until it
	// resolves.
	SessionSaving
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionEditing:
		return "editing"
	case SessionSaving:
		return "saving"
	}
	return "unknown"
}

// Session is the single-cell inline edit controller. At most one cell is
// active at a time: beginning an edit on a different cell discards the
// prior draft without saving it. A failed save returns to editing with the
// draft intact so the user can retry.
type Session struct {
	mu        sync.Mutex
	state     SessionState
	entryID   int64
	lang      string
	draft     string
	saveErr   error
	client    SyncClient
	source    EntrySource
	inval     Invalidator
	projectID string
	editorID  string
	now       func() time.Time
	log       *slog.Logger
}

// NewSession creates an idle edit session controller for one project. A nil
// clock defaults to time.Now.
func NewSession(client SyncClient, source EntrySource, inval Invalidator, projectID, editorID string, now func() time.Time, logger *slog.Logger) *Session {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		client:    client,
		source:    source,
		inval:     inval,
		projectID: projectID,
		editorID:  editorID,
		now:       now,
		log:       logger,
	}
}

// Begin opens an edit on one (entry, language) cell, seeding the draft with
// the entry's current value for that language (empty when absent). Allowed
// while idle or while editing another cell, in which case that draft is
// discarded. Rejected with ErrSaving while a save is in flight.
func (s *Session) Begin(entryID int64, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSaving {
		return ErrSaving
	}
	entry, ok := s.source.Entry(entryID)
	if !ok {
		return ErrUnknownEntry
	}
	s.state = SessionEditing
	s.entryID = entryID
	s.lang = lang
	s.draft = entry.Value(lang)
	s.saveErr = nil
	return nil
}

// UpdateDraft replaces the draft string. Allowed only while editing.
func (s *Session) UpdateDraft(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case SessionSaving:
		return ErrSaving
	case SessionIdle:
		return ErrNotEditing
	}
	s.draft = value
	return nil
}

// Save persists the draft. It merges the entry's current translation map
// with the draft value for the active language, then replaces the whole map
// server-side in one call. On success the session goes idle and the
// project's entry cache is invalidated; on failure the session returns to
// editing with the draft unchanged and the error readable via Err.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case SessionSaving:
		s.mu.Unlock()
		return ErrSaving
	case SessionIdle:
		s.mu.Unlock()
		return ErrNotEditing
	}
	entry, ok := s.source.Entry(s.entryID)
	if !ok {
		s.mu.Unlock()
		return ErrUnknownEntry
	}
	s.state = SessionSaving
	entryID, lang, draft := s.entryID, s.lang, s.draft
	merged := catalog.Merge(entry.Translations, lang, draft, s.editorID, s.now())
	s.mu.Unlock()

	_, err := s.client.UpdateEntry(ctx, s.projectID, entryID, merged)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SessionEditing
		s.saveErr = err
		s.log.Warn("cell save failed", "entry", entryID, "lang", lang, "error", err)
		return err
	}
	s.state = SessionIdle
	s.entryID = 0
	s.lang = ""
	s.draft = ""
	s.saveErr = nil
	s.inval.InvalidateEntries(s.projectID)
	s.log.Debug("cell saved", "entry", entryID, "lang", lang)
	return nil
}

// Cancel discards the draft and returns the session to idle. Allowed only
// while editing.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case SessionSaving:
		return ErrSaving
	case SessionIdle:
		return ErrNotEditing
	}
	s.state = SessionIdle
	s.entryID = 0
	s.lang = ""
	s.draft = ""
	s.saveErr = nil
	return nil
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Active returns the cell being edited, or ok=false while idle.
func (s *Session) Active() (entryID int64, lang string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionIdle {
		return 0, "", false
	}
	return s.entryID, s.lang, true
}

// Draft returns the current draft string.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Err returns the last save failure, cleared on the next Begin, successful
// Save, or Cancel.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}
