package store

import (
	"context"
	"sync"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// Record keys, one per named store.
const (
	keyActiveProject   = "active_project"
	keyKnownProjects   = "known_projects"
	keyActiveLanguage  = "active_language"
	keyKnownLanguages  = "known_languages"
	keyActiveCategory  = "active_category"
	keyKnownCategories = "known_categories"
)

// ProjectStore holds the active project and the known project list.
type ProjectStore struct {
	mu     sync.RWMutex
	repo   *Repo
	active catalog.Project
	hasAct bool
	known  []catalog.Project
}

// NewProjectStore creates an unhydrated project store.
func NewProjectStore(repo *Repo) *ProjectStore {
	return &ProjectStore{repo: repo}
}

// Hydrate loads both records from the state database. Missing records leave
// the zero state in place.
func (s *ProjectStore) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	hasAct, err := loadJSON(ctx, s.repo, keyActiveProject, &s.active)
	if err != nil {
		return err
	}
	s.hasAct = hasAct
	if _, err := loadJSON(ctx, s.repo, keyKnownProjects, &s.known); err != nil {
		return err
	}
	return nil
}

// Active returns the active project; ok is false when none is set.
func (s *ProjectStore) Active() (catalog.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.hasAct
}

// SetActive sets the active project and writes it through.
func (s *ProjectStore) SetActive(ctx context.Context, p catalog.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyActiveProject, p); err != nil {
		return err
	}
	s.active = p
	s.hasAct = true
	return nil
}

// Known returns the known project list.
func (s *ProjectStore) Known() []catalog.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Project, len(s.known))
	copy(out, s.known)
	return out
}

// SetKnown replaces the known project list and writes it through.
func (s *ProjectStore) SetKnown(ctx context.Context, projects []catalog.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyKnownProjects, projects); err != nil {
		return err
	}
	s.known = projects
	return nil
}

// LanguageStore holds the active language and the known language list.
type LanguageStore struct {
	mu     sync.RWMutex
	repo   *Repo
	active catalog.Language
	hasAct bool
	known  []catalog.Language
}

// NewLanguageStore creates an unhydrated language store.
func NewLanguageStore(repo *Repo) *LanguageStore {
	return &LanguageStore{repo: repo}
}

// Hydrate loads both records from the state database.
func (s *LanguageStore) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	hasAct, err := loadJSON(ctx, s.repo, keyActiveLanguage, &s.active)
	if err != nil {
		return err
	}
	s.hasAct = hasAct
	if _, err := loadJSON(ctx, s.repo, keyKnownLanguages, &s.known); err != nil {
		return err
	}
	return nil
}

// Active returns the active language; ok is false when none is set.
func (s *LanguageStore) Active() (catalog.Language, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.hasAct
}

// SetActive sets the active language and writes it through.
func (s *LanguageStore) SetActive(ctx context.Context, l catalog.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyActiveLanguage, l); err != nil {
		return err
	}
	s.active = l
	s.hasAct = true
	return nil
}

// Known returns the known language list.
func (s *LanguageStore) Known() []catalog.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Language, len(s.known))
	copy(out, s.known)
	return out
}

// SetKnown replaces the known language list and writes it through.
func (s *LanguageStore) SetKnown(ctx context.Context, languages []catalog.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyKnownLanguages, languages); err != nil {
		return err
	}
	s.known = languages
	return nil
}

// CategoryStore holds the active category filter and the known category
// list. The zero state is the synthetic "all" category.
type CategoryStore struct {
	mu     sync.RWMutex
	repo   *Repo
	active string
	known  []string
}

// NewCategoryStore creates an unhydrated category store defaulting to
// catalog.CategoryAll.
func NewCategoryStore(repo *Repo) *CategoryStore {
	return &CategoryStore{
		repo:   repo,
		active: catalog.CategoryAll,
		known:  []string{catalog.CategoryAll},
	}
}

// Hydrate loads both records from the state database.
func (s *CategoryStore) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := loadJSON(ctx, s.repo, keyActiveCategory, &s.active); err != nil {
		return err
	}
	if _, err := loadJSON(ctx, s.repo, keyKnownCategories, &s.known); err != nil {
		return err
	}
	if s.active == "" {
		s.active = catalog.CategoryAll
	}
	return nil
}

// Active returns the active category.
func (s *CategoryStore) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive sets the active category and writes it through.
func (s *CategoryStore) SetActive(ctx context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyActiveCategory, category); err != nil {
		return err
	}
	s.active = category
	return nil
}

// Known returns the known category list, "all" first.
func (s *CategoryStore) Known() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.known))
	copy(out, s.known)
	return out
}

// SetKnown replaces the known category list and writes it through. The
// active category is kept even when absent from the new list.
func (s *CategoryStore) SetKnown(ctx context.Context, categories []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.repo, keyKnownCategories, categories); err != nil {
		return err
	}
	s.known = categories
	return nil
}
