// Package catalog defines the localization catalog domain model: entries,
// per-language translation values, languages and projects, plus the pure
// operations (merge, category extraction) shared by every editing path.
package catalog

import "time"

// TranslationValue is one language's value for an entry, stamped with the
// identity and time of the last write.
type TranslationValue struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// Entry is a single translatable key owned by a project. Translations is
// sparse: a language code absent from the map means "no value yet".
type Entry struct {
	ID           int64                       `json:"id"`
	Key          string                      `json:"key"`
	Category     string                      `json:"category"`
	Description  string                      `json:"description,omitempty"`
	Translations map[string]TranslationValue `json:"translations"`
	ProjectID    string                      `json:"project_id"`
}

// Value returns the entry's value for the given language code, or the empty
// string when no value has been written for that language.
func (e Entry) Value(lang string) string {
	return e.Translations[lang].Value
}

// Language identifies one translatable language column.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Project is the owning scope for a set of entries.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
