package catalog

import (
	"maps"
	"time"
)

// Merge returns a copy of existing with only the given language replaced by
// a value stamped with editor identity and time. Every other language entry
// is carried forward unchanged, and the input map is never mutated.
//
// All single-cell and batch writes must build their translation maps through
// this function; constructing a translations payload any other way risks
// dropping values held for languages the edit did not touch.
func Merge(existing map[string]TranslationValue, lang, value, editor string, now time.Time) map[string]TranslationValue {
	merged := make(map[string]TranslationValue, len(existing)+1)
	maps.Copy(merged, existing)
	merged[lang] = TranslationValue{
		Value:     value,
		UpdatedAt: now,
		UpdatedBy: editor,
	}
	return merged
}
