package registry

import (
	"strings"

	"golang.org/x/text/cases"
)

// Find returns the first record, in sequence order, whose file name contains
// fragment under Unicode case folding, or nil when nothing matches.
// "trig" matches "Triggernometry.dll" and "MlmTriggernometry.dll" alike, so
// the order of the sequence decides which one is returned.
func Find(fragment string, records []*Record) *Record {
	fold := cases.Fold()
	needle := fold.String(fragment)
	for _, rec := range records {
		if strings.Contains(fold.String(rec.FileName()), needle) {
			return rec
		}
	}
	return nil
}

// FindAny tries each fragment in turn and returns the first hit.
func FindAny(records []*Record, fragments ...string) *Record {
	for _, fragment := range fragments {
		if rec := Find(fragment, records); rec != nil {
			return rec
		}
	}
	return nil
}
