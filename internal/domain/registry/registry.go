package registry

import "strings"

// Registry is the ordered plugin list of one document. Order is the load
// order ACT uses, so entries are only ever inserted, appended, or removed.
type Registry struct {
	records     []*Record
	entryIndent string
	closeIndent string
}

// New creates an empty registry that formats entries the way ACT does.
func New(records ...*Record) *Registry {
	r := &Registry{
		entryIndent: DefaultEntryIndent,
		closeIndent: DefaultCloseIndent,
	}
	for _, rec := range records {
		r.Append(rec)
	}
	return r
}

// Records returns a copy of the sequence.
func (r *Registry) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.records)
}

// At returns the entry at index i.
func (r *Registry) At(i int) *Record {
	return r.records[i]
}

// IndexOf returns the position of rec, or -1.
func (r *Registry) IndexOf(rec *Record) int {
	for i, candidate := range r.records {
		if candidate == rec {
			return i
		}
	}
	return -1
}

// Find returns the first entry whose file name contains fragment, ignoring
// case, or nil.
func (r *Registry) Find(fragment string) *Record {
	return Find(fragment, r.records)
}

// Insert places rec at index, shifting later entries back. The index is
// clamped to the valid range.
func (r *Registry) Insert(index int, rec *Record) {
	if index < 0 {
		index = 0
	}
	if index > len(r.records) {
		index = len(r.records)
	}
	r.adopt(rec)
	r.records = append(r.records, nil)
	copy(r.records[index+1:], r.records[index:])
	r.records[index] = rec
}

// Append adds rec to the end of the sequence.
func (r *Registry) Append(rec *Record) {
	r.adopt(rec)
	r.records = append(r.records, rec)
}

// Remove deletes rec from the sequence and reports whether it was present.
func (r *Registry) Remove(rec *Record) bool {
	i := r.IndexOf(rec)
	if i < 0 {
		return false
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return true
}

// FileNames returns the file name of every entry in order.
func (r *Registry) FileNames() []string {
	names := make([]string, len(r.records))
	for i, rec := range r.records {
		names[i] = rec.FileName()
	}
	return names
}

// Serialize renders the registry as the inner text of <ActPlugins>.
func (r *Registry) Serialize() string {
	var b strings.Builder
	for _, rec := range r.records {
		b.WriteString(rec.Serialize())
	}
	b.WriteString(r.closeIndent)
	return b.String()
}

// adopt gives a synthesized record the indentation of its neighbours.
func (r *Registry) adopt(rec *Record) {
	if !rec.indentSet {
		rec.setIndent(r.entryIndent)
	}
}
