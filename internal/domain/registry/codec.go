package registry

import "strings"

const (
	// OpenMarker starts the plugin list in ACT's configuration document.
	OpenMarker = "<ActPlugins>"
	// CloseMarker ends the plugin list.
	CloseMarker = "</ActPlugins>"

	elementOpen  = "<Plugin "
	elementClose = "/>"
)

// Fragment is the text between an OpenMarker/CloseMarker pair, together
// with its byte offsets in the document it was taken from.
type Fragment struct {
	Inner string
	Start int
	End   int
}

// ExtractFragment finds every non-overlapping <ActPlugins> region of doc
// and returns the last one. Some bundled ACT distributions ship a stale
// block ahead of the live one, and ACT itself reads the last.
// It returns ErrNoPluginRegion when doc has no complete region.
func ExtractFragment(doc string) (Fragment, error) {
	var (
		last  Fragment
		found bool
		pos   int
	)
	for {
		i := strings.Index(doc[pos:], OpenMarker)
		if i < 0 {
			break
		}
		start := pos + i + len(OpenMarker)
		j := strings.Index(doc[start:], CloseMarker)
		if j < 0 {
			break
		}
		end := start + j
		last = Fragment{Inner: doc[start:end], Start: start, End: end}
		found = true
		pos = end + len(CloseMarker)
	}
	if !found {
		return Fragment{}, ErrNoPluginRegion
	}
	return last, nil
}

// ParseRecords tokenizes the single-line <Plugin ... /> elements of a
// fragment into a Registry. Any other content inside the fragment is
// dropped. The whitespace in front of each element and in front of the
// closing marker is kept, so an untouched registry serializes back to the
// same text.
func ParseRecords(inner string) *Registry {
	reg := New()

	var (
		pos     int
		prevEnd int
	)
	for {
		i := strings.Index(inner[pos:], elementOpen)
		if i < 0 {
			break
		}
		start := pos + i
		body := inner[start+len(elementOpen):]
		j := strings.Index(body, elementClose)
		if j < 0 {
			break
		}
		if nl := strings.IndexByte(body[:j], '\n'); nl >= 0 {
			pos = start + 1
			continue
		}
		end := start + len(elementOpen) + j + len(elementClose)

		rec := ParseRecord(inner[start:end])
		rec.setIndent(trailingSpace(inner[prevEnd:start]))
		reg.records = append(reg.records, rec)

		prevEnd = end
		pos = end
	}

	if n := len(reg.records); n > 0 {
		reg.entryIndent = reg.records[n-1].indent
		reg.closeIndent = trailingSpace(inner[prevEnd:])
	} else if strings.TrimSpace(inner) == "" {
		reg.closeIndent = inner
	}
	return reg
}

// SerializeRecords renders reg as replacement text for a fragment.
func SerializeRecords(reg *Registry) string {
	return reg.Serialize()
}

// Splice replaces the region frag was extracted from with replacement and
// leaves every other byte of doc as it was.
func Splice(doc string, frag Fragment, replacement string) string {
	var b strings.Builder
	b.Grow(len(doc) - (frag.End - frag.Start) + len(replacement))
	b.WriteString(doc[:frag.Start])
	b.WriteString(replacement)
	b.WriteString(doc[frag.End:])
	return b.String()
}

// trailingSpace returns the run of whitespace at the end of s.
func trailingSpace(s string) string {
	i := len(s)
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	return s[i:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
