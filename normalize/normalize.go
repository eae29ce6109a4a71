// Package normalize converts raw marketplace-backend payloads into the
// canonical entities the dashboard consumes. The backend is inconsistent
// about shapes: ids arrive as _id or id, associations arrive embedded or as
// bare id strings, numbers arrive as numbers or strings, statuses use a
// different vocabulary. Every function here is pure and total: malformed
// input degrades to placeholder values, it never produces an error. The one
// exception is Tokens, which must fail on a malformed auth response.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Epoch is the sentinel for required timestamps the backend failed to send.
// Missing data sorts to 1970 instead of masquerading as fresh.
var Epoch = time.Unix(0, 0).UTC()

func text(s string) string { return strings.TrimSpace(s) }

func pickID(mongoID, plainID string) string {
	if mongoID != "" {
		return mongoID
	}
	return plainID
}

// Time parses an RFC3339 timestamp, falling back to the epoch sentinel.
func Time(s string) time.Time {
	t, err := time.Parse(time.RFC3339, text(s))
	if err != nil {
		return Epoch
	}
	return t.UTC()
}

// timeOrZero is for optional timestamps: absent stays absent.
func timeOrZero(s string) time.Time {
	t, err := time.Parse(time.RFC3339, text(s))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Number tolerates numeric fields sent as JSON numbers, quoted strings,
// null, or garbage. Anything unparsable decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Assoc holds an association the backend sends either as an embedded object
// or as a bare id string.
type Assoc struct {
	raw json.RawMessage
}

func (a *Assoc) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.raw = nil
		return nil
	}
	a.raw = append(a.raw[:0], b...)
	return nil
}

func (a Assoc) Present() bool { return len(a.raw) > 0 }

// StringID returns the bare-id form of the association, if that is what the
// backend sent.
func (a Assoc) StringID() (string, bool) {
	if len(a.raw) == 0 || a.raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(a.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Object decodes the embedded-object form of the association into out.
func (a Assoc) Object(out any) bool {
	if len(a.raw) == 0 || a.raw[0] != '{' {
		return false
	}
	return json.Unmarshal(a.raw, out) == nil
}

type idOnly struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

// EntityID extracts an id from either association form.
func (a Assoc) EntityID() string {
	if s, ok := a.StringID(); ok {
		return s
	}
	var ids idOnly
	if a.Object(&ids) {
		return pickID(ids.MongoID, ids.ID)
	}
	return ""
}

// Slug derives a URL slug from a display name: accents folded away,
// lowercased, non-alphanumeric runs collapsed to single dashes.
func Slug(s string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, norm.NFD.String(s))

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
