package portfolio

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Lang is a language code of a view-model partition.
type Lang string

const (
	LangPT Lang = "pt"
	LangEN Lang = "en"
)

// Languages lists every supported language in render order.
var Languages = []Lang{LangPT, LangEN}

// ParseLang returns the Lang for s and whether it is supported.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangPT, LangEN:
		return Lang(s), true
	}
	return "", false
}

type localizedKind uint8

const (
	kindAbsent localizedKind = iota
	kindPlain
	kindLocalized
)

// LocalizedString is a backend text field that arrives either as a plain
// string or as an object keyed by language code.  Any other JSON shape
// (null, numbers, arrays) decodes to an absent value rather than failing the
// whole payload.
type LocalizedString struct {
	kind   localizedKind
	plain  string
	values map[Lang]string
}

// Plain returns a LocalizedString holding the same text for every language.
func Plain(s string) LocalizedString {
	return LocalizedString{kind: kindPlain, plain: s}
}

// Localized returns a LocalizedString holding per-language values.
func Localized(values map[Lang]string) LocalizedString {
	cp := make(map[Lang]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return LocalizedString{kind: kindLocalized, values: cp}
}

// IsAbsent reports whether the field carried no usable value.
func (l LocalizedString) IsAbsent() bool { return l.kind == kindAbsent }

// IsPlain reports whether the field arrived as a plain string.
func (l LocalizedString) IsPlain() bool { return l.kind == kindPlain }

// Resolve returns the text for lang.  Resolution order: the language-specific
// entry, then the plain string, then def.  Empty strings count as missing.
func (l LocalizedString) Resolve(lang Lang, def string) string {
	switch l.kind {
	case kindLocalized:
		if v := l.values[lang]; v != "" {
			return v
		}
	case kindPlain:
		if l.plain != "" {
			return l.plain
		}
	}
	return def
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LocalizedString) UnmarshalJSON(data []byte) error {
	*l = LocalizedString{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Plain(s)
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		values := make(map[Lang]string, len(raw))
		for k, v := range raw {
			var s string
			if json.Unmarshal(v, &s) == nil {
				values[Lang(k)] = s
			}
		}
		*l = LocalizedString{kind: kindLocalized, values: values}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.  Absent values encode as null.
func (l LocalizedString) MarshalJSON() ([]byte, error) {
	switch l.kind {
	case kindPlain:
		return json.Marshal(l.plain)
	case kindLocalized:
		keys := make([]string, 0, len(l.values))
		for k := range l.values {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		m := make(map[string]string, len(keys))
		for _, k := range keys {
			m[k] = l.values[Lang(k)]
		}
		return json.Marshal(m)
	}
	return []byte("null"), nil
}

// EntityID is a record identifier.  The backend emits Mongo object ids as
// strings; fixtures and older payloads use numbers.
type EntityID string

// String returns the id as text.
func (id EntityID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string or number; anything else is empty.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	*id = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EntityID(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if i, err := n.Int64(); err == nil {
			*id = EntityID(strconv.FormatInt(i, 10))
			return nil
		}
		*id = EntityID(n.String())
	}
	return nil
}

// Int is a numeric field the view-model never reads, such as a sort order.
// It accepts a JSON number or a numeric string; anything else is zero.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if json.Unmarshal(data, &s) != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*n = Int(f)
	}
	return nil
}

// Flag is a boolean field the view-model never reads.  It accepts true and
// false, the strings "true" and "1", and non-zero numbers; anything else is
// false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = false
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if json.Unmarshal(data, &s) != nil {
			return nil
		}
		data = []byte(strings.ToLower(strings.TrimSpace(s)))
	}
	switch s := string(data); s {
	case "true":
		*f = true
	case "false", "null", "":
	default:
		if v, err := strconv.ParseFloat(s, 64); err == nil && v != 0 {
			*f = true
		}
	}
	return nil
}

// StringList is a list of plain strings such as technology names.  Elements
// that are not strings are dropped; a value that is not an array is absent.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var raw []json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, r := range raw {
		var s string
		if r = bytes.TrimSpace(r); len(r) > 0 && r[0] == '"' && json.Unmarshal(r, &s) == nil {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}
