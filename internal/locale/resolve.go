package locale

import (
	"reflect"
	"strings"
	"sync"
)

// Record exposes named attributes such as "title_en" and "title_ar".
type Record interface {
	Value(key string) (any, bool)
}

// Fields adapts a plain map to Record.
type Fields map[string]any

// Value implements Record.
func (f Fields) Value(key string) (any, bool) {
	v, ok := f[key]
	return v, ok
}

// Key builds the attribute name for field in loc, e.g. Key("title", Arabic) == "title_ar".
func Key(field string, loc Locale) string {
	return field + "_" + string(loc)
}

// Lookup returns the raw variant of field for loc. ok is false when the attribute
// is missing or does not hold a string; an empty string that is present reports true.
func Lookup(rec Record, field string, loc Locale) (string, bool) {
	if rec == nil {
		return "", false
	}
	v, ok := rec.Value(Key(field, loc))
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}

// Resolve returns the display value of field for loc: the requested variant when
// non-empty, otherwise the other locale's variant, otherwise "".
func Resolve(rec Record, field string, loc Locale) string {
	if !loc.Valid() {
		loc = Default
	}
	if v, _ := Lookup(rec, field, loc); v != "" {
		return v
	}
	v, _ := Lookup(rec, field, loc.Other())
	return v
}

// Text is an inline bilingual value.
type Text struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In resolves t for loc with the same fallback rule as Resolve.
func (t Text) In(loc Locale) string {
	return Resolve(Fields{"v_en": t.EN, "v_ar": t.AR}, "v", loc)
}

// IsEmpty reports whether both variants are blank.
func (t Text) IsEmpty() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.AR) == ""
}

// FromStruct adapts a struct (or pointer to struct) to Record. Attributes are
// addressable by `db` tag, `json` tag name, or Go field name; embedded structs are
// flattened.
func FromStruct(v any) Record {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Fields{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Fields{}
	}
	return structRecord{value: rv, index: fieldIndex(rv.Type())}
}

type structRecord struct {
	value reflect.Value
	index map[string][]int
}

func (r structRecord) Value(key string) (any, bool) {
	idx, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.value.FieldByIndex(idx).Interface(), true
}

var indexCache sync.Map // reflect.Type -> map[string][]int

func fieldIndex(t reflect.Type) map[string][]int {
	if cached, ok := indexCache.Load(t); ok {
		return cached.(map[string][]int)
	}
	index := make(map[string][]int)
	collectFields(t, nil, index)
	indexCache.Store(t, index)
	return index
}

func collectFields(t reflect.Type, parent []int, index map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		path := append(append([]int{}, parent...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, path, index)
			continue
		}
		if !f.IsExported() {
			continue
		}
		for _, name := range fieldNames(f) {
			if _, taken := index[name]; !taken {
				index[name] = path
			}
		}
	}
}

func fieldNames(f reflect.StructField) []string {
	names := make([]string, 0, 3)
	if tag := tagName(f.Tag.Get("db")); tag != "" {
		names = append(names, tag)
	}
	if tag := tagName(f.Tag.Get("json")); tag != "" {
		names = append(names, tag)
	}
	return append(names, f.Name)
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
