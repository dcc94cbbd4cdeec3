package locale

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		loc  Locale
		want string
	}{
		{"arabic present", Fields{"title_en": "Umrah", "title_ar": "عمرة"}, Arabic, "عمرة"},
		{"arabic empty falls back", Fields{"title_en": "Umrah", "title_ar": ""}, Arabic, "Umrah"},
		{"arabic missing falls back", Fields{"title_en": "Umrah"}, Arabic, "Umrah"},
		{"english empty falls back", Fields{"title_en": "", "title_ar": "عمرة"}, English, "عمرة"},
		{"both empty", Fields{"title_en": "", "title_ar": ""}, Arabic, ""},
		{"both missing", Fields{}, English, ""},
		{"non-string coerced", Fields{"title_en": 42, "title_ar": true}, English, ""},
		{"non-string primary falls back", Fields{"title_en": "Umrah", "title_ar": 7}, Arabic, "Umrah"},
		{"nil record", nil, English, ""},
		{"invalid locale uses default", Fields{"title_en": "Umrah", "title_ar": "عمرة"}, Locale("fr"), "Umrah"},
		{"requested wins over fallback", Fields{"title_en": "Umrah", "title_ar": "عمرة"}, English, "Umrah"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.rec, "title", tt.loc); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupDistinguishesMissingFromEmpty(t *testing.T) {
	rec := Fields{"title_en": ""}
	if v, ok := Lookup(rec, "title", English); !ok || v != "" {
		t.Errorf("Lookup(empty) = (%q, %v), want (\"\", true)", v, ok)
	}
	if _, ok := Lookup(rec, "title", Arabic); ok {
		t.Error("Lookup(missing) ok = true, want false")
	}
}

func TestLookupStringPointer(t *testing.T) {
	s := "مكة"
	var nilStr *string
	rec := Fields{"city_ar": &s, "city_en": nilStr}
	if v, ok := Lookup(rec, "city", Arabic); !ok || v != s {
		t.Errorf("Lookup(*string) = (%q, %v), want (%q, true)", v, ok, s)
	}
	if _, ok := Lookup(rec, "city", English); ok {
		t.Error("Lookup(nil *string) ok = true, want false")
	}
}

type embedded struct {
	ID string `db:"id"`
}

type hotelRow struct {
	embedded
	NameEN string `db:"name_en" json:"name_en"`
	NameAR string `db:"name_ar" json:"nameArabic"`
	Stars  int    `db:"stars"`
	secret string
}

func TestFromStruct(t *testing.T) {
	h := &hotelRow{embedded: embedded{ID: "h1"}, NameEN: "Hilton", NameAR: "", Stars: 5, secret: "x"}
	rec := FromStruct(h)

	if got := Resolve(rec, "name", Arabic); got != "Hilton" {
		t.Errorf("Resolve(name, ar) = %q, want %q", got, "Hilton")
	}
	if v, ok := rec.Value("id"); !ok || v != "h1" {
		t.Errorf("Value(id) = (%v, %v), want (h1, true)", v, ok)
	}
	if v, ok := rec.Value("nameArabic"); !ok || v != "" {
		t.Errorf("Value(json tag) = (%v, %v), want (\"\", true)", v, ok)
	}
	if _, ok := rec.Value("NameEN"); !ok {
		t.Error("Value(field name) ok = false, want true")
	}
	if _, ok := rec.Value("secret"); ok {
		t.Error("unexported field must not be addressable")
	}
	if got := Resolve(rec, "stars", English); got != "" {
		t.Errorf("Resolve(non-string) = %q, want empty", got)
	}
}

func TestFromStructNonStruct(t *testing.T) {
	var nilHotel *hotelRow
	for _, v := range []any{nil, nilHotel, 12, "title_en"} {
		if got := Resolve(FromStruct(v), "title", English); got != "" {
			t.Errorf("Resolve(FromStruct(%v)) = %q, want empty", v, got)
		}
	}
}

func TestText(t *testing.T) {
	txt := Text{EN: "Welcome", AR: ""}
	if got := txt.In(Arabic); got != "Welcome" {
		t.Errorf("In(ar) = %q, want fallback %q", got, "Welcome")
	}
	if txt.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !(Text{EN: " ", AR: ""}).IsEmpty() {
		t.Error("IsEmpty() = false for blank text")
	}
}
