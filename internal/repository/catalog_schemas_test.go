package repository

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

// dbColumns collects db tags, flattening embedded structs the way pgx does.
func dbColumns(t reflect.Type) map[string]bool {
	cols := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for k := range dbColumns(f.Type) {
				cols[k] = true
			}
			continue
		}
		if tag := f.Tag.Get("db"); tag != "" && tag != "-" {
			cols[tag] = true
		}
	}
	return cols
}

type schemaCase struct {
	name    string
	table   string
	columns []string
	parent  string
	visible string
	values  int
	typ     reflect.Type
}

func schemaCases() []schemaCase {
	return []schemaCase{
		caseFor("location", LocationSchema),
		caseFor("hotel", HotelSchema),
		caseFor("room", RoomSchema),
		caseFor("category", CategorySchema),
		caseFor("package", PackageSchema),
		caseFor("event", EventSchema),
		caseFor("transportation", TransportationSchema),
		caseFor("visa", VisaSchema),
		caseFor("blog post", BlogPostSchema),
		caseFor("testimonial", TestimonialSchema),
	}
}

func caseFor[T any](name string, s Schema[T]) schemaCase {
	var zero T
	return schemaCase{
		name:    name,
		table:   s.Table,
		columns: s.Columns,
		parent:  s.ParentColumn,
		visible: s.VisibleColumn,
		values:  len(s.Values(&zero)),
		typ:     reflect.TypeOf(zero),
	}
}

func TestSchemasMatchStructs(t *testing.T) {
	for _, tc := range schemaCases() {
		t.Run(tc.name, func(t *testing.T) {
			cols := dbColumns(tc.typ)
			if tc.values != len(tc.columns) {
				t.Fatalf("Values() returned %d args for %d columns", tc.values, len(tc.columns))
			}
			// every struct column is either writable or managed by the database
			managed := map[string]bool{"id": true, "created_at": true, "updated_at": true}
			writable := map[string]bool{}
			for _, c := range tc.columns {
				if !cols[c] {
					t.Errorf("column %q has no struct field", c)
				}
				writable[c] = true
			}
			for c := range cols {
				if !writable[c] && !managed[c] {
					t.Errorf("struct field %q is never written", c)
				}
			}
			if tc.parent != "" && !cols[tc.parent] {
				t.Errorf("parent column %q has no struct field", tc.parent)
			}
			if tc.visible != "" && !cols[tc.visible] {
				t.Errorf("visible column %q has no struct field", tc.visible)
			}
		})
	}
}

func TestSchemasMatchMigration(t *testing.T) {
	content, err := os.ReadFile("../persistence/migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(content)

	for _, tc := range schemaCases() {
		t.Run(tc.name, func(t *testing.T) {
			start := strings.Index(sql, "CREATE TABLE IF NOT EXISTS "+tc.table+" (")
			if start < 0 {
				t.Fatalf("table %q missing from migration", tc.table)
			}
			body := sql[start:]
			body = body[:strings.Index(body, ");")]
			for c := range dbColumns(tc.typ) {
				if !strings.Contains(body, "\n    "+c+" ") {
					t.Errorf("column %q missing from table %q", c, tc.table)
				}
			}
		})
	}
}

func TestOptional(t *testing.T) {
	id := "abc"
	if got := optional(&id); got != "abc" {
		t.Errorf("optional(&id) = %q, want %q", got, "abc")
	}
	if got := optional(nil); got != "" {
		t.Errorf("optional(nil) = %q, want empty", got)
	}
}
