package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestEngineRendersLoginInLayout(t *testing.T) {
	engine := Engine()
	if err := engine.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var buf bytes.Buffer
	err := engine.Render(&buf, "login", map[string]any{
		"Title":   "Sign in",
		"AppName": "pilgrim-travel",
		"Locale":  "ar",
		"Dir":     "rtl",
		"Error":   "invalid email or password",
		"Email":   "a@b.c",
	}, BaseLayout)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`dir="rtl"`, `action="/admin/login"`, "invalid email or password", `value="a@b.c"`} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered login missing %q", want)
		}
	}
}

func TestEngineRendersDashboard(t *testing.T) {
	engine := Engine()
	if err := engine.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var buf bytes.Buffer
	err := engine.Render(&buf, "dashboard", map[string]any{
		"Title": "Dashboard",
		"User":  map[string]any{"DisplayName": "Admin", "Email": "admin@example.com", "Role": "admin"},
		"Counts": []map[string]any{
			{"Label": "Hotels", "Count": 4},
		},
	}, BaseLayout)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "<td>Hotels</td><td>4</td>") {
		t.Errorf("dashboard missing counts row: %s", buf.String())
	}
}
