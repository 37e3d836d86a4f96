package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Name == "" {
		t.Fatal("default content has no name")
	}
	if len(c.Projects) == 0 || len(c.Gallery) == 0 {
		t.Error("default content should include projects and gallery captions")
	}
	if c.Contact.MailtoURI() != "mailto:"+c.Contact.Email {
		t.Errorf("MailtoURI = %q", c.Contact.MailtoURI())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	doc := "name: Sam\nheadline: Engineer\ncontact:\n  phone: \"+441234\"\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "Sam" || c.Headline != "Engineer" {
		t.Errorf("unexpected content %+v", c)
	}
	if c.Contact.TelURI() != "tel:+441234" {
		t.Errorf("TelURI = %q", c.Contact.TelURI())
	}
	if c.Contact.MailtoURI() != "" {
		t.Errorf("MailtoURI for empty email = %q", c.Contact.MailtoURI())
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != Default().Name {
		t.Errorf("got %q, want default", c.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing content file")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no name", "headline: x\n"},
		{"unknown field", "name: x\nnickname: y\n"},
		{"malformed", "name: [x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestHas(t *testing.T) {
	c := &Content{Name: "x", Tools: []string{"Git"}}
	tests := map[string]bool{
		"home":       true,
		"about":      true,
		"contact":    true,
		"skills":     true,
		"projects":   false,
		"experience": false,
		"gallery":    false,
		"unknown":    false,
	}
	for section, want := range tests {
		if got := c.Has(section); got != want {
			t.Errorf("Has(%q) = %v, want %v", section, got, want)
		}
	}
}

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdown()

	got := string(md.Render("Hello **world**"))
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Errorf("Render bold = %q", got)
	}

	got = string(md.Render(`<script>alert(1)</script><a href="https://example.com" onclick="x()">link</a>`))
	if strings.Contains(got, "<script") || strings.Contains(got, "onclick") {
		t.Errorf("Render did not sanitize: %q", got)
	}
	if !strings.Contains(got, `rel="nofollow`) {
		t.Errorf("expected nofollow on links: %q", got)
	}

	if md.Render("") != "" {
		t.Error("empty source should render empty")
	}
}
