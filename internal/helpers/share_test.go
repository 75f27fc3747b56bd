package helpers

import (
	"strings"
	"testing"
)

func TestBuildShareLinksEscapesValues(t *testing.T) {
	links := BuildShareLinks("https://mentorbay.example/answers/abc", "Breaking into fintech & beyond")

	if !strings.Contains(links.Twitter, "https%3A%2F%2Fmentorbay.example%2Fanswers%2Fabc") {
		t.Errorf("permalink was not escaped in twitter link: %s", links.Twitter)
	}
	if strings.Contains(links.Twitter, "fintech & beyond") {
		t.Errorf("title was not escaped: %s", links.Twitter)
	}
	if !strings.HasPrefix(links.LinkedIn, "https://www.linkedin.com/sharing/share-offsite/") {
		t.Errorf("unexpected linkedin share base: %s", links.LinkedIn)
	}
	if !strings.HasPrefix(links.WhatsApp, "https://wa.me/") {
		t.Errorf("unexpected whatsapp share base: %s", links.WhatsApp)
	}
}

func TestBuildEmbedSnippet(t *testing.T) {
	snippet := BuildEmbedSnippet("https://mentorbay.example", "abc-123")

	if !strings.Contains(snippet, `src="https://mentorbay.example/embed/answers/abc-123"`) {
		t.Errorf("embed src is wrong: %s", snippet)
	}
	if !strings.Contains(snippet, "<iframe") || !strings.Contains(snippet, "allowfullscreen") {
		t.Errorf("embed snippet is not an iframe: %s", snippet)
	}
}

func TestIsLinkedinURL(t *testing.T) {
	valid := []string{
		"https://linkedin.com/in/someone",
		"https://www.linkedin.com/in/someone",
	}
	for _, u := range valid {
		if !IsLinkedinURL(u) {
			t.Errorf("expected %q to be accepted", u)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"https://example.com/in/someone",
		"https://linkedin.com.evil.example/in/someone",
	}
	for _, u := range invalid {
		if IsLinkedinURL(u) {
			t.Errorf("expected %q to be rejected", u)
		}
	}
}
