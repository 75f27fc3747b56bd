package helpers

import (
	"fmt"
	"net/url"
)

// ShareLinks holds outbound share-intent URLs for an answer permalink.
// These are one-way links; no response handling happens on our side.
type ShareLinks struct {
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
	WhatsApp string `json:"whatsapp"`
}

func BuildShareLinks(permalink, title string) ShareLinks {
	escapedURL := url.QueryEscape(permalink)
	escapedTitle := url.QueryEscape(title)

	return ShareLinks{
		Twitter:  fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", escapedURL, escapedTitle),
		LinkedIn: fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", escapedURL),
		Facebook: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", escapedURL),
		WhatsApp: fmt.Sprintf("https://wa.me/?text=%s%%20%s", escapedTitle, escapedURL),
	}
}

// BuildEmbedSnippet returns an iframe snippet for embedding an answer player.
func BuildEmbedSnippet(frontendURL string, answerID string) string {
	src := fmt.Sprintf("%s/embed/answers/%s", frontendURL, url.PathEscape(answerID))
	return fmt.Sprintf(
		`<iframe src="%s" width="560" height="315" frameborder="0" allowfullscreen></iframe>`,
		src,
	)
}
