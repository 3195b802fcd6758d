package domain

import (
	"fmt"
	"strings"
)

// SourceMetadata identifies the document behind a citation.
type SourceMetadata struct {
	// Title is the document title.
	Title string `json:"title"`

	// URL is where the document was retrieved from.
	URL string `json:"url"`
}

// Source is one document the backend consulted while answering.
type Source struct {
	// Metadata carries the title and URL when the backend knows them.
	Metadata SourceMetadata `json:"metadata"`

	// PageContent is a snippet of the document, used as the citation
	// fallback when title or URL is missing.
	PageContent string `json:"pageContent"`
}

// Answer is a search-augmented response from the backend.
type Answer struct {
	// Message is the answer text.
	Message string

	// Sources are the documents consulted, in backend order.
	Sources []Source
}

// Text renders the answer with one citation line per source appended.
//
// Sources with both a title and a URL render as "[i] title - url"; all
// others fall back to "[i] pageContent". A source with neither populated
// renders an empty fallback value. That mirrors the backend-facing
// contract and is deliberately not guarded.
func (a *Answer) Text() string {
	if len(a.Sources) == 0 {
		return a.Message
	}

	var b strings.Builder
	b.WriteString(a.Message)
	b.WriteString("\n\nCitations:\n")
	for i, src := range a.Sources {
		if src.Metadata.Title != "" && src.Metadata.URL != "" {
			fmt.Fprintf(&b, "[%d] %s - %s\n", i+1, src.Metadata.Title, src.Metadata.URL)
		} else {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, src.PageContent)
		}
	}
	return b.String()
}
