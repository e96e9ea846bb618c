package domain

import "strings"

// WrapperPattern names a recognised arrangement of structural wrapper tags.
type WrapperPattern string

const (
	// PatternNone means no recognised wrapper was found.
	PatternNone WrapperPattern = ""

	// PatternNested is <html><body><head> ... </head></body></html> with each
	// triple adjacent apart from whitespace.
	PatternNested WrapperPattern = "html>body>head"

	// PatternDocument is <html> ... <body> ... </body> ... </html>.
	PatternDocument WrapperPattern = "html>body"
)

// Match is the result of looking for wrapper tags in a document.
// Start and End delimit the inner content as byte offsets; they are only
// meaningful when Found is true.
type Match struct {
	Found   bool
	Pattern WrapperPattern
	Start   int
	End     int
}

// Fragment is the inner content extracted from one source file.
type Fragment struct {
	// Source is the path the fragment was read from.
	Source string

	// Pattern is the wrapper arrangement the content was found in.
	Pattern WrapperPattern

	// Content is the text strictly between the wrapper tags.
	Content string
}

// Wrapper tags placed around the merged output.
const (
	DocumentOpen  = "<html><body>"
	DocumentClose = "</body></html>"
)

// MergedDocument is the ordered fragments of a merge, wrapped once.
type MergedDocument struct {
	Fragments []Fragment
	Separator string
}

// Render returns the full output file content.
func (d MergedDocument) Render() []byte {
	var b strings.Builder
	b.WriteString(DocumentOpen)
	for i, f := range d.Fragments {
		if i > 0 {
			b.WriteString(d.Separator)
		}
		b.WriteString(f.Content)
	}
	b.WriteString(DocumentClose)
	return []byte(b.String())
}
