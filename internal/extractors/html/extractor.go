package html

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.FragmentExtractor = (*Extractor)(nil)

// Extractor handles HTML wrapper detection.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Match finds the inner content span of content.
// The nested <html><body><head> arrangement takes priority over the
// plain <html><body> document arrangement.
func (e *Extractor) Match(content []byte) domain.Match {
	tags := scanWrapperTags(content)

	if m, ok := tags.nested(); ok {
		return m
	}
	if m, ok := tags.document(); ok {
		return m
	}
	return domain.Match{}
}

// Extract returns the content between the wrapper tags of a source file.
func (e *Extractor) Extract(source string, content []byte) (domain.Fragment, error) {
	m := e.Match(content)
	if !m.Found {
		return domain.Fragment{}, fmt.Errorf("%w: no <html><body> wrapper tags", domain.ErrExtractionFailed)
	}
	return domain.Fragment{
		Source:  source,
		Pattern: m.Pattern,
		Content: string(content[m.Start:m.End]),
	}, nil
}

// tagSpan is the byte range a single tag occupies in the source. Index is
// the tag's position among tokens that are not whitespace-only text.
type tagSpan struct {
	start int
	end   int
	index int
}

// wrapperTags holds the first opening and last closing tag of each
// structural element.
type wrapperTags struct {
	open  map[atom.Atom]tagSpan
	close map[atom.Atom]tagSpan
}

func (w wrapperTags) spans(a atom.Atom) (tagSpan, tagSpan, bool) {
	o, okOpen := w.open[a]
	c, okClose := w.close[a]
	return o, c, okOpen && okClose
}

// nested matches <html><body><head> ... </head></body></html> where each
// triple is adjacent apart from whitespace. Anything else between the tags
// means the head is part of the body content, so document applies instead.
func (w wrapperTags) nested() (domain.Match, bool) {
	htmlOpen, htmlClose, ok := w.spans(atom.Html)
	if !ok {
		return domain.Match{}, false
	}
	bodyOpen, bodyClose, ok := w.spans(atom.Body)
	if !ok {
		return domain.Match{}, false
	}
	headOpen, headClose, ok := w.spans(atom.Head)
	if !ok {
		return domain.Match{}, false
	}

	if bodyOpen.index != htmlOpen.index+1 || headOpen.index != bodyOpen.index+1 {
		return domain.Match{}, false
	}
	if bodyClose.index != headClose.index+1 || htmlClose.index != bodyClose.index+1 {
		return domain.Match{}, false
	}
	if headOpen.end > headClose.start {
		return domain.Match{}, false
	}

	return domain.Match{
		Found:   true,
		Pattern: domain.PatternNested,
		Start:   headOpen.end,
		End:     headClose.start,
	}, true
}

// document matches <html> ... <body> ... </body> ... </html>.
// Anything outside the body, such as a head element, is dropped.
func (w wrapperTags) document() (domain.Match, bool) {
	htmlOpen, htmlClose, ok := w.spans(atom.Html)
	if !ok {
		return domain.Match{}, false
	}
	bodyOpen, bodyClose, ok := w.spans(atom.Body)
	if !ok {
		return domain.Match{}, false
	}

	if htmlOpen.start >= bodyOpen.start || bodyClose.start >= htmlClose.start {
		return domain.Match{}, false
	}
	if bodyOpen.end > bodyClose.start {
		return domain.Match{}, false
	}

	return domain.Match{
		Found:   true,
		Pattern: domain.PatternDocument,
		Start:   bodyOpen.end,
		End:     bodyClose.start,
	}, true
}

// scanWrapperTags tokenizes content and records wrapper tag positions.
// Offsets are tracked by summing the raw length of every token.
func scanWrapperTags(content []byte) wrapperTags {
	tags := wrapperTags{
		open:  make(map[atom.Atom]tagSpan, 3),
		close: make(map[atom.Atom]tagSpan, 3),
	}

	z := html.NewTokenizer(bytes.NewReader(content))
	offset := 0
	index := -1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return tags
		}

		// Raw must be read before TagName, which may reuse the buffer.
		raw := z.Raw()
		if tt == html.TextToken && len(bytes.TrimSpace(raw)) == 0 {
			offset += len(raw)
			continue
		}
		index++
		span := tagSpan{start: offset, end: offset + len(raw), index: index}
		offset = span.end

		if tt != html.StartTagToken && tt != html.EndTagToken {
			continue
		}

		name, _ := z.TagName()
		a := atom.Lookup(name)
		if !isWrapper(a) {
			continue
		}

		if tt == html.StartTagToken {
			if _, seen := tags.open[a]; !seen {
				tags.open[a] = span
			}
		} else {
			tags.close[a] = span
		}
	}
}

func isWrapper(a atom.Atom) bool {
	return a == atom.Html || a == atom.Body || a == atom.Head
}
