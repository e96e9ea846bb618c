package driven

import "github.com/custodia-labs/htmlmerge/internal/core/domain"

// FragmentExtractor locates the structural wrapper tags of an HTML document
// and returns the content between them.
type FragmentExtractor interface {
	// Match reports where the inner content of content lies.
	Match(content []byte) domain.Match

	// Extract returns the fragment of a source file.
	// Returns an error wrapping domain.ErrExtractionFailed if no
	// recognised wrapper pattern is present.
	Extract(source string, content []byte) (domain.Fragment, error)
}
