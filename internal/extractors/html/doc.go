// Package html provides a FragmentExtractor for HTML documents.
// It locates the structural wrapper tags (html, body and optionally head)
// with a tokenizer, so tag names match case-insensitively, attributes are
// tolerated, and tags inside comments or script/style text are ignored.
package html
