package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

// renderResult prints a summary of a completed merge.
func renderResult(w io.Writer, s *Styles, r *domain.MergeResult) {
	from := ""
	if r.Kind == domain.SourceDirectory && r.Directory != "" {
		from = fmt.Sprintf(" %s %s", s.Muted.Render("from"), s.Path.Render(r.Directory))
	}
	fmt.Fprintf(w, "%s%s %s %s\n",
		s.Success.Render(fmt.Sprintf("Merged %s", plural(len(r.Sources), "file"))),
		from,
		s.Muted.Render("into"),
		s.Path.Render(r.Output))

	for _, src := range r.Sources {
		fmt.Fprintf(w, "  %s\n", s.Muted.Render(src))
	}
	fmt.Fprintf(w, "%s\n", s.Muted.Render(fmt.Sprintf("%d bytes written", r.BytesWritten)))

	if !r.Cleaned {
		return
	}
	if len(r.Deleted) > 0 {
		fmt.Fprintf(w, "Deleted %s\n", plural(len(r.Deleted), "source file"))
	}
	for _, p := range r.Skipped {
		fmt.Fprintf(w, "Kept %s %s\n", s.Path.Render(p), s.Muted.Render("(merge output)"))
	}
	for _, f := range r.CleanFailures {
		fmt.Fprintf(w, "%s could not delete %s: %v\n", s.Warning.Render("Warning:"), f.Path, f.Err)
	}
}

// renderHistory prints merge records one per line, newest first.
func renderHistory(w io.Writer, s *Styles, records []domain.MergeRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No merges recorded.")
		return
	}

	fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("Recent merges (%d)", len(records))))
	fmt.Fprintln(w)
	for i := range records {
		r := &records[i]
		flags := ""
		if r.Cleaned {
			flags = fmt.Sprintf(" cleaned %d", r.DeletedCount)
		}
		fmt.Fprintf(w, "%s  %s  %s %s\n",
			s.Muted.Render(r.ID),
			r.StartedAt.Local().Format(time.DateTime),
			s.Path.Render(r.Output),
			s.Muted.Render(fmt.Sprintf("(%s, %d bytes%s)", plural(r.SourceCount(), "file"), r.BytesWritten, flags)))
	}
}

// renderRecord prints every field of a single merge record.
func renderRecord(w io.Writer, s *Styles, r *domain.MergeRecord) {
	fmt.Fprintln(w, s.Title.Render("Merge "+r.ID))
	fmt.Fprintln(w, strings.Repeat("=", len("Merge ")+len(r.ID)))
	fmt.Fprintf(w, "%s %s\n", s.Key.Render("Output:"), s.Path.Render(r.Output))
	fmt.Fprintf(w, "%s %s\n", s.Key.Render("Started:"), r.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "%s %s\n", s.Key.Render("Duration:"), r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Fprintf(w, "%s %d\n", s.Key.Render("Bytes:"), r.BytesWritten)
	if r.Cleaned {
		fmt.Fprintf(w, "%s %d deleted\n", s.Key.Render("Cleaned:"), r.DeletedCount)
	}
	fmt.Fprintf(w, "%s\n", s.Key.Render("Sources:"))
	for _, src := range r.Sources {
		fmt.Fprintf(w, "  %s\n", src)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
