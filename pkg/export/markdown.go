// Package export writes the handover guide out of the terminal: a single
// markdown document, a static HTML page and machine-readable JSON for
// scripts and agents.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/vanderheijden86/handover/pkg/guide"
)

// WriteMarkdown writes the full guide as one markdown document.
func WriteMarkdown(w io.Writer) error {
	if _, err := io.WriteString(w, guide.GuideMarkdown()); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// SaveMarkdown writes the full guide to path.
func SaveMarkdown(path string) error {
	if err := os.WriteFile(path, []byte(guide.GuideMarkdown()), 0o644); err != nil {
		return fmt.Errorf("saving markdown: %w", err)
	}
	return nil
}
