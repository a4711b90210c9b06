package render

import (
	"fmt"

	"github.com/gaurav-prasanna/careerladder/core"
)

// Formats lists the accepted --format values.
var Formats = []string{"json", "ts", "md", "pdf"}

// ForFormat returns the renderer for a format name.
func ForFormat(format string) (core.Renderer, error) {
	switch format {
	case "json":
		return NewJSONRenderer(), nil
	case "ts", "typescript":
		return NewTypeScriptRenderer(), nil
	case "md", "markdown":
		return NewMarkdownRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}
