package httphandler

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderContent converts generated text to sanitized HTML. Provider output is
// often markdown; fallback output is plain lines, which hard wraps preserve.
// Returns empty string for empty input.
func renderContent(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}
	return htmlSanitizer.Sanitize(buf.String())
}
