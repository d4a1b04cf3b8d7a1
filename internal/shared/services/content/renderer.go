// Package content renders and sanitizes article bodies. Articles are stored
// as HTML; authors may submit either HTML or markdown, and everything that
// reaches storage has passed the sanitizer.
package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type Renderer interface {
	// RenderHTML converts the submitted body to sanitized HTML.
	// format is FormatHTML (sanitize only) or FormatMarkdown (render, then sanitize).
	RenderHTML(body, format string) (string, error)
	Sanitize(htmlContent string) string
}

type rendererImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &rendererImpl{
		md:     md,
		policy: policy,
	}
}

func (r *rendererImpl) RenderHTML(body, format string) (string, error) {
	switch format {
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(body), &buf); err != nil {
			return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
		}
		return r.policy.Sanitize(buf.String()), nil
	case FormatHTML, "":
		return r.policy.Sanitize(body), nil
	default:
		return "", fmt.Errorf("unsupported content format: %s", format)
	}
}

func (r *rendererImpl) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}
