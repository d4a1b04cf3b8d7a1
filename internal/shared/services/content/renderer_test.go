package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderHTML(t *testing.T) {
	r := NewRenderer()

	t.Run("markdown renders to html", func(t *testing.T) {
		out, err := r.RenderHTML("# Title\n\nSome **bold** text.", FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("html passes through sanitized", func(t *testing.T) {
		out, err := r.RenderHTML("<p>hello</p>", FormatHTML)
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", out)
	})

	t.Run("empty format defaults to html", func(t *testing.T) {
		out, err := r.RenderHTML("<p>hello</p>", "")
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", out)
	})

	t.Run("script tags are stripped", func(t *testing.T) {
		out, err := r.RenderHTML(`<p>hi</p><script>alert("x")</script>`, FormatHTML)
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "<p>hi</p>")
	})

	t.Run("event handler attributes are stripped", func(t *testing.T) {
		out, err := r.RenderHTML(`<a href="https://example.com" onclick="steal()">link</a>`, FormatHTML)
		require.NoError(t, err)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "example.com")
	})

	t.Run("markdown script injection is stripped", func(t *testing.T) {
		out, err := r.RenderHTML("hello\n\n<script>alert(1)</script>", FormatMarkdown)
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
	})

	t.Run("unknown format errors", func(t *testing.T) {
		_, err := r.RenderHTML("body", "rst")
		assert.Error(t, err)
	})
}

func TestRenderer_Sanitize(t *testing.T) {
	r := NewRenderer()

	out := r.Sanitize(`<pre class="lang-go"><code class="language-go">x</code></pre><iframe src="evil"></iframe>`)
	assert.Contains(t, out, `class="language-go"`)
	assert.NotContains(t, out, "iframe")
}
