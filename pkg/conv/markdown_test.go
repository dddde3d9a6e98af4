package conv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "bold and italic survive",
			input:    "**bold** and *italic*",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "code block survives",
			input:    "```\nfmt.Println(\"hi\")\n```",
			contains: []string{"<pre>", "fmt.Println"},
		},
		{
			name:     "headings are stripped to text",
			input:    "# Title",
			contains: []string{"Title"},
			excludes: []string{"<h1>"},
		},
		{
			name:     "links keep href",
			input:    "[site](https://example.com)",
			contains: []string{`href="https://example.com"`},
		},
		{
			name:     "script tags are removed",
			input:    "hello <script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(got, want), "output %q should contain %q", got, want)
			}
			for _, bad := range tt.excludes {
				assert.False(t, strings.Contains(got, bad), "output %q should not contain %q", got, bad)
			}
		})
	}
}
