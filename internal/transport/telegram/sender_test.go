package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Fatalf("got %v", chunks)
		}
	})

	t.Run("long text is split under the limit", func(t *testing.T) {
		text := strings.Repeat("line of output\n", 100)
		chunks := splitHTML(text, 200)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 200 {
				t.Errorf("chunk %d exceeds limit: %d bytes", i, len(c))
			}
		}
	})

	t.Run("prefers newline break points", func(t *testing.T) {
		text := strings.Repeat("a", 150) + "\n" + strings.Repeat("b", 150)
		chunks := splitHTML(text, 200)
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(chunks))
		}
		if strings.Contains(chunks[0], "b") {
			t.Errorf("first chunk should break at the newline: %q", chunks[0])
		}
	})

	t.Run("content is preserved", func(t *testing.T) {
		text := strings.Repeat("word ", 500)
		joined := strings.Join(splitHTML(text, 300), "")
		if strings.ReplaceAll(joined, " ", "") != strings.ReplaceAll(text, " ", "") {
			t.Error("splitting dropped content")
		}
	})
}
