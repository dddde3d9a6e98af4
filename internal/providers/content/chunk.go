package content

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load cl100k_base encoding: " + err.Error())
		}
		tk = enc
	})
	return tk
}

func countTokens(text string) int {
	return len(getTokenizer().Encode(text, nil, nil))
}

// ChunkText splits extracted article or transcript text into ordered
// chunks of at most maxTokens tokens. Paragraph boundaries are preferred;
// a single paragraph above the budget is sliced on raw token positions.
func ChunkText(text string, maxTokens int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	paragraphs := splitParagraphs(text)

	var chunks []string
	var current strings.Builder
	currentTokens := 0

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			currentTokens = 0
		}
	}

	for _, para := range paragraphs {
		paraTokens := countTokens(para)

		if paraTokens > maxTokens {
			flush()
			chunks = append(chunks, sliceByTokens(para, maxTokens)...)
			continue
		}

		if currentTokens+paraTokens > maxTokens {
			flush()
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(para)
		currentTokens += paraTokens
	}
	flush()

	return chunks
}

// sliceByTokens cuts an oversized block on exact token positions.
func sliceByTokens(text string, maxTokens int) []string {
	enc := getTokenizer()
	tokens := enc.Encode(text, nil, nil)

	var out []string
	for i := 0; i < len(tokens); i += maxTokens {
		end := i + maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		piece := strings.TrimSpace(enc.Decode(tokens[i:end]))
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
