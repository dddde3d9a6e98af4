// Package content locates URLs in free text and extracts readable text
// from web pages and video transcripts for summarization.
package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/inbucket/html2text"

	"github.com/fernvale/parley/internal/core"
)

const (
	maxPageSize         = 1 << 20 // 1MB limit
	defaultFetchTimeout = 15 * time.Second

	// Token budget per summarization chunk, well inside the context
	// window of the summarize model.
	chunkTokenBudget = 1800
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// FindURL returns the first URL in the text, or "" when there is none.
func FindURL(text string) string {
	return urlPattern.FindString(text)
}

type Website struct {
	client *http.Client
}

func NewWebsite() *Website {
	return &Website{
		client: &http.Client{
			Timeout: defaultFetchTimeout,
		},
	}
}

// FetchChunks downloads a page, reduces it to plain text and returns the
// text split into token-bounded chunks. An unreachable page is a content
// error; a page that yields no text returns zero chunks.
func (w *Website) FetchChunks(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "create page request", err)
	}
	// Mimic a browser to avoid some basic blocking
	req.Header.Set("User-Agent", core.ParleyUserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "fetch page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, core.NewCapabilityError(core.ErrKindContent,
			fmt.Sprintf("fetch page: HTTP %d %s", resp.StatusCode, url))
	}

	limited := io.LimitReader(resp.Body, maxPageSize)
	text, err := html2text.FromReader(limited, html2text.Options{
		OmitLinks: true,
	})
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "extract page text", err)
	}

	return ChunkText(text, chunkTokenBudget), nil
}
