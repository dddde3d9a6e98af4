package content

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fernvale/parley/internal/core"
)

var (
	videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|shorts/|embed/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

	// The watch page embeds caption metadata as JSON; the first track's
	// baseUrl points at the timedtext document.
	captionTrackPattern = regexp.MustCompile(`"captionTracks":\[\{"baseUrl":"([^"]+)"`)
)

// VideoID extracts a YouTube video identifier from text containing a
// watch, shorts, embed or short-link URL. Returns "" when none is found.
func VideoID(text string) string {
	m := videoIDPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

type YouTube struct {
	client *http.Client
}

func NewYouTube() *YouTube {
	return &YouTube{
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// TranscriptChunks retrieves the caption transcript for a video and
// returns it split into token-bounded chunks. A video without captions
// is a content error.
func (y *YouTube) TranscriptChunks(ctx context.Context, videoID string) ([]string, error) {
	page, err := y.fetch(ctx, "https://www.youtube.com/watch?v="+videoID)
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "fetch video page", err)
	}

	m := captionTrackPattern.FindSubmatch(page)
	if m == nil {
		return nil, core.NewCapabilityError(core.ErrKindContent,
			fmt.Sprintf("video %s has no caption track", videoID))
	}
	// baseUrl sits inside embedded JSON with escaped ampersands.
	trackURL := strings.ReplaceAll(string(m[1]), `\u0026`, "&")

	raw, err := y.fetch(ctx, trackURL)
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "fetch transcript", err)
	}

	transcript, err := parseTimedText(raw)
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindContent, "parse transcript", err)
	}

	return ChunkText(transcript, chunkTokenBudget), nil
}

func (y *YouTube) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", core.ParleyUserAgent)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 4*maxPageSize))
}

// parseTimedText flattens the timedtext XML caption document into one
// plain-text transcript.
func parseTimedText(raw []byte) (string, error) {
	var doc struct {
		Texts []struct {
			Value string `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, t := range doc.Texts {
		line := strings.TrimSpace(html.UnescapeString(t.Value))
		if line == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(line)
	}
	return sb.String(), nil
}
