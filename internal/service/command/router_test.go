package command

import (
	"context"
	"testing"

	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/internal/service/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	data map[string][]byte
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (s *mapStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return v, nil
}

func (s *mapStore) Set(ctx context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *mapStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// fakeGateway scripts capability outcomes and records what it was given.
type fakeGateway struct {
	chatReply    string
	chatErr      error
	chatHistory  []core.Message
	chatCalls    int
	imageURL     string
	imageErr     error
	summary      string
	summarizeErr error
	chunksSeen   []string
}

func (g *fakeGateway) ChatCompletion(ctx context.Context, history []core.Message) (string, error) {
	g.chatCalls++
	g.chatHistory = history
	if g.chatErr != nil {
		return "", g.chatErr
	}
	return g.chatReply, nil
}

func (g *fakeGateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if g.imageErr != nil {
		return "", g.imageErr
	}
	return g.imageURL, nil
}

func (g *fakeGateway) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return "", nil
}

func (g *fakeGateway) Summarize(ctx context.Context, chunks []string) (string, error) {
	g.chunksSeen = chunks
	if g.summarizeErr != nil {
		return "", g.summarizeErr
	}
	if len(chunks) == 0 {
		return "", core.NewCapabilityError(core.ErrKindContent, "no text to summarize")
	}
	return g.summary, nil
}

type fakeArticles struct {
	chunks []string
	err    error
	calls  int
}

func (f *fakeArticles) FetchChunks(ctx context.Context, url string) ([]string, error) {
	f.calls++
	return f.chunks, f.err
}

type fakeTranscripts struct {
	chunks []string
	err    error
	calls  int
}

func (f *fakeTranscripts) TranscriptChunks(ctx context.Context, videoID string) ([]string, error) {
	f.calls++
	return f.chunks, f.err
}

type fixture struct {
	router      *Router
	mem         *memory.Memory
	gw          *fakeGateway
	articles    *fakeArticles
	transcripts *fakeTranscripts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := memory.New(newMapStore(), "default system", 2)
	gw := &fakeGateway{chatReply: "hello!", imageURL: "https://img.example/cat.png", summary: "a summary"}
	articles := &fakeArticles{chunks: []string{"article text"}}
	transcripts := &fakeTranscripts{chunks: []string{"transcript text"}}

	cmds := NewCommands(mem, gw, articles, transcripts)
	return &fixture{
		router:      New(cmds, mem, gw),
		mem:         mem,
		gw:          gw,
		articles:    articles,
		transcripts: transcripts,
	}
}

func historyLen(t *testing.T, mem *memory.Memory, userID string) int {
	t.Helper()
	msgs, err := mem.Get(context.Background(), userID)
	require.NoError(t, err)
	return len(msgs) - 1 // exclude the system entry
}

func TestUnknownInputProducesNoReplyAndNoState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		reply := f.router.Route(ctx, "u", "just chatting without a command")
		assert.True(t, reply.IsZero())
	}
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
	assert.Equal(t, 0, f.gw.chatCalls)
}

func TestPrefixPriorityIsDeterministic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/clear extra text")
	assert.Equal(t, core.ReplyText, reply.Kind)
	assert.Equal(t, msgHistoryCleared, reply.Text)
	assert.Equal(t, 0, f.gw.chatCalls)
}

func TestHelpDoesNotTouchMemory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/help")
	assert.Equal(t, core.ReplyText, reply.Kind)
	assert.Contains(t, reply.Text, "/system")
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}

func TestSystemThenChatThreadsSystemMessage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/system 你是一個翻譯員")
	assert.Equal(t, msgSystemUpdated, reply.Text)
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))

	reply = f.router.Route(ctx, "u", "/chat 你好")
	assert.Equal(t, "hello!", reply.Text)

	// The completion saw the system message first, then the user turn.
	require.NotEmpty(t, f.gw.chatHistory)
	assert.Equal(t, core.RoleSystem, f.gw.chatHistory[0].Role)
	assert.Equal(t, "你是一個翻譯員", f.gw.chatHistory[0].Content)
	assert.Equal(t, "你好", f.gw.chatHistory[len(f.gw.chatHistory)-1].Content)

	// Exactly one user and one assistant entry were appended.
	msgs, err := f.mem.Get(ctx, "u")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, core.RoleUser, msgs[1].Role)
	assert.Equal(t, core.RoleAssistant, msgs[2].Role)
	assert.Equal(t, "hello!", msgs[2].Content)
}

func TestChatEmptyPromptAsksForOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/chat")
	assert.Equal(t, msgPromptRequired, reply.Text)
	assert.Equal(t, 0, f.gw.chatCalls)
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}

func TestImageSuccessAppendsAssistantURL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/image a red cat")
	assert.Equal(t, core.ReplyImage, reply.Kind)
	assert.Equal(t, "https://img.example/cat.png", reply.ImageURL)
	assert.Equal(t, reply.ImageURL, reply.PreviewURL)

	msgs, err := f.mem.Get(ctx, "u")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "a red cat", msgs[1].Content)
	assert.Equal(t, "https://img.example/cat.png", msgs[2].Content)
}

func TestImageAuthFailureClearsHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.gw.imageErr = core.NewCapabilityError(core.ErrKindAuth, "Incorrect API key provided")

	reply := f.router.Route(ctx, "u", "/image a red cat")
	assert.Equal(t, core.ReplyText, reply.Kind)
	assert.Equal(t, msgAuthError, reply.Text)

	// No orphaned user turn survives the failure.
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}

func TestChatURLSummarizesWebsite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/chat https://example.com/article")
	assert.Equal(t, "a summary", reply.Text)
	assert.Equal(t, 1, f.articles.calls)
	assert.Equal(t, 0, f.transcripts.calls)
	assert.Equal(t, []string{"article text"}, f.gw.chunksSeen)

	msgs, err := f.mem.Get(ctx, "u")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "a summary", msgs[2].Content)
}

func TestChatVideoURLSummarizesTranscript(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Route(ctx, "u", "/chat https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, "a summary", reply.Text)
	assert.Equal(t, 1, f.transcripts.calls)
	assert.Equal(t, 0, f.articles.calls)
}

func TestChatEmptyExtractionClearsHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.articles.chunks = nil

	reply := f.router.Route(ctx, "u", "/chat https://example.com/article")
	assert.Equal(t, msgContentError, reply.Text)
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}

func TestChatOverloadedFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.gw.chatErr = core.NewCapabilityError(core.ErrKindOverloaded, "That model is currently overloaded with other requests.")

	reply := f.router.Route(ctx, "u", "/chat hello")
	assert.Equal(t, msgOverloaded, reply.Text)
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}

func TestConverseSkipsURLDetection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply := f.router.Converse(ctx, "u", "check https://example.com/article")
	assert.Equal(t, "hello!", reply.Text)
	assert.Equal(t, 0, f.articles.calls)
	assert.Equal(t, 1, f.gw.chatCalls)
	assert.Equal(t, 2, historyLen(t, f.mem, "u"))
}

func TestFailureReplyClearsHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.mem.Append(ctx, "u", core.RoleUser, "stale"))

	reply := f.router.FailureReply(ctx, "u", core.NewCapabilityError(core.ErrKindGeneric, "transcription exploded"))
	assert.Equal(t, "transcription exploded", reply.Text)
	assert.Equal(t, 0, historyLen(t, f.mem, "u"))
}
