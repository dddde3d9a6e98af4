package core

const (
	ParleyName      = "Parley"
	ParleyUserAgent = "Parley-Relay/0.1"
	ParleyVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ReplyKind int

const (
	// ReplyNone means the input produced no reply at all (unrecognized
	// prefix). The zero value of Reply is a no-op.
	ReplyNone ReplyKind = iota
	ReplyText
	ReplyImage
)

// Reply is the single outgoing message shape every command exit path
// collapses into: success, each error kind, and no-op are all explicit
// values rather than caught exceptions.
type Reply struct {
	Kind       ReplyKind
	Text       string
	ImageURL   string
	PreviewURL string
}

func TextReply(text string) Reply {
	return Reply{Kind: ReplyText, Text: text}
}

func ImageReply(contentURL, previewURL string) Reply {
	return Reply{Kind: ReplyImage, ImageURL: contentURL, PreviewURL: previewURL}
}

func (r Reply) IsZero() bool {
	return r.Kind == ReplyNone
}
