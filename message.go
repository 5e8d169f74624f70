package mdminer

// Action identifies an operation requested by the UI layer.
type Action string

// Supported actions.
const (
	ActionGetArticleInfo    Action = "getArticleInfo"
	ActionConvertToMarkdown Action = "convertToMarkdown"
)

// Request is the message consumed from the surrounding UI/transport layer.
// Site defaults to DefaultSite when empty. IncludeImages selects bundled
// output for ActionConvertToMarkdown.
type Request struct {
	Action        Action `json:"action"`
	Site          Site   `json:"site"`
	IncludeImages bool   `json:"includeImages"`
	Page          *Page  `json:"-"`
}

// Response is the normalized reply for a Request. Exactly one of
// ArticleInfo or Message is set on success; Error is set on failure.
// No unnormalized error ever reaches the transport boundary.
type Response struct {
	Success     bool             `json:"success"`
	ArticleInfo *ArticleMetadata `json:"articleBasicInfo,omitempty"`
	Message     string           `json:"message,omitempty"`
	ContentHash string           `json:"contentHash,omitempty"`
	Error       string           `json:"error,omitempty"`
}
