package providers

import "strings"

// CompletionResponse is the normalised reply of every model client.
// Continuation is set when Response picks up exactly where the prompt ended
// (raw completion) rather than answering it as a chat message.
type CompletionResponse struct {
	ID           string `json:"id"`
	Provider     string `json:"provider,omitempty"`
	Model        string `json:"model"`
	Response     string `json:"response"`
	Continuation bool   `json:"continuation,omitempty"`
	Usage        Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Blank reports whether the model produced no visible text.
func (r *CompletionResponse) Blank() bool {
	return r == nil || strings.TrimSpace(r.Response) == ""
}
