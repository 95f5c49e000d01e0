package summarize

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

const (
	systemPrompt = "You are an expert document analyzer. Provide a concise, professional summary " +
		"of the document content in 2-3 sentences, focusing on key qualifications, experience, " +
		"and skills if it's a resume."

	// Hard truncation of the document sent to the service; no chunking.
	maxPromptChars = 3000

	maxSummaryTokens   = 200
	summaryTemperature = 0.3
)

// RemoteResult is the outcome of one remote summarization attempt. OK is
// false both when no credential is configured and when the call fails in any
// way; callers treat every non-success identically.
type RemoteResult struct {
	Text string
	OK   bool
}

// Remote obtains natural-language summaries from a chat-completion service.
// It never propagates an error: every failure mode collapses into an
// unavailable result.
type Remote struct {
	client     openai.Client
	model      string
	configured bool
	log        *zap.Logger
}

// NewRemote builds the adapter. An empty apiKey yields an unconfigured
// adapter whose Summarize always reports unavailable.
func NewRemote(apiKey, baseURL, model string, log *zap.Logger) *Remote {
	r := &Remote{model: model, log: log}
	if strings.TrimSpace(apiKey) == "" {
		log.Info("no summarizer credential configured, frequency fallback will be used")
		return r
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}
	r.client = openai.NewClient(opts...)
	r.configured = true
	return r
}

// Summarize performs a single blocking round-trip to the service.
func (r *Remote) Summarize(ctx context.Context, text string) RemoteResult {
	if !r.configured {
		return RemoteResult{}
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Please provide a concise summary of this document:\n\n" + truncate(text, maxPromptChars)),
		},
		MaxTokens:   openai.Int(maxSummaryTokens),
		Temperature: openai.Float(summaryTemperature),
	})
	if err != nil {
		r.log.Warn("remote summarizer call failed", zap.Error(err))
		return RemoteResult{}
	}
	if len(resp.Choices) == 0 {
		r.log.Warn("remote summarizer returned no choices")
		return RemoteResult{}
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		r.log.Warn("remote summarizer returned an empty summary")
		return RemoteResult{}
	}
	return RemoteResult{Text: summary, OK: true}
}

func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
