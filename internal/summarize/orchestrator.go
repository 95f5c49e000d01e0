package summarize

import (
	"context"

	"github.com/anudeepm/insight-service/internal/pool"
)

// remoteSummarizer is satisfied by *Remote.
type remoteSummarizer interface {
	Summarize(ctx context.Context, text string) RemoteResult
}

// Summarizer picks between the remote service and the frequency fallback.
// Exactly one strategy's output is returned, and the boolean truthfully
// records which. Given non-empty text it cannot fail.
type Summarizer struct {
	remote  remoteSummarizer
	workers *pool.Pool
}

func NewSummarizer(remote remoteSummarizer, workers *pool.Pool) *Summarizer {
	return &Summarizer{remote: remote, workers: workers}
}

// Summarize returns the summary text and whether it was AI generated. The
// remote call is borrowed onto a pool worker so a slow service cannot stall
// other requests on the caller's goroutine scheduler.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, bool) {
	var res RemoteResult
	s.workers.Do(func() {
		res = s.remote.Summarize(ctx, text)
	})
	if res.OK {
		return res.Text, true
	}
	return TopWords(text, DefaultTopWords), false
}
