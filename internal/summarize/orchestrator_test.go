package summarize

import (
	"context"
	"testing"

	"github.com/anudeepm/insight-service/internal/pool"
	"go.uber.org/zap"
)

type stubRemote struct {
	result RemoteResult
	calls  int
}

func (s *stubRemote) Summarize(ctx context.Context, text string) RemoteResult {
	s.calls++
	return s.result
}

func newTestPool(t *testing.T) *pool.Pool {
	t.Helper()
	p := pool.New(1, zap.NewNop())
	t.Cleanup(p.Close)
	return p
}

func TestSummarize_RemoteSuccess(t *testing.T) {
	remote := &stubRemote{result: RemoteResult{Text: "An AI summary.", OK: true}}
	s := NewSummarizer(remote, newTestPool(t))

	summary, ai := s.Summarize(context.Background(), "document text")
	if !ai {
		t.Error("Summarize() ai = false, want true")
	}
	if summary != "An AI summary." {
		t.Errorf("Summarize() = %q, want the remote text verbatim", summary)
	}
	if remote.calls != 1 {
		t.Errorf("remote called %d times, want 1", remote.calls)
	}
}

func TestSummarize_RemoteFailureFallsBack(t *testing.T) {
	text := "Experienced software engineer with Python and cloud skills"
	remote := &stubRemote{result: RemoteResult{}}
	s := NewSummarizer(remote, newTestPool(t))

	summary, ai := s.Summarize(context.Background(), text)
	if ai {
		t.Error("Summarize() ai = true, want false")
	}
	if summary == "" {
		t.Fatal("Summarize() returned an empty summary")
	}
	if want := TopWords(text, DefaultTopWords); summary != want {
		t.Errorf("Summarize() = %q, want fallback output %q", summary, want)
	}
}

// A failed remote attempt and an unconfigured adapter must produce the same
// summary for the same input.
func TestSummarize_FallbackDeterminism(t *testing.T) {
	text := "distributed systems and distributed storage with go"

	failed := NewSummarizer(&stubRemote{result: RemoteResult{}}, newTestPool(t))
	unconfigured := NewSummarizer(NewRemote("", "", "sarvam-m", zap.NewNop()), newTestPool(t))

	fromFailed, ai1 := failed.Summarize(context.Background(), text)
	fromUnconfigured, ai2 := unconfigured.Summarize(context.Background(), text)

	if ai1 || ai2 {
		t.Error("fallback paths must report ai = false")
	}
	if fromFailed != fromUnconfigured {
		t.Errorf("fallback summaries differ: %q vs %q", fromFailed, fromUnconfigured)
	}
}
