package analyze

import (
	"context"
	"sync"

	"github.com/fwojciec/kamar"
)

var _ kamar.Analyzer = (*Latest)(nil)

// Latest wraps an Analyzer so that only the most recent call wins. Starting
// a new analysis cancels the one in flight, and the superseded call returns
// ECANCELED even if its result arrived.
type Latest struct {
	next kamar.Analyzer

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewLatest creates a new Latest.
func NewLatest(next kamar.Analyzer) *Latest {
	return &Latest{next: next}
}

// Analyze supersedes any in-flight call and delegates to the wrapped analyzer.
func (l *Latest) Analyze(ctx context.Context, keyword string) (*kamar.AnalysisResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	result, err := l.next.Analyze(ctx, keyword)

	l.mu.Lock()
	current := l.seq == seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()

	if !current {
		return nil, kamar.Errorf(kamar.ECANCELED, "analysis of %q superseded", keyword)
	}
	return result, err
}
