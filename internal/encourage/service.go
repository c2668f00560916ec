package encourage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/abhisek/kotoba/internal/llm"
)

// pendingSize bounds the number of queued async requests.
const pendingSize = 8

// Service produces encouragement lines, synchronously or on a single
// background worker.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger

	mu      sync.Mutex
	closed  bool
	pending chan job
	done    chan struct{}
}

type job struct {
	ctx context.Context
	req Request
	cb  func(string)
}

// NewService creates an encouragement service. If provider is nil, only
// the canned fallback lines are produced.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		pending:  make(chan job, pendingSize),
		done:     make(chan struct{}),
	}
	go s.processLoop()
	return s
}

// Encourage returns a line for req. It never fails: any error yields
// FallbackFor(req.Correct).
func (s *Service) Encourage(ctx context.Context, req Request) string {
	if s.provider == nil {
		return FallbackFor(req.Correct)
	}
	msg, err := generate(ctx, s.provider, s.cfg, req)
	if err != nil {
		s.logger.Debug("encouragement fell back", "error", err)
		return FallbackFor(req.Correct)
	}
	return msg
}

// Request queues req for the background worker, which calls cb with the
// line once it is ready. It returns false when the queue is full or the
// service is closed; cb is not called in that case.
func (s *Service) Request(ctx context.Context, req Request, cb func(string)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.pending <- job{ctx: ctx, req: req, cb: cb}:
		return true
	default:
		return false
	}
}

func (s *Service) processLoop() {
	defer close(s.done)
	for j := range s.pending {
		msg := s.Encourage(j.ctx, j.req)
		if j.cb != nil {
			j.cb(msg)
		}
	}
}

// Close stops accepting requests and waits for queued ones to finish.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.pending)
	s.mu.Unlock()
	<-s.done
}
