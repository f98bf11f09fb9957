// README: Conversation service: turn orchestration and the async search workers.
package conversation

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"flyless/internal/ai"
	"flyless/internal/modules/flights"
	"flyless/internal/types"
)

// Searcher runs a validated search to completion. Implemented by
// flights.Service.
type Searcher interface {
	SearchFlights(ctx context.Context, in flights.SearchInput) (*flights.AggregatedResult, error)
}

// Service drives the per-conversation slot-filling machine: merge what the
// extractor produced, validate, and when the criteria are complete hand the
// search to a worker so a slow provider never stalls other conversations.
type Service struct {
	sessions  *Manager
	extractor ai.Extractor
	searcher  Searcher
	workers   int
	jobs      chan searchJob

	now func() time.Time
}

type searchJob struct {
	session *Session
	input   flights.SearchInput
}

func NewService(sessions *Manager, extractor ai.Extractor, searcher Searcher, workers int) *Service {
	if workers <= 0 {
		workers = 4
	}
	return &Service{
		sessions:  sessions,
		extractor: extractor,
		searcher:  searcher,
		workers:   workers,
		jobs:      make(chan searchJob, 64),
		now:       time.Now,
	}
}

// HandleMessage processes one user turn and returns the immediate reply.
// Replies produced after the turn (search results) land in the session outbox.
func (s *Service) HandleMessage(ctx context.Context, id types.ID, text string) (string, error) {
	sess := s.sessions.GetOrCreate(id)
	text = strings.TrimSpace(text)

	switch strings.ToLower(text) {
	case "/start":
		s.resetSession(sess)
		return GreetingMessage(), nil
	case "/cancel":
		s.resetSession(sess)
		return CancelledMessage(), nil
	}

	details, err := s.extractor.ExtractTripDetails(ctx, text, s.now())
	if err != nil || details == nil {
		// Extraction failed: re-prompt, criteria untouched.
		if err != nil {
			log.Printf("conversation %s: extraction failed: %v", id, err)
		}
		return ExtractionFailedMessage(), nil
	}

	sess.mu.Lock()
	if sess.state == StateSearching {
		sess.mu.Unlock()
		return SearchInProgressMessage(), nil
	}

	sess.criteria.Merge(details)
	if verr := Validate(sess.criteria, s.now()); verr != nil {
		sess.state = StateCollecting
		sess.mu.Unlock()
		return verr.Message, nil
	}

	// Validation succeeded: the criteria are ready, dispatch immediately.
	sess.state = StateSearching
	input := sess.criteria.SearchInput()
	sess.mu.Unlock()

	s.jobs <- searchJob{session: sess, input: input}
	return SearchingMessage(input), nil
}

// Messages drains the pending asynchronous replies for a conversation.
func (s *Service) Messages(id types.ID) []string {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return sess.DrainOutbox()
}

// RunSearchWorkers consumes queued searches until ctx is cancelled. Run once
// from main, alongside the HTTP server.
func (s *Service) RunSearchWorkers(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.jobs:
			s.runSearch(ctx, job)
		}
	}
}

func (s *Service) runSearch(ctx context.Context, job searchJob) {
	result, err := s.searcher.SearchFlights(ctx, job.input)

	var msg string
	if err != nil {
		log.Printf("conversation %s: search failed: %v", job.session.ID, err)
		msg = searchErrorMessage(err)
	} else {
		msg = ResultMessage(job.input, result)
	}

	// The search is over, success or not: clear the criteria and go back to
	// empty. A failed search does not retain the partial request.
	sess := job.session
	sess.mu.Lock()
	sess.criteria.Reset()
	sess.state = StateEmpty
	sess.outbox = append(sess.outbox, msg)
	sess.mu.Unlock()
}

func (s *Service) resetSession(sess *Session) {
	sess.mu.Lock()
	sess.criteria.Reset()
	sess.state = StateEmpty
	sess.mu.Unlock()
}
