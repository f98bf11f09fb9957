// README: Result aggregator: normalization, single-shot and deep search, dedup.
package flights

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

type Mode string

const (
	// ModeStandard issues a single provider call per search.
	ModeStandard Mode = "standard"
	// ModeDeep re-queries the provider several times with a delay between
	// rounds, merging novel itineraries into a running set. A scraping-style
	// provider returns a different partial slice on each call; repetition
	// approximates an exhaustive mode the provider does not offer.
	ModeDeep Mode = "deep"
)

type Config struct {
	Mode       Mode
	DeepRounds int
	RoundDelay time.Duration
}

// Service aggregates provider responses into a deduplicated, price-sorted
// result set. Provider calls are blocking and potentially long-running;
// callers are expected to run searches off the main dispatch path.
type Service struct {
	provider Provider
	cache    Cache
	limiter  *rate.Limiter
	cfg      Config

	// sleep is the inter-round delay, injectable for deterministic tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewService(provider Provider, cache Cache, limiter *rate.Limiter, cfg Config) *Service {
	if cfg.Mode == "" {
		cfg.Mode = ModeStandard
	}
	if cfg.DeepRounds <= 0 {
		cfg.DeepRounds = 5
	}
	if cache == nil {
		cache = NewNoOpCache()
	}
	return &Service{
		provider: provider,
		cache:    cache,
		limiter:  limiter,
		cfg:      cfg,
		sleep:    sleepContext,
	}
}

// SearchFlights normalizes the input, consults the retention cache, and runs
// the configured search strategy. The returned result holds the full
// deduplicated set sorted ascending by price.
func (s *Service) SearchFlights(ctx context.Context, in SearchInput) (*AggregatedResult, error) {
	q, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, q); ok {
		log.Printf("flights: cache hit for %s-%s %s", q.Departure, q.Destination, q.DepartDate)
		return cached, nil
	}

	result, err := s.search(ctx, q)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, q, result)
	return result, nil
}

// Normalize uppercases and validates airport codes, floors the passenger
// counts to their defaults, and derives the trip type from the return date.
func Normalize(in SearchInput) (Query, error) {
	dep := NormalizeAirportCode(in.Departure)
	dst := NormalizeAirportCode(in.Destination)
	if dep == "" || dst == "" {
		return Query{}, ErrInvalidAirportCode
	}

	adults := in.Adults
	if adults < 1 {
		adults = 1
	}
	children := in.Children
	if children < 0 {
		children = 0
	}

	q := Query{
		Departure:   dep,
		Destination: dst,
		DepartDate:  in.DepartDate,
		Adults:      adults,
		Children:    children,
		TripType:    TripOneWay,
	}
	if in.ReturnDate != "" {
		q.ReturnDate = in.ReturnDate
		q.TripType = TripRoundTrip
	}
	return q, nil
}

func (s *Service) search(ctx context.Context, q Query) (*AggregatedResult, error) {
	rounds := 1
	if s.cfg.Mode == ModeDeep {
		rounds = s.cfg.DeepRounds
	}

	seen := make(map[string]struct{})
	var all []Itinerary
	var lowest *float64
	level := PriceLevelUnknown

	for round := 0; round < rounds; round++ {
		if round > 0 {
			// Let the provider's backing data refresh between rounds.
			if err := s.sleep(ctx, s.cfg.RoundDelay); err != nil {
				return nil, err
			}
		}
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		batch, err := s.provider.Search(ctx, q)
		if err != nil {
			// Fail closed: a mid-sequence round failure surfaces the error
			// without returning what earlier rounds accumulated.
			return nil, fmt.Errorf("provider round %d/%d: %w", round+1, rounds, err)
		}

		for _, it := range batch.Itineraries {
			key := it.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			all = append(all, it)
		}
		if batch.LowestPrice != nil {
			lowest = batch.LowestPrice
		}
		if batch.PriceLevel != "" && batch.PriceLevel != PriceLevelUnknown {
			level = batch.PriceLevel
		}

		if rounds > 1 {
			log.Printf("flights: round %d/%d, %d unique itineraries so far", round+1, rounds, len(all))
		}
	}

	// Stable keeps first-seen order among equal prices.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Price < all[j].Price
	})

	return &AggregatedResult{
		Itineraries: all,
		LowestPrice: lowest,
		PriceLevel:  level,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
