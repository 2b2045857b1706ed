// Package pipeline wires the single pass over the galaxy dump: read records,
// filter, match bodies, derive output fields, then sort and persist.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/agentic-research/ringscan/internal/config"
	"github.com/agentic-research/ringscan/internal/ingest"
	"github.com/agentic-research/ringscan/internal/logger"
	"github.com/agentic-research/ringscan/internal/store"
	"github.com/agentic-research/ringscan/internal/survey"
)

type Pipeline struct {
	cfg config.Config
	log *logger.Logger
}

func New(cfg config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// ranked keeps the input ordinal so ties on distance resolve the same way
// on every run, whether records were matched sequentially or on a pool.
type ranked struct {
	m   survey.MatchedSystem
	seq int64
}

// evaluate runs the per-record stages. Pure: no error modes, a record either
// yields an output row or it does not.
func evaluate(sys *survey.StarSystem) (survey.MatchedSystem, bool) {
	if !survey.Qualifies(sys) {
		return survey.MatchedSystem{}, false
	}
	body, ok := survey.FirstMatch(sys.Bodies)
	if !ok {
		return survey.MatchedSystem{}, false
	}
	return survey.NewMatchedSystem(sys, body), true
}

// Run executes one full pass and returns the aggregate report. On any error
// no output artifact is left at the configured path.
func (p *Pipeline) Run() (survey.Report, error) {
	start := time.Now()

	f, err := os.Open(p.cfg.InputPath)
	if err != nil {
		return survey.Report{}, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	p.log.Info("reading %s", p.cfg.InputPath)

	var (
		considered int64
		matched    []ranked
	)
	if p.cfg.Resources.Workers > 1 {
		considered, matched, err = p.scanParallel(ingest.NewReader(f))
	} else {
		considered, matched, err = p.scan(ingest.NewReader(f))
	}
	if err != nil {
		return survey.Report{}, err
	}

	// Workers return results in completion order; the store contract is
	// ascending distance, with the input ordinal breaking ties.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].m.DistanceFromOrigin != matched[j].m.DistanceFromOrigin {
			return matched[i].m.DistanceFromOrigin < matched[j].m.DistanceFromOrigin
		}
		return matched[i].seq < matched[j].seq
	})

	p.log.Info("persisting %d systems to %s", len(matched), p.cfg.OutputPath)

	w, err := store.NewWriter(p.cfg.OutputPath, p.cfg.Resources, p.cfg.Store.BatchSize)
	if err != nil {
		return survey.Report{}, err
	}
	for i := range matched {
		if err := w.Add(&matched[i].m); err != nil {
			w.Abort()
			return survey.Report{}, err
		}
	}
	if err := w.Close(); err != nil {
		w.Abort()
		return survey.Report{}, err
	}

	return survey.Report{
		Considered: considered,
		Matched:    int64(len(matched)),
		Elapsed:    time.Since(start),
	}, nil
}

func (p *Pipeline) scan(r *ingest.Reader) (int64, []ranked, error) {
	var (
		considered int64
		matched    []ranked
	)
	for {
		sys, err := r.Next()
		if err == io.EOF {
			return considered, matched, nil
		}
		if err != nil {
			return 0, nil, err
		}
		considered++
		if m, ok := evaluate(sys); ok {
			matched = append(matched, ranked{m: m, seq: considered})
		}
	}
}

// scanParallel fans records out to a goroutine pool. Decoding stays on this
// goroutine; only the per-record stages run on workers. Ordering is restored
// by the caller's sort, so completion order does not matter.
func (p *Pipeline) scanParallel(r *ingest.Reader) (int64, []ranked, error) {
	pool, err := ants.NewPool(p.cfg.Resources.Workers, ants.WithPanicHandler(func(v any) {
		p.log.Error("matcher panic: %v", v)
	}))
	if err != nil {
		return 0, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		considered int64
		matched    []ranked
	)
	for {
		sys, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			wg.Wait()
			return 0, nil, err
		}
		considered++
		seq := considered

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if m, ok := evaluate(sys); ok {
				mu.Lock()
				matched = append(matched, ranked{m: m, seq: seq})
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return 0, nil, fmt.Errorf("submit record: %w", err)
		}
	}
	wg.Wait()
	return considered, matched, nil
}
