// Package pipeline runs the extractor over a batch of entities in parallel
// and merges the results back into input order.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/logging"
	"github.com/kozaktomas/mrzname/internal/metrics"
)

// chunkSize is the number of entities handed to one worker at a time.
const chunkSize = 256

// Progress receives the number of entities finished. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(n int) error
}

// Options configures a run.
type Options struct {
	// Workers limits concurrent extraction. Zero uses runtime.NumCPU.
	Workers int
	// FilterPassports keeps only records of persons with a passport.
	FilterPassports bool

	Progress Progress
	Logger   *zap.SugaredLogger
	Metrics  *metrics.Metrics
}

// Output is the merged result of a run.
type Output struct {
	RunID        uuid.UUID
	Entities     int
	Records      []extract.PersonRecord
	MissingLatin []extract.MissingLatinName
}

// Run extracts records from entities. Records keep the input order of their
// entities and, within an entity, the extractor's order.
func Run(ctx context.Context, x *extract.Extractor, entities []ftm.Entity, opts Options) (*Output, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := &Output{RunID: uuid.New(), Entities: len(entities)}
	logger.Infow("extracting person records", "run_id", out.RunID, "entities", len(entities), "workers", workers)
	start := time.Now()

	results := make([]extract.Result, len(entities))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(entities); lo += chunkSize {
		hi := min(lo+chunkSize, len(entities))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunkStart := time.Now()
			for i := lo; i < hi; i++ {
				results[i] = x.Extract(entities[i])
				opts.Metrics.ObserveEntity(len(results[i].Records), results[i].MissingLatin != nil)
			}
			opts.Metrics.ObserveExtractLatency(time.Since(chunkStart))
			if opts.Progress != nil {
				_ = opts.Progress.Add(hi - lo)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extracting records: %w", err)
	}

	for _, r := range results {
		if r.MissingLatin != nil {
			out.MissingLatin = append(out.MissingLatin, *r.MissingLatin)
		}
		for _, rec := range r.Records {
			if opts.FilterPassports && !rec.HasPassport {
				continue
			}
			out.Records = append(out.Records, rec)
		}
	}

	logger.Infow("extraction finished",
		"run_id", out.RunID,
		"records", len(out.Records),
		"missing_latin", len(out.MissingLatin),
		"duration", time.Since(start),
	)
	return out, nil
}
