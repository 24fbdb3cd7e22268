package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/ponteiro/internal/config"
	"github.com/roach88/ponteiro/internal/factorial"
	"github.com/roach88/ponteiro/internal/option"
	"github.com/roach88/ponteiro/internal/record"
)

// Runner executes the demonstration sequence.
type Runner struct {
	alloc  record.Allocator
	logger *slog.Logger
}

// New creates a Runner. A nil allocator means record.HeapAllocator and a
// nil logger discards everything.
func New(alloc record.Allocator, logger *slog.Logger) *Runner {
	if alloc == nil {
		alloc = record.HeapAllocator{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{alloc: alloc, logger: logger}
}

// Run executes the sequence for cfg, sending results to emit.
// cfg is expected to have passed config.Validate.
func (r *Runner) Run(ctx context.Context, cfg config.Config, emit Emitter) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	name, err := record.NewBoundedName(cfg.Name, policy)
	if err != nil {
		return fmt.Errorf("record name: %w", err)
	}
	if name.Truncated() {
		r.logger.Warn("record name truncated", "limit", record.MaxNameLen, "kept", name.String())
	}

	r.logger.Debug("acquiring record")
	err = record.With(r.alloc, func(rec *record.Record) error {
		rec.ID = cfg.ID
		rec.Name = name

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit.Record(rec); err != nil {
			return fmt.Errorf("emit record: %w", err)
		}
		r.logger.Debug("record reported", "id", rec.ID)

		entries, err := factorial.Table(cfg.Count)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit.Factorial(e); err != nil {
				return fmt.Errorf("emit factorial %d: %w", e.N, err)
			}
		}
		r.logger.Debug("factorials reported", "count", len(entries))

		outcome := option.Select(cfg.Option)
		if err := emit.Option(cfg.Option, outcome); err != nil {
			return fmt.Errorf("emit option: %w", err)
		}
		r.logger.Debug("option selected", "code", cfg.Option, "outcome", outcome.Code())

		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug("record released")
	return nil
}
