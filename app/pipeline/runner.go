package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pressradar/app/database"
	"pressradar/app/press"
	"pressradar/app/sources"
)

// Result summarizes one scan run.
type Result struct {
	Digest        string
	Fetched       int // items returned by all surviving sources
	Matched       int // items that matched at least one keyword
	NewHits       int // matched items not previously on the ledger
	FailedSources int
}

// Runner composes one scan: fetch all sources, keyword-match, record new
// items on the ledger, render the digest.
type Runner struct {
	adapters  []sources.Adapter
	matcher   *press.Matcher
	generator *press.Generator
	repo      database.SeenItemRepository
	keywords  []string
}

func NewRunner(adapters []sources.Adapter, matcher *press.Matcher, generator *press.Generator,
	repo database.SeenItemRepository, keywords []string) *Runner {
	return &Runner{
		adapters:  adapters,
		matcher:   matcher,
		generator: generator,
		repo:      repo,
		keywords:  keywords,
	}
}

// Run executes one scan. Source fetches run concurrently; a failing
// source is downgraded to a warning and contributes zero items. Only a
// ledger failure aborts the run, since continuing would risk notifying
// duplicates on the next attempt.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	started := time.Now()

	perSource := make([][]press.Item, len(r.adapters))
	errs := make([]error, len(r.adapters))

	var wg sync.WaitGroup
	for i, adapter := range r.adapters {
		wg.Add(1)
		go func(i int, adapter sources.Adapter) {
			defer wg.Done()
			perSource[i], errs[i] = adapter.Fetch(ctx)
		}(i, adapter)
	}
	wg.Wait()

	// Merge in fixed adapter order so digests stay deterministic
	// regardless of which fetch finished first.
	var all []press.Item
	failed := 0
	for i, adapter := range r.adapters {
		if errs[i] != nil {
			slog.Warn("Source fetch failed", "source", adapter.Name(), "error", errs[i])
			failed++
			continue
		}
		slog.Debug("Source fetched", "source", adapter.Name(), "items", len(perSource[i]))
		all = append(all, perSource[i]...)
	}

	firstSeen := time.Now().UTC()
	matchedCount := 0
	var newHits []press.Item
	for _, item := range all {
		matched, score := r.matcher.Run(item.Title+" "+item.Snippet, r.keywords)
		if len(matched) == 0 {
			continue
		}
		matchedCount++
		item.Matched = matched
		item.Score = score

		inserted, err := r.repo.InsertIfAbsent(item, firstSeen)
		if err != nil {
			return nil, fmt.Errorf("failed to record item %s: %w", item.URL, err)
		}
		if inserted {
			newHits = append(newHits, item)
		}
	}

	digest := r.generator.Run(newHits, time.Now())

	slog.Info("Scan completed",
		"duration", time.Since(started),
		"sources", len(r.adapters),
		"failed_sources", failed,
		"items", len(all),
		"matched", matchedCount,
		"new", len(newHits))

	return &Result{
		Digest:        digest,
		Fetched:       len(all),
		Matched:       matchedCount,
		NewHits:       len(newHits),
		FailedSources: failed,
	}, nil
}
