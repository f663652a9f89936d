package pipeline

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/ordersheet/internal/sheetsync"
	"github.com/wellywell/ordersheet/internal/types"
)

// OrderFetcher pulls and flattens one marketplace's orders for a window.
type OrderFetcher interface {
	Fetch(ctx context.Context, marketplaceID string, window types.DateRange) ([]types.FlatOrderRecord, error)
}

// SheetSyncer persists one run's batches into the dated destination sheet.
type SheetSyncer interface {
	Sync(ctx context.Context, sheetName string, batches []sheetsync.Batch) error
}

// Result is the outcome for one marketplace of a run.
type Result struct {
	MarketplaceID string
	Worksheet     string
	Rows          int
	Err           error
}

// Report aggregates the per-marketplace outcomes of one run.
type Report struct {
	SheetName string
	Results   []Result
}

// Failed reports whether any marketplace of the run failed.
func (r Report) Failed() bool {
	for _, result := range r.Results {
		if result.Err != nil {
			return true
		}
	}
	return false
}

// Runner drives one run: fetch every registry marketplace in order, then hand
// all batches to the synchronizer. A marketplace failure is recorded and does
// not stop the remaining marketplaces; it only suppresses the synchronizer's
// stale-sheet cleanup.
type Runner struct {
	registry    []types.MarketplaceConfig
	fetcherFor  func(types.MarketplaceConfig) OrderFetcher
	syncer      SheetSyncer
	sheetPrefix string
}

func NewRunner(registry []types.MarketplaceConfig, fetcherFor func(types.MarketplaceConfig) OrderFetcher, syncer SheetSyncer, sheetPrefix string) *Runner {
	return &Runner{
		registry:    registry,
		fetcherFor:  fetcherFor,
		syncer:      syncer,
		sheetPrefix: sheetPrefix,
	}
}

func (r *Runner) Run(ctx context.Context, window types.DateRange) (Report, error) {

	report := Report{
		SheetName: fmt.Sprintf("%s_%s", r.sheetPrefix, window.After.Format("2006-01-02")),
	}

	batches := make([]sheetsync.Batch, 0, len(r.registry))

	for _, config := range r.registry {
		logger.Infof("Started fetching orders for %s", config.CountryCode)

		records, err := r.fetcherFor(config).Fetch(ctx, config.MarketplaceID, window)
		if err != nil {
			logger.Errorf("Fetching orders for %s failed: %s", config.CountryCode, err)
		}

		report.Results = append(report.Results, Result{
			MarketplaceID: config.MarketplaceID,
			Worksheet:     config.WorksheetName,
			Rows:          len(records),
			Err:           err,
		})
		batches = append(batches, sheetsync.Batch{
			Worksheet: config.WorksheetName,
			Rows:      records,
			Err:       err,
		})
	}

	if err := r.syncer.Sync(ctx, report.SheetName, batches); err != nil {
		return report, fmt.Errorf("syncing sheet %s failed %w", report.SheetName, err)
	}

	return report, nil
}
