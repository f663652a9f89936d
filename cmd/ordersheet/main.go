package main

import (
	"context"
	"os"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/ordersheet/internal/config"
	"github.com/wellywell/ordersheet/internal/fetch"
	"github.com/wellywell/ordersheet/internal/gsheets"
	"github.com/wellywell/ordersheet/internal/pipeline"
	"github.com/wellywell/ordersheet/internal/sheetsync"
	"github.com/wellywell/ordersheet/internal/spapi"
	"github.com/wellywell/ordersheet/internal/token"
	"github.com/wellywell/ordersheet/internal/types"
	"github.com/wellywell/ordersheet/internal/xlsx"
)

func main() {

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	store, err := buildStore(conf)
	if err != nil {
		panic(err)
	}

	fetcherFor := func(cfg types.MarketplaceConfig) pipeline.OrderFetcher {
		tokens := token.NewLWAProvider(token.DefaultLWATokenURL, conf.LWAAppID, conf.LWAClientSecret, cfg.RefreshToken)
		source := spapi.NewClient(conf.SPAPIEndpoint, cfg.MarketplaceID, tokens)
		return fetch.NewFetcher(source, conf.OrderDelay)
	}

	runner := pipeline.NewRunner(conf.Registry(), fetcherFor, sheetsync.NewSynchronizer(store), conf.SheetPrefix)

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	// one sheet for yesterday, one for the same day a week earlier
	windows := []types.DateRange{
		{After: today.AddDate(0, 0, -1), Before: today},
		{After: today.AddDate(0, 0, -8), Before: today.AddDate(0, 0, -7)},
	}

	failed := false
	for _, window := range windows {
		report, err := runner.Run(ctx, window)
		if err != nil {
			logger.Errorf("Run for sheet %s failed: %s", report.SheetName, err)
			failed = true
			continue
		}
		for _, result := range report.Results {
			if result.Err != nil {
				logger.Errorf("Marketplace %s (%s) failed: %s", result.MarketplaceID, result.Worksheet, result.Err)
				failed = true
				continue
			}
			logger.Infof("Marketplace %s (%s): %d rows", result.MarketplaceID, result.Worksheet, result.Rows)
		}
	}

	logger.Info("Done")
	if failed {
		os.Exit(1)
	}
}

func buildStore(conf *config.Config) (sheetsync.SheetStore, error) {

	if conf.SheetBackend == "xlsx" {
		return xlsx.NewStore(conf.XLSXDir)
	}

	tokens, err := token.NewGoogleProvider(token.DefaultGoogleTokenURL, conf.GoogleClientEmail, []byte(conf.GooglePrivateKey))
	if err != nil {
		return nil, err
	}
	return gsheets.NewClient(gsheets.DefaultSheetsEndpoint, gsheets.DefaultDriveEndpoint, conf.GoogleFolderID, tokens), nil
}
