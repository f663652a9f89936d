package sheetsync

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/ordersheet/internal/types"
)

// Initial worksheet dimensions, matching what the existing sheets were
// created with.
const (
	worksheetRows = 400
	worksheetCols = 21
)

// SheetRef identifies one spreadsheet file in the destination store.
type SheetRef struct {
	ID    string
	Title string
}

// WorksheetRef identifies one tab inside a spreadsheet.
type WorksheetRef struct {
	SheetID string
	TabID   int64
	Title   string
}

// SheetStore is the destination capability: spreadsheet files with named
// worksheets of rows. Listing and creation are scoped to one folder by the
// implementation.
type SheetStore interface {
	ListSheets(ctx context.Context, title string) ([]SheetRef, error)
	CreateSheet(ctx context.Context, title string) (SheetRef, error)
	DeleteSheet(ctx context.Context, id string) error
	AddWorksheet(ctx context.Context, sheet SheetRef, title string, index int, rows int, cols int) (WorksheetRef, error)
	ReadAllValues(ctx context.Context, ws WorksheetRef) ([][]string, error)
	InsertRow(ctx context.Context, ws WorksheetRef, row []string, at int) error
	AppendRows(ctx context.Context, ws WorksheetRef, rows [][]any) error
}

// Batch is the result of one marketplace's fetch: the worksheet to write into
// and the rows for it. Err carries a fetch failure; the rows collected before
// the failure are still written.
type Batch struct {
	Worksheet string
	Rows      []types.FlatOrderRecord
	Err       error
}

// Synchronizer writes one run's batches into a fresh dated spreadsheet.
// A new sheet is always created; same-named sheets left over from earlier
// runs are deleted afterwards, and only when every marketplace succeeded.
// Partial writes are never rolled back.
type Synchronizer struct {
	store SheetStore
}

func NewSynchronizer(store SheetStore) *Synchronizer {
	return &Synchronizer{store: store}
}

func (s *Synchronizer) Sync(ctx context.Context, sheetName string, batches []Batch) error {

	stale, err := s.store.ListSheets(ctx, sheetName)
	if err != nil {
		return fmt.Errorf("listing sheets named %s failed %w", sheetName, err)
	}

	sheet, err := s.store.CreateSheet(ctx, sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet %s failed %w", sheetName, err)
	}
	logger.Infof("Created sheet %s (%s)", sheetName, sheet.ID)

	for i, batch := range batches {
		if err := s.writeBatch(ctx, sheet, i, batch); err != nil {
			return err
		}
	}

	for _, batch := range batches {
		if batch.Err != nil {
			logger.Errorf("Marketplace batch %s failed, keeping %d stale sheets", batch.Worksheet, len(stale))
			return nil
		}
	}

	for _, old := range stale {
		if err := s.store.DeleteSheet(ctx, old.ID); err != nil {
			return fmt.Errorf("deleting stale sheet %s failed %w", old.ID, err)
		}
		logger.Infof("Deleted stale sheet %s (%s)", old.Title, old.ID)
	}

	return nil
}

// writeBatch adds the batch's worksheet at its registry position, writes the
// header when the worksheet is empty and appends the rows.
func (s *Synchronizer) writeBatch(ctx context.Context, sheet SheetRef, index int, batch Batch) error {

	logger.Infof("Adding worksheet named %s", batch.Worksheet)
	ws, err := s.store.AddWorksheet(ctx, sheet, batch.Worksheet, index, worksheetRows, worksheetCols)
	if err != nil {
		return fmt.Errorf("adding worksheet %s failed %w", batch.Worksheet, err)
	}

	values, err := s.store.ReadAllValues(ctx, ws)
	if err != nil {
		return fmt.Errorf("reading worksheet %s failed %w", batch.Worksheet, err)
	}
	if len(values) == 0 {
		if err := s.store.InsertRow(ctx, ws, types.Header, 1); err != nil {
			return fmt.Errorf("writing header to %s failed %w", batch.Worksheet, err)
		}
	}

	if len(batch.Rows) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(batch.Rows))
	for _, record := range batch.Rows {
		rows = append(rows, record.Row())
	}
	if err := s.store.AppendRows(ctx, ws, rows); err != nil {
		return fmt.Errorf("appending %d rows to %s failed %w", len(rows), batch.Worksheet, err)
	}
	logger.Infof("Appended %d rows to %s", len(rows), batch.Worksheet)

	return nil
}
