package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wellywell/ordersheet/internal/sheetsync"
	"github.com/xuri/excelize/v2"
)

// Store implements sheetsync.SheetStore on local xlsx workbooks, one file per
// spreadsheet, inside a single directory. It exists for dry runs: the job can
// be pointed at a directory instead of Google and produces the same layout.
// The sheet ID is the file path.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workbook directory %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) ListSheets(_ context.Context, title string) ([]sheetsync.SheetRef, error) {

	refs := []sheetsync.SheetRef{}
	for _, pattern := range []string{title + ".xlsx", title + "_*.xlsx"} {
		matches, err := filepath.Glob(filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing workbooks failed %w", err)
		}
		for _, path := range matches {
			refs = append(refs, sheetsync.SheetRef{ID: path, Title: title})
		}
	}
	return refs, nil
}

// CreateSheet writes a fresh workbook. Unlike Drive, a directory cannot hold
// two files with the same name, so re-runs get a numbered suffix until the
// stale file is cleaned up.
func (s *Store) CreateSheet(_ context.Context, title string) (sheetsync.SheetRef, error) {

	path := filepath.Join(s.dir, title+".xlsx")
	for n := 2; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%d.xlsx", title, n))
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return sheetsync.SheetRef{}, fmt.Errorf("failed to save workbook %w", err)
	}

	return sheetsync.SheetRef{ID: path, Title: title}, nil
}

func (s *Store) DeleteSheet(_ context.Context, id string) error {
	if err := os.Remove(id); err != nil {
		return fmt.Errorf("failed to delete workbook %w", err)
	}
	return nil
}

func (s *Store) AddWorksheet(_ context.Context, sheet sheetsync.SheetRef, title string, index int, _ int, _ int) (sheetsync.WorksheetRef, error) {

	f, err := excelize.OpenFile(sheet.ID)
	if err != nil {
		return sheetsync.WorksheetRef{}, fmt.Errorf("failed to open workbook %w", err)
	}
	defer f.Close()

	tabID, err := f.NewSheet(title)
	if err != nil {
		return sheetsync.WorksheetRef{}, fmt.Errorf("failed to add worksheet %w", err)
	}

	// drop the placeholder sheet excelize creates with the workbook
	if title != "Sheet1" {
		if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return sheetsync.WorksheetRef{}, fmt.Errorf("failed to drop placeholder sheet %w", err)
			}
		}
	}

	if err := f.Save(); err != nil {
		return sheetsync.WorksheetRef{}, fmt.Errorf("failed to save workbook %w", err)
	}

	return sheetsync.WorksheetRef{SheetID: sheet.ID, TabID: int64(tabID), Title: title}, nil
}

func (s *Store) ReadAllValues(_ context.Context, ws sheetsync.WorksheetRef) ([][]string, error) {

	f, err := excelize.OpenFile(ws.SheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ws.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %w", err)
	}
	return rows, nil
}

func (s *Store) InsertRow(_ context.Context, ws sheetsync.WorksheetRef, row []string, at int) error {

	values := make([]any, 0, len(row))
	for _, cell := range row {
		values = append(values, cell)
	}
	return s.writeRows(ws, [][]any{values}, at)
}

func (s *Store) AppendRows(_ context.Context, ws sheetsync.WorksheetRef, rows [][]any) error {

	f, err := excelize.OpenFile(ws.SheetID)
	if err != nil {
		return fmt.Errorf("failed to open workbook %w", err)
	}
	existing, err := f.GetRows(ws.Title)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read worksheet %w", err)
	}

	return s.writeRows(ws, rows, len(existing)+1)
}

func (s *Store) writeRows(ws sheetsync.WorksheetRef, rows [][]any, at int) error {

	f, err := excelize.OpenFile(ws.SheetID)
	if err != nil {
		return fmt.Errorf("failed to open workbook %w", err)
	}
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, at+i)
		if err != nil {
			return fmt.Errorf("bad cell coordinates %w", err)
		}
		if err := f.SetSheetRow(ws.Title, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %w", err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %w", err)
	}
	return nil
}
