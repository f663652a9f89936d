package sheetsync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/ordersheet/internal/types"
)

// fakeStore keeps sheets in memory and records the order of mutating calls.
type fakeStore struct {
	sheets map[string]*fakeSheet
	nextID int

	deleted      []string
	addWorksheet []string
	indexes      []int

	failAddWorksheet bool
}

type fakeSheet struct {
	ref        SheetRef
	worksheets map[string][][]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{sheets: map[string]*fakeSheet{}}
}

func (f *fakeStore) addExistingSheet(title string) SheetRef {
	ref, _ := f.CreateSheet(context.Background(), title)
	return ref
}

func (f *fakeStore) ListSheets(_ context.Context, title string) ([]SheetRef, error) {
	refs := []SheetRef{}
	for _, sheet := range f.sheets {
		if sheet.ref.Title == title {
			refs = append(refs, sheet.ref)
		}
	}
	return refs, nil
}

func (f *fakeStore) CreateSheet(_ context.Context, title string) (SheetRef, error) {
	f.nextID++
	ref := SheetRef{ID: fmt.Sprintf("sheet-%d", f.nextID), Title: title}
	f.sheets[ref.ID] = &fakeSheet{ref: ref, worksheets: map[string][][]any{}}
	return ref, nil
}

func (f *fakeStore) DeleteSheet(_ context.Context, id string) error {
	delete(f.sheets, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) AddWorksheet(_ context.Context, sheet SheetRef, title string, index int, _ int, _ int) (WorksheetRef, error) {
	if f.failAddWorksheet {
		return WorksheetRef{}, errors.New("add worksheet failed")
	}
	f.addWorksheet = append(f.addWorksheet, title)
	f.indexes = append(f.indexes, index)
	if _, ok := f.sheets[sheet.ID].worksheets[title]; !ok {
		f.sheets[sheet.ID].worksheets[title] = [][]any{}
	}
	return WorksheetRef{SheetID: sheet.ID, TabID: int64(index), Title: title}, nil
}

func (f *fakeStore) ReadAllValues(_ context.Context, ws WorksheetRef) ([][]string, error) {
	values := [][]string{}
	for _, row := range f.sheets[ws.SheetID].worksheets[ws.Title] {
		strRow := make([]string, 0, len(row))
		for _, cell := range row {
			strRow = append(strRow, fmt.Sprint(cell))
		}
		values = append(values, strRow)
	}
	return values, nil
}

func (f *fakeStore) InsertRow(_ context.Context, ws WorksheetRef, row []string, at int) error {
	anyRow := make([]any, 0, len(row))
	for _, cell := range row {
		anyRow = append(anyRow, cell)
	}
	sheet := f.sheets[ws.SheetID]
	rows := sheet.worksheets[ws.Title]
	if at-1 >= len(rows) {
		sheet.worksheets[ws.Title] = append(rows, anyRow)
		return nil
	}
	sheet.worksheets[ws.Title] = append(rows[:at-1], append([][]any{anyRow}, rows[at-1:]...)...)
	return nil
}

func (f *fakeStore) AppendRows(_ context.Context, ws WorksheetRef, rows [][]any) error {
	sheet := f.sheets[ws.SheetID]
	sheet.worksheets[ws.Title] = append(sheet.worksheets[ws.Title], rows...)
	return nil
}

func testRecords(n int) []types.FlatOrderRecord {
	records := make([]types.FlatOrderRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, types.FlatOrderRecord{
			OrderID: fmt.Sprintf("026-%d", i+1),
			SKU:     fmt.Sprintf("SKU-%d", i+1),
		})
	}
	return records
}

func TestSyncCreatesWorksheetsInOrder(t *testing.T) {

	store := newFakeStore()
	s := NewSynchronizer(store)

	err := s.Sync(context.Background(), "amazon_orders_2024-03-01", []Batch{
		{Worksheet: "Sheet_A", Rows: testRecords(2)},
		{Worksheet: "Sheet_B"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet_A", "Sheet_B"}, store.addWorksheet)
	// index increments by exactly one per worksheet
	assert.Equal(t, []int{0, 1}, store.indexes)

	sheets, err := store.ListSheets(context.Background(), "amazon_orders_2024-03-01")
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := store.sheets[sheets[0].ID]
	// header plus two data rows
	require.Len(t, sheet.worksheets["Sheet_A"], 3)
	assert.Equal(t, "AmazonOrderId", sheet.worksheets["Sheet_A"][0][0])
	assert.Equal(t, "026-1", sheet.worksheets["Sheet_A"][1][0])
	assert.Equal(t, "026-2", sheet.worksheets["Sheet_A"][2][0])
	// empty marketplace still gets a worksheet with only the header
	require.Len(t, sheet.worksheets["Sheet_B"], 1)

	assert.Empty(t, store.deleted)
}

func TestSyncDeletesStaleSheetsOnSuccess(t *testing.T) {

	store := newFakeStore()
	old := store.addExistingSheet("amazon_orders_2024-03-01")
	store.addExistingSheet("amazon_orders_2024-02-29")

	s := NewSynchronizer(store)

	err := s.Sync(context.Background(), "amazon_orders_2024-03-01", []Batch{
		{Worksheet: "Sheet_A", Rows: testRecords(1)},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{old.ID}, store.deleted)

	// exactly one sheet with the run's name remains, the fresh one
	remaining, err := store.ListSheets(context.Background(), "amazon_orders_2024-03-01")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, old.ID, remaining[0].ID)
}

func TestSyncKeepsStaleSheetsOnBatchFailure(t *testing.T) {

	store := newFakeStore()
	store.addExistingSheet("amazon_orders_2024-03-01")

	s := NewSynchronizer(store)

	err := s.Sync(context.Background(), "amazon_orders_2024-03-01", []Batch{
		{Worksheet: "Sheet_A", Rows: testRecords(1)},
		{Worksheet: "Sheet_B", Err: errors.New("listing failed")},
	})
	require.NoError(t, err)

	assert.Empty(t, store.deleted)
	// partial rows of the failed run are still written, no rollback
	remaining, err := store.ListSheets(context.Background(), "amazon_orders_2024-03-01")
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestSyncHeaderOnlyWhenEmpty(t *testing.T) {

	store := newFakeStore()
	s := NewSynchronizer(store)

	err := s.Sync(context.Background(), "amazon_orders_2024-03-01", []Batch{
		{Worksheet: "Sheet_A", Rows: testRecords(1)},
	})
	require.NoError(t, err)

	sheets, _ := store.ListSheets(context.Background(), "amazon_orders_2024-03-01")
	ws := WorksheetRef{SheetID: sheets[0].ID, Title: "Sheet_A"}

	// write into the same worksheet again, header must not repeat
	err = s.writeBatch(context.Background(), sheets[0], 0, Batch{Worksheet: "Sheet_A", Rows: testRecords(1)})
	require.NoError(t, err)

	values, err := store.ReadAllValues(context.Background(), ws)
	require.NoError(t, err)

	headers := 0
	for _, row := range values {
		if row[0] == "AmazonOrderId" {
			headers++
		}
	}
	assert.Equal(t, 1, headers)
}

func TestSyncWriteFailureKeepsStaleSheets(t *testing.T) {

	store := newFakeStore()
	old := store.addExistingSheet("amazon_orders_2024-03-01")

	store.failAddWorksheet = true
	s := NewSynchronizer(store)

	err := s.Sync(context.Background(), "amazon_orders_2024-03-01", []Batch{
		{Worksheet: "Sheet_A", Rows: testRecords(1)},
	})
	require.Error(t, err)

	assert.Empty(t, store.deleted)
	_, stillThere := store.sheets[old.ID]
	assert.True(t, stillThere)
}
