package sheets

import (
	"context"
	"fmt"
)

// fakeStore is an in-memory Store with call counting, mimicking the
// sheet's positional semantics (data rows start at position 2).
type fakeStore struct {
	data map[string][][]string

	readCalls   int
	appendCalls int
	updateCalls int
	deleteCalls int

	failRead   bool
	failAppend bool
	failUpdate bool
	failDelete bool

	lastAppendValues   []string
	lastUpdatePosition int
	lastUpdateValues   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][][]string)}
}

func (f *fakeStore) seed(name string, rows ...[]string) {
	f.data[name] = append(f.data[name], rows...)
}

func (f *fakeStore) ReadAll(ctx context.Context, name string) ([]Row, error) {
	f.readCalls++
	if f.failRead {
		return nil, fmt.Errorf("%w: fake read failure", ErrStoreUnavailable)
	}
	schema := schemas[name]
	rows := make([]Row, 0, len(f.data[name]))
	for _, values := range f.data[name] {
		row := Row{}
		for i, header := range schema {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeStore) FindByID(ctx context.Context, name, id string) (Row, int, error) {
	rows, err := f.ReadAll(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	for i, row := range rows {
		if row["id"] == id {
			return row, i + headerRows + 1, nil
		}
	}
	return nil, 0, nil
}

func (f *fakeStore) Append(ctx context.Context, name string, values []string) error {
	f.appendCalls++
	if f.failAppend {
		return fmt.Errorf("%w: fake append failure", ErrStoreUnavailable)
	}
	f.lastAppendValues = values
	f.data[name] = append(f.data[name], values)
	return nil
}

func (f *fakeStore) UpdateAt(ctx context.Context, name string, position int, values []string) error {
	f.updateCalls++
	if f.failUpdate {
		return fmt.Errorf("%w: fake update failure", ErrStoreUnavailable)
	}
	idx := position - headerRows - 1
	if idx < 0 || idx >= len(f.data[name]) {
		return fmt.Errorf("%w: %s row %d", ErrPositionInvalid, name, position)
	}
	f.lastUpdatePosition = position
	f.lastUpdateValues = values
	f.data[name][idx] = values
	return nil
}

func (f *fakeStore) DeleteAt(ctx context.Context, name string, position int) error {
	f.deleteCalls++
	if f.failDelete {
		return fmt.Errorf("%w: fake delete failure", ErrStoreUnavailable)
	}
	idx := position - headerRows - 1
	if idx < 0 || idx >= len(f.data[name]) {
		return fmt.Errorf("%w: %s row %d", ErrPositionInvalid, name, position)
	}
	f.data[name] = append(f.data[name][:idx], f.data[name][idx+1:]...)
	return nil
}
