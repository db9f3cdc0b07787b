package datatable

import (
	"slices"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSelection maps the decimal index of a row
// within the currently displayed rows to true if the row is selected.
// It is derived from the selected IDs on every call
// and must never be used as the source of truth
// because row positions change with paging and filtering.
type RowSelection map[string]bool

// Has returns if the row at index is selected.
func (s RowSelection) Has(index int) bool {
	return s[strconv.Itoa(index)]
}

// Indices returns the selected row indices in ascending order.
func (s RowSelection) Indices() []int {
	indices := make([]int, 0, len(s))
	for key, selected := range s {
		if !selected {
			continue
		}
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			continue
		}
		indices = append(indices, index)
	}
	slices.Sort(indices)
	return indices
}

// RowSelectionFromIndices returns a RowSelection with the passed indices selected.
func RowSelectionFromIndices(indices ...int) RowSelection {
	s := make(RowSelection, len(indices))
	for _, index := range indices {
		s[strconv.Itoa(index)] = true
	}
	return s
}

// Selection synchronizes a caller owned list of selected row IDs
// with the positional row selection of a table renderer.
//
// The caller keeps SelectedIDs across pages and filters and
// receives every change as a single OnToggle call per ID,
// an ID flips from selected to unselected or the other way around.
// Selection never modifies SelectedIDs.
//
// RowID must return unique IDs for the rows of Data.
type Selection[R any] struct {
	// Data are the currently displayed rows.
	Data []R
	// SelectedIDs are the IDs of all selected rows,
	// including rows not contained in Data.
	SelectedIDs []string
	// RowID returns the stable ID of a row.
	RowID func(R) string
	// OnToggle is called once per ID whose selection changed.
	OnToggle func(id string)
}

func NewSelection[R any](data []R, selectedIDs []string, rowID func(R) string, onToggle func(id string)) *Selection[R] {
	return &Selection[R]{
		Data:        data,
		SelectedIDs: selectedIDs,
		RowID:       rowID,
		OnToggle:    onToggle,
	}
}

// selectedIDs returns SelectedIDs without duplicates.
func (s *Selection[R]) selectedIDs() []string {
	return ToOrderedUnique(s.SelectedIDs)
}

func (s *Selection[R]) selectedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.SelectedIDs))
	for _, id := range s.SelectedIDs {
		set[id] = struct{}{}
	}
	return set
}

func (s *Selection[R]) toggle(id string) {
	if s.OnToggle != nil {
		s.OnToggle(id)
	}
}

// RowSelection returns the positional selection of Data.
// Selected IDs without a row in Data are not contained.
func (s *Selection[R]) RowSelection() RowSelection {
	if len(s.SelectedIDs) == 0 {
		return RowSelection{}
	}
	selected := s.selectedSet()
	rowSelection := make(RowSelection)
	for i, row := range s.Data {
		if _, ok := selected[s.RowID(row)]; ok {
			rowSelection[strconv.Itoa(i)] = true
		}
	}
	return rowSelection
}

// RowSelectionBitmap returns the indices of the selected rows of Data.
func (s *Selection[R]) RowSelectionBitmap() *roaring.Bitmap {
	bitmap := roaring.New()
	if len(s.SelectedIDs) == 0 {
		return bitmap
	}
	selected := s.selectedSet()
	for i, row := range s.Data {
		if _, ok := selected[s.RowID(row)]; ok {
			bitmap.Add(uint32(i)) //#nosec G115 -- row indices are non-negative
		}
	}
	return bitmap
}

// HandleRowSelectionChange takes the rows a table renderer
// reports as selected and calls OnToggle for every ID
// that was not selected before in the order of selectedRows,
// then for every previously selected ID that is not
// contained in selectedRows in the order of SelectedIDs.
func (s *Selection[R]) HandleRowSelectionChange(selectedRows []R) {
	next := make([]string, len(selectedRows))
	for i, row := range selectedRows {
		next[i] = s.RowID(row)
	}
	next = ToOrderedUnique(next)

	prev := s.selectedSet()
	nextSet := make(map[string]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
		if _, ok := prev[id]; !ok {
			s.toggle(id)
		}
	}
	for _, id := range s.selectedIDs() {
		if _, ok := nextSet[id]; !ok {
			s.toggle(id)
		}
	}
}

// HandleRowSelectionIndices calls HandleRowSelectionChange
// with the rows of Data selected by the passed positional selection.
// Indices out of the range of Data are ignored.
func (s *Selection[R]) HandleRowSelectionIndices(selection RowSelection) {
	rows := make([]R, 0, len(selection))
	for _, index := range selection.Indices() {
		if index < len(s.Data) {
			rows = append(rows, s.Data[index])
		}
	}
	s.HandleRowSelectionChange(rows)
}

// SelectedCount returns the number of selected IDs
// including those without a row in Data.
func (s *Selection[R]) SelectedCount() int {
	return len(s.selectedIDs())
}

func (s *Selection[R]) HasSelection() bool {
	return len(s.SelectedIDs) > 0
}

// SingleSelectedItem returns the row of Data with the only selected ID.
// It returns false if zero or more than one IDs are selected
// or if the row of the selected ID is not in Data.
func (s *Selection[R]) SingleSelectedItem() (item R, ok bool) {
	selected := s.selectedIDs()
	if len(selected) != 1 {
		return item, false
	}
	for _, row := range s.Data {
		if s.RowID(row) == selected[0] {
			return row, true
		}
	}
	return item, false
}

// ClearSelection calls OnToggle once for every selected ID.
func (s *Selection[R]) ClearSelection() {
	for _, id := range s.selectedIDs() {
		s.toggle(id)
	}
}

// ToggleID returns a new slice with id removed from ids
// if it was contained, or else with id appended.
// It is the counterpart of Selection.OnToggle
// for callers that keep the selected IDs as slice.
func ToggleID(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}
	return append(slices.Clip(ids), id)
}
