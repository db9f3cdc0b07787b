package datatable

import "slices"

// ColumnOrderConfig is the input of ReconcileColumnOrder.
type ColumnOrderConfig struct {
	// PreviousOrder is the persisted order of the caller,
	// may contain stale and duplicate IDs.
	PreviousOrder []string
	// AvailableIDs are the IDs of the currently available columns.
	AvailableIDs []string
	// FixedStartIDs are pinned to the start in declared order.
	// nil means DefaultFixedStartIDs, an empty slice pins nothing.
	FixedStartIDs []string
	// FixedEndIDs are pinned to the end in declared order.
	// nil means DefaultFixedEndIDs, an empty slice pins nothing.
	FixedEndIDs []string
}

// ReconcileColumnOrder returns a deterministic column order
// of exactly the AvailableIDs.
//
// The result starts with the available FixedStartIDs,
// ends with the available FixedEndIDs, and in between
// lists the other available IDs in the order of PreviousOrder
// followed by available IDs missing in PreviousOrder
// in the order of AvailableIDs.
// An empty PreviousOrder is seeded with AvailableIDs.
//
// Example:
//
//	ReconcileColumnOrder(ColumnOrderConfig{
//	    PreviousOrder: []string{"cost", "select", "name", "row-actions"},
//	    AvailableIDs:  []string{"select", "name", "row-actions", "cost"},
//	})
//	// []string{"select", "cost", "name", "row-actions"}
func ReconcileColumnOrder(config ColumnOrderConfig) []string {
	fixedStart := config.FixedStartIDs
	if fixedStart == nil {
		fixedStart = DefaultFixedStartIDs
	}
	fixedEnd := config.FixedEndIDs
	if fixedEnd == nil {
		fixedEnd = DefaultFixedEndIDs
	}

	available := make(map[string]struct{}, len(config.AvailableIDs))
	for _, id := range config.AvailableIDs {
		available[id] = struct{}{}
	}
	fixed := make(map[string]struct{}, len(fixedStart)+len(fixedEnd))
	for _, id := range fixedStart {
		fixed[id] = struct{}{}
	}
	for _, id := range fixedEnd {
		fixed[id] = struct{}{}
	}

	seed := config.PreviousOrder
	if len(seed) == 0 {
		seed = config.AvailableIDs
	}

	placed := make(map[string]struct{}, len(config.AvailableIDs))
	middle := make([]string, 0, len(config.AvailableIDs))
	appendMiddle := func(id string) {
		if _, ok := available[id]; !ok {
			return
		}
		if _, ok := fixed[id]; ok {
			return
		}
		if _, ok := placed[id]; ok {
			return
		}
		placed[id] = struct{}{}
		middle = append(middle, id)
	}
	for _, id := range ToOrderedUnique(seed) {
		appendMiddle(id)
	}
	// Columns that appeared since PreviousOrder was stored
	for _, id := range config.AvailableIDs {
		appendMiddle(id)
	}

	order := make([]string, 0, len(fixedStart)+len(middle)+len(fixedEnd))
	order = appendAvailable(order, ToOrderedUnique(fixedStart), available)
	order = append(order, middle...)
	order = appendAvailable(order, ToOrderedUnique(fixedEnd), available)
	return order
}

func appendAvailable(order, ids []string, available map[string]struct{}) []string {
	for _, id := range ids {
		if _, ok := available[id]; ok && !slices.Contains(order, id) {
			order = append(order, id)
		}
	}
	return order
}

// ToOrderedUnique returns the ids without duplicates
// keeping the order of the first occurrences.
func ToOrderedUnique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// StringsEqual returns if a and b have the same elements in the same order.
// Callers use it to skip storing an unchanged column order.
func StringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// VisibleColumnIDs returns allIDs without the hiddenIDs.
func VisibleColumnIDs(allIDs, hiddenIDs []string) []string {
	visible := make([]string, 0, len(allIDs))
	for _, id := range allIDs {
		if !slices.Contains(hiddenIDs, id) {
			visible = append(visible, id)
		}
	}
	return visible
}

// MoveColumn moves activeID to the position of overID
// the way a dropped column header is moved and returns the new order.
// The passed order is not modified.
// If either ID is not in order, both are equal, or either is one of
// the fixed IDs, then the passed order is returned unchanged.
// nil fixed IDs mean the defaults like for ColumnOrderConfig.
func MoveColumn(order []string, activeID, overID string, fixedStartIDs, fixedEndIDs []string) []string {
	if fixedStartIDs == nil {
		fixedStartIDs = DefaultFixedStartIDs
	}
	if fixedEndIDs == nil {
		fixedEndIDs = DefaultFixedEndIDs
	}
	if activeID == overID {
		return order
	}
	for _, id := range [2]string{activeID, overID} {
		if slices.Contains(fixedStartIDs, id) || slices.Contains(fixedEndIDs, id) {
			return order
		}
	}
	from := slices.Index(order, activeID)
	to := slices.Index(order, overID)
	if from < 0 || to < 0 {
		return order
	}
	moved := slices.Delete(slices.Clone(order), from, from+1)
	return slices.Insert(moved, to, activeID)
}

// ViewWithColumnOrder returns a FilteredView of source with the columns
// in the passed order. sourceIDs are the column IDs of source by column index.
// IDs of order that are not in sourceIDs are skipped.
func ViewWithColumnOrder(source View, sourceIDs, order []string) *FilteredView {
	mapping := make([]int, 0, len(order))
	for _, id := range order {
		if col := slices.Index(sourceIDs, id); col >= 0 {
			mapping = append(mapping, col)
		}
	}
	return &FilteredView{Source: source, ColumnMapping: mapping}
}
