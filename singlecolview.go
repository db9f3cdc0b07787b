package datatable

// SingleColView creates a View with a single column
// and one row per element of rows.
// The view wraps the slice without copying it.
//
// Example:
//
//	view := datatable.SingleColView("Cost", []int{10, 20, 30})
//	fmt.Println(view.NumRows())  // Output: 3
//	fmt.Println(view.Cell(2, 0)) // Output: 30
func SingleColView[T any](column string, rows []T) View {
	return &singleColView[T]{
		column: column,
		rows:   rows,
	}
}

type singleColView[T any] struct {
	column string
	rows   []T
}

// Title returns the column name as the title for single-column views.
func (s *singleColView[T]) Title() string     { return s.column }
func (s *singleColView[T]) Columns() []string { return []string{s.column} }
func (s *singleColView[T]) NumRows() int      { return len(s.rows) }

func (s *singleColView[T]) Cell(row, col int) any {
	if row < 0 || row >= len(s.rows) || col != 0 {
		return nil
	}
	return s.rows[row]
}
