package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type asset struct {
	ID   string
	Name string
}

func assetID(a asset) string { return a.ID }

func newAssetSelection(data []asset, selectedIDs ...string) (*Selection[asset], *[]string) {
	toggled := new([]string)
	s := NewSelection(data, selectedIDs, assetID, func(id string) {
		*toggled = append(*toggled, id)
	})
	return s, toggled
}

var testAssets = []asset{
	{ID: "a", Name: "Forklift"},
	{ID: "b", Name: "Generator"},
	{ID: "c", Name: "Crane"},
}

func TestSelection_RowSelection(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		s, _ := newAssetSelection(testAssets)
		require.Equal(t, RowSelection{}, s.RowSelection())
		require.True(t, s.RowSelectionBitmap().IsEmpty())
	})
	t.Run("selected rows by position", func(t *testing.T) {
		s, _ := newAssetSelection(testAssets, "c", "a")
		require.Equal(t, RowSelection{"0": true, "2": true}, s.RowSelection())
		require.Equal(t, []uint32{0, 2}, s.RowSelectionBitmap().ToArray())
	})
	t.Run("selected id not on page", func(t *testing.T) {
		s, _ := newAssetSelection(testAssets[1:], "a", "c")
		require.Equal(t, RowSelection{"1": true}, s.RowSelection())
		require.Equal(t, 2, s.SelectedCount())
	})
}

func TestSelection_HandleRowSelectionChange(t *testing.T) {
	tests := []struct {
		name         string
		selectedIDs  []string
		selectedRows []asset
		wantToggled  []string
	}{
		{
			name:         "add then remove",
			selectedIDs:  []string{"a", "b"},
			selectedRows: []asset{testAssets[0], testAssets[2]},
			wantToggled:  []string{"c", "b"},
		},
		{
			name:         "unchanged",
			selectedIDs:  []string{"a", "b"},
			selectedRows: []asset{testAssets[1], testAssets[0]},
			wantToggled:  nil,
		},
		{
			name:         "additions in row order",
			selectedIDs:  nil,
			selectedRows: []asset{testAssets[2], testAssets[0]},
			wantToggled:  []string{"c", "a"},
		},
		{
			name:         "removals in selected order",
			selectedIDs:  []string{"c", "a", "b"},
			selectedRows: nil,
			wantToggled:  []string{"c", "a", "b"},
		},
		{
			name:         "duplicates toggle once",
			selectedIDs:  []string{"a", "a"},
			selectedRows: []asset{testAssets[1], testAssets[1]},
			wantToggled:  []string{"b", "a"},
		},
		{
			name:         "selected id of other page is removed",
			selectedIDs:  []string{"x"},
			selectedRows: []asset{testAssets[0]},
			wantToggled:  []string{"a", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, toggled := newAssetSelection(testAssets, tt.selectedIDs...)
			s.HandleRowSelectionChange(tt.selectedRows)
			require.Equal(t, tt.wantToggled, *toggled)
		})
	}
}

func TestSelection_HandleRowSelectionIndices(t *testing.T) {
	s, toggled := newAssetSelection(testAssets, "a", "b")
	s.HandleRowSelectionIndices(RowSelection{"0": true, "1": false, "2": true, "7": true, "x": true})
	require.Equal(t, []string{"c", "b"}, *toggled)
}

func TestSelection_togglesReproduceSelection(t *testing.T) {
	selected := []string{"a", "x"}
	s := NewSelection(testAssets, selected, assetID, func(id string) {
		selected = ToggleID(selected, id)
	})
	s.HandleRowSelectionChange([]asset{testAssets[1], testAssets[2]})
	require.ElementsMatch(t, []string{"b", "c"}, selected)
	require.Equal(t, []string{"a", "x"}, s.SelectedIDs, "SelectedIDs not modified")
}

func TestSelection_SingleSelectedItem(t *testing.T) {
	s, _ := newAssetSelection(testAssets, "b")
	item, ok := s.SingleSelectedItem()
	require.True(t, ok)
	require.Equal(t, testAssets[1], item)

	s, _ = newAssetSelection(testAssets, "x")
	_, ok = s.SingleSelectedItem()
	require.False(t, ok, "selected row not in data")

	s, _ = newAssetSelection(testAssets, "a", "b")
	_, ok = s.SingleSelectedItem()
	require.False(t, ok, "more than one selected")

	s, _ = newAssetSelection(testAssets)
	_, ok = s.SingleSelectedItem()
	require.False(t, ok, "nothing selected")
}

func TestSelection_ClearSelection(t *testing.T) {
	s, toggled := newAssetSelection(testAssets[:1], "a", "b", "x")
	require.True(t, s.HasSelection())
	require.Equal(t, 3, s.SelectedCount())
	s.ClearSelection()
	require.Equal(t, []string{"a", "b", "x"}, *toggled)

	s, toggled = newAssetSelection(testAssets)
	require.False(t, s.HasSelection())
	require.Equal(t, 0, s.SelectedCount())
	s.ClearSelection()
	require.Empty(t, *toggled)
}

func TestSelection_nilOnToggle(t *testing.T) {
	s := NewSelection(testAssets, []string{"a"}, assetID, nil)
	require.NotPanics(t, func() {
		s.HandleRowSelectionChange(nil)
		s.ClearSelection()
	})
}

func TestRowSelection_Indices(t *testing.T) {
	require.Equal(t, []int{}, RowSelection{}.Indices())
	require.Equal(t, []int{1, 4}, RowSelection{"4": true, "1": true, "2": false, "-1": true}.Indices())
	require.Equal(t, RowSelection{"3": true, "0": true}, RowSelectionFromIndices(3, 0))
	require.True(t, RowSelectionFromIndices(2).Has(2))
	require.False(t, RowSelectionFromIndices(2).Has(1))
}

func TestToggleID(t *testing.T) {
	ids := []string{"a", "b", "c"}
	require.Equal(t, []string{"a", "c"}, ToggleID(ids, "b"))
	require.Equal(t, []string{"a", "b", "c", "d"}, ToggleID(ids, "d"))
	require.Equal(t, []string{"a", "b", "c"}, ids)
	require.Equal(t, []string{"a"}, ToggleID(nil, "a"))
}
