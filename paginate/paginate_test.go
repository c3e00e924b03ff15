package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PageSize
		wantErr bool
	}{
		{name: "all", input: "all", want: All},
		{name: "all uppercase", input: "ALL", want: All},
		{name: "empty means all", input: "", want: All},
		{name: "number", input: "10", want: 10},
		{name: "padded number", input: " 5 ", want: 5},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "word", input: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPageSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlice(t *testing.T) {
	items := numbers(10)

	tests := []struct {
		name      string
		size      PageSize
		page      int
		wantItems []int
		wantPages int
		wantPage  int
	}{
		{name: "first page", size: 3, page: 1, wantItems: []int{1, 2, 3}, wantPages: 4, wantPage: 1},
		{name: "middle page", size: 3, page: 2, wantItems: []int{4, 5, 6}, wantPages: 4, wantPage: 2},
		{name: "last partial page", size: 3, page: 4, wantItems: []int{10}, wantPages: 4, wantPage: 4},
		{name: "page past end clamps", size: 3, page: 9, wantItems: []int{10}, wantPages: 4, wantPage: 4},
		{name: "page zero clamps", size: 3, page: 0, wantItems: []int{1, 2, 3}, wantPages: 4, wantPage: 1},
		{name: "exact fit", size: 5, page: 2, wantItems: []int{6, 7, 8, 9, 10}, wantPages: 2, wantPage: 2},
		{name: "size larger than list", size: 50, page: 1, wantItems: items, wantPages: 1, wantPage: 1},
		{name: "all", size: All, page: 3, wantItems: items, wantPages: 1, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Slice(items, tt.size, tt.page)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, 10, p.Total)
		})
	}
}

func TestSlice_AllIsOnePage(t *testing.T) {
	for _, n := range []int{0, 1, 7, 250} {
		p := Slice(numbers(n), All, 1)
		assert.Equal(t, 1, p.TotalPages)
		assert.Len(t, p.Items, n)
	}
}

func TestSlice_EmptyList(t *testing.T) {
	p := Slice([]int{}, 3, 1)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Number)
}

func TestCursor_Navigation(t *testing.T) {
	c := NewCursor(3)

	assert.False(t, c.Previous(), "Previous on page 1 is ignored")
	assert.Equal(t, 1, c.Page)

	for i := 0; i < 3; i++ {
		require.True(t, c.Next(10))
	}
	assert.Equal(t, 4, c.Page)

	assert.False(t, c.Next(10), "Next on the last page is ignored")
	assert.Equal(t, 4, c.Page)

	assert.True(t, c.Previous())
	assert.Equal(t, 3, c.Page)
}

func TestCursor_SetSizeResetsPage(t *testing.T) {
	c := NewCursor(2)
	c.Next(10)
	c.Next(10)
	require.Equal(t, 3, c.Page)

	c.SetSize(5)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, PageSize(5), c.Size)
}

func TestCursor_AllNeverAdvances(t *testing.T) {
	c := NewCursor(All)
	assert.False(t, c.Next(100))
	assert.Equal(t, 1, c.Page)
}

func TestCursor_ClampAndReset(t *testing.T) {
	c := Cursor{Page: 4, Size: 3}
	c.Clamp(4)
	assert.Equal(t, 2, c.Page)

	c.Reset()
	assert.Equal(t, Cursor{Page: 1, Size: All}, c)
}

func TestNextPreset(t *testing.T) {
	assert.Equal(t, PageSize(5), NextPreset(All))
	assert.Equal(t, All, NextPreset(50))
	assert.Equal(t, All, NextPreset(7))
	assert.Equal(t, "all", All.String())
	assert.Equal(t, "20", PageSize(20).String())
}
