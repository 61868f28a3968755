package veccursor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Pager_WithMethods(t *testing.T) {
	p := (*Pager)(nil)
	require.Equal(t, DefaultLimit, p.GetLimit())
	require.Equal(t, Ghost(), p.GetStart())
	require.False(t, p.IsUnlimited())

	p = p.WithLimit(5).WithStart(At(3))
	require.Equal(t, 5, p.GetLimit())
	require.Equal(t, At(3), p.GetStart())

	p = p.WithUnlimited()
	require.True(t, p.IsUnlimited())

	p = p.WithLimit(MaxLimit + 10)
	require.Equal(t, MaxLimit, p.GetLimit())

	p = p.WithLimit(NoLimit)
	require.True(t, p.IsUnlimited())
}

func Test_RawPager_Decode(t *testing.T) {
	var raw RawPager
	require.NoError(t, json.Unmarshal([]byte(`{"limit": 2, "startToken": "`+At(4).Token()+`"}`), &raw))

	p, err := raw.Decode()
	require.NoError(t, err)
	require.Equal(t, 2, p.GetLimit())
	require.Equal(t, At(4), p.GetStart())

	_, err = RawPager{Limit: 2, StartToken: "%%%"}.Decode()
	require.ErrorIs(t, err, ErrMalformedToken)
}

func Test_Paginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		pager         *Pager
		expectedItems []int
		expectedNext  Position
	}{
		{
			name:          "first page",
			pager:         NewPager().WithLimit(2),
			expectedItems: []int{1, 2},
			expectedNext:  At(2),
		},
		{
			name:          "middle page",
			pager:         NewPager().WithLimit(2).WithStart(At(2)),
			expectedItems: []int{3, 4},
			expectedNext:  At(4),
		},
		{
			name:          "last page is short",
			pager:         NewPager().WithLimit(2).WithStart(At(4)),
			expectedItems: []int{5},
			expectedNext:  Ghost(),
		},
		{
			name:          "page ending exactly at the end",
			pager:         NewPager().WithLimit(3).WithStart(At(2)),
			expectedItems: []int{3, 4, 5},
			expectedNext:  Ghost(),
		},
		{
			name:          "unlimited",
			pager:         NewPager().WithUnlimited().WithStart(At(1)),
			expectedItems: []int{2, 3, 4, 5},
			expectedNext:  Ghost(),
		},
		{
			name:          "nil pager uses defaults",
			pager:         nil,
			expectedItems: []int{1, 2, 3, 4, 5},
			expectedNext:  Ghost(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVec(items...)

			res, err := Paginate(v, tt.pager)
			require.NoError(t, err)
			require.Equal(t, tt.expectedItems, res.Items)
			require.Equal(t, len(items), res.Total)
			require.Equal(t, tt.pager.GetLimit(), res.AppliedLimit)
			require.Equal(t, tt.expectedNext.Token(), res.NextPageToken)

			// The read cursor is released before returning.
			w, err := v.CursorMut(Ghost())
			require.NoError(t, err)
			w.Release()
		})
	}
}

func Test_Paginate_AllPages(t *testing.T) {
	v := NewVec("a", "b", "c", "d", "e", "f", "g")

	var (
		got   []string
		pages int
		token string
	)
	for {
		p, err := DecodePager(3, token)
		require.NoError(t, err)

		res, err := Paginate(v, p)
		require.NoError(t, err)

		got = append(got, res.Items...)
		pages++
		token = res.NextPageToken
		if token == "" {
			break
		}
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, v.Items(), got)
}

func Test_Paginate_Errors(t *testing.T) {
	v := NewVec(1, 2)

	_, err := Paginate(v, NewPager().WithStart(At(5)))
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	w, err := v.CursorMut(Ghost())
	require.NoError(t, err)
	defer w.Release()

	_, err = Paginate(v, NewPager())
	require.ErrorIs(t, err, ErrBorrowed)
	require.ErrorContains(t, err, "cannot paginate")
}

func Test_Paginate_Empty(t *testing.T) {
	res, err := Paginate(NewVec[int](), NewPager())
	require.NoError(t, err)
	require.Empty(t, res.Items)
	require.Zero(t, res.Total)
	require.Empty(t, res.NextPageToken)
}
