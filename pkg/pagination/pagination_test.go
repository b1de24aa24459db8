package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_CalculateOffsetLimit(t *testing.T) {
	offset, limit := Params{Page: 3, PageSize: 10}.CalculateOffsetLimit()
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	offset, limit = Params{Page: 1}.CalculateOffsetLimit()
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, limit)
}

func TestParams_BuildMeta(t *testing.T) {
	assert.Equal(t, Meta{Page: 2, PageSize: 2, TotalItems: 5, TotalPages: 3}, Params{Page: 2, PageSize: 2}.BuildMeta(5))
	assert.Equal(t, Meta{Page: 1, TotalItems: 5}, Params{Page: 1}.BuildMeta(5))
}

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name   string
		params Params
		want   []string
	}{
		{name: "everything", params: Params{Page: 1}, want: items},
		{name: "first page", params: Params{Page: 1, PageSize: 2}, want: []string{"a", "b"}},
		{name: "last partial page", params: Params{Page: 3, PageSize: 2}, want: []string{"e"}},
		{name: "past the end", params: Params{Page: 4, PageSize: 2}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(items, tt.params)
			assert.Equal(t, tt.want, got.Items)
			assert.Equal(t, len(items), got.Meta.TotalItems)
		})
	}
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr error
	}{
		{name: "defaults", query: "", want: Params{Page: 1}},
		{name: "page and size", query: "page=3&pageSize=20", want: Params{Page: 3, PageSize: 20}},
		{name: "zero page", query: "page=0", wantErr: ErrInvalidPage},
		{name: "word page", query: "page=two", wantErr: ErrInvalidPage},
		{name: "negative size", query: "pageSize=-1", wantErr: ErrInvalidPageSize},
		{name: "size above cap", query: "pageSize=501", wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qp, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			got, err := FromQuery(qp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
