package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternal(t *testing.T) {
	err := errors.New("pg down")
	require.Equal(t, "Something went wrong!", Internal(err, false).Message)
	require.Equal(t, "pg down", Internal(err, true).Message)
	require.Equal(t, "Something went wrong!", Internal(nil, true).Message)
	require.False(t, Internal(err, true).Success)
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name                       string
		page, limit, total, pages int
	}{
		{"exact pages", 1, 20, 40, 2},
		{"partial last page", 1, 20, 41, 3},
		{"empty listing", 1, 20, 0, 0},
		{"single item", 3, 20, 1, 1},
		{"zero limit", 1, 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			require.Equal(t, tc.page, p.Page)
			require.Equal(t, tc.limit, p.Limit)
			require.Equal(t, tc.total, p.Total)
			require.Equal(t, tc.pages, p.Pages)
		})
	}
}
