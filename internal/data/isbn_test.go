package data

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISBNChecksum(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		digits string
		expect int
	}{
		"978-0-306-40615-7": {digits: "978030640615", expect: 7},
		"978-1-86197-876-9": {digits: "978186197876", expect: 9},
		"sum divisible by 10": {digits: "978000000020", expect: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, ISBNChecksum(tc.digits))
		})
	}
}

func TestGenerateISBN(t *testing.T) {
	t.Parallel()

	for range 1000 {
		isbn := GenerateISBN()

		require.Len(t, isbn, 13)
		require.True(t, strings.HasPrefix(isbn, "978"), isbn)
		for _, r := range isbn {
			require.True(t, r >= '0' && r <= '9', isbn)
		}

		check, err := strconv.Atoi(isbn[12:])
		require.NoError(t, err)
		require.Equal(t, ISBNChecksum(isbn[:12]), check, isbn)
	}
}
