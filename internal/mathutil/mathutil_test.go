package mathutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		pow int
		res int
	}{
		{0, 1},
		{1, 10},
		{2, 100},
		{9, 1000000000},
		{-1, 0},
		{-100, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Pow10(test.pow))
		})
	}
	// past the table the factors keep multiplying together.
	a.Equal(Pow10(9)*Pow10(4), Pow10(13))
	a.Equal(Pow10(9)*Pow10(9), Pow10(18))
}
