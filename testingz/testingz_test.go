package testingz

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	v := R(1, nil).NoError(t).Equal(1).V()
	assert.Equal(t, 1, v)

	R(2, nil).NoError(t).Do(func(t *testing.T, it int) {
		assert.Equal(t, 2, it)
	})

	errBoom := errors.New("boom")
	R(0, errBoom).ErrorIs(t, errBoom).Equal(0)
	R("", errBoom).EqualError(t, "boom").Equal("")
}

func TestCollect(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Collect(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, []string{}, Collect(slices.Values([]string(nil))))
}
