package pairkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NissanXoX/LinkApp/internal/utils/pairkey"
)

func TestForIsOrderIndependent(t *testing.T) {
	assert.Equal(t, "2_10", pairkey.For(10, 2))
	assert.Equal(t, "2_10", pairkey.For(2, 10))
}

func TestSplit(t *testing.T) {
	a, b, err := pairkey.Split("2_10")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), a)
	assert.Equal(t, uint64(10), b)

	_, _, err = pairkey.Split("10_2")
	assert.Error(t, err, "non-canonical order must be rejected")

	_, _, err = pairkey.Split("nope")
	assert.Error(t, err)
}

func TestOther(t *testing.T) {
	other, ok := pairkey.Other("2_10", 2)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), other)

	other, ok = pairkey.Other("2_10", 10)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), other)

	_, ok = pairkey.Other("2_10", 7)
	assert.False(t, ok)
}
