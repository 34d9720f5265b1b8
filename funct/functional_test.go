package funct

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	nums := []int{1, 2, 3}

	assert.True(t, Some(nums, func(x int) bool { return x == 2 }))
	assert.False(t, Some(nums, func(x int) bool { return x == 4 }))
	assert.False(t, Some([]int{}, func(x int) bool { return true }))
}

func TestIndex(t *testing.T) {
	words := []string{"a", "b", "c"}

	assert.Equal(t, 1, Index(words, func(x string) bool { return x == "b" }))
	assert.Equal(t, -1, Index(words, func(x string) bool { return x == "z" }))
}

func TestMap(t *testing.T) {
	nums := []int{1, 2, 3}

	doubled, err := Map(nums, func(x int) (int, error) {
		return x * 2, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, doubled)

	_, err = Map(nums, func(x int) (string, error) {
		if x == 2 {
			return "", fmt.Errorf("no twos")
		}
		return strconv.Itoa(x), nil
	})
	assert.Error(t, err)
}
