package utils

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CPU-commits/LMS_Backend/res"
)

func TestConcurrencyRunsAll(t *testing.T) {
	var counter int64

	errRes := Concurrency(4, 20, func(index int) *res.ErrorRes {
		atomic.AddInt64(&counter, 1)
		return nil
	})

	assert.Nil(t, errRes)
	assert.Equal(t, int64(20), counter)
}

func TestConcurrencyReturnsError(t *testing.T) {
	errRes := Concurrency(2, 10, func(index int) *res.ErrorRes {
		if index == 5 {
			return &res.ErrorRes{
				Err:        fmt.Errorf("boom"),
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		return nil
	})

	assert.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)
	assert.EqualError(t, errRes.Err, "boom")
}

func TestConcurrencyZeroCount(t *testing.T) {
	errRes := Concurrency(1, 0, func(index int) *res.ErrorRes {
		t.Fatal("should not run")
		return nil
	})
	assert.Nil(t, errRes)
}
