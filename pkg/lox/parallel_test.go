package lox_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bankocr/pkg/lox"
)

func TestParallelMapErr(t *testing.T) {
	rq := require.New(t)

	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}

	var running, peak atomic.Int32

	result, err := lox.ParallelMapErr(context.Background(), 4, input, func(_ context.Context, item, index int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		// Later items finish first.
		time.Sleep(time.Duration(len(input)-index) * 10 * time.Microsecond)

		return item * 2, nil
	})
	rq.NoError(err)
	rq.Len(result, len(input))

	for i, r := range result {
		rq.Equal(i*2, r)
	}

	rq.LessOrEqual(peak.Load(), int32(4))
}

func TestParallelMapErrFailure(t *testing.T) {
	rq := require.New(t)

	errBoom := errors.New("boom")

	result, err := lox.ParallelMapErr(context.Background(), 2, []int{1, 2, 3, 4}, func(_ context.Context, item, _ int) (int, error) {
		if item == 3 {
			return 0, errBoom
		}
		return item, nil
	})
	rq.ErrorIs(err, errBoom)
	rq.Nil(result)
}

func TestParallelMapErrCanceled(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32

	result, err := lox.ParallelMapErr(ctx, 1, []int{1, 2, 3}, func(_ context.Context, item, _ int) (int, error) {
		calls.Add(1)
		return item, nil
	})
	rq.ErrorIs(err, context.Canceled)
	rq.Nil(result)
	rq.Zero(calls.Load())
}

func TestParallelMapErrEmpty(t *testing.T) {
	rq := require.New(t)

	result, err := lox.ParallelMapErr(context.Background(), 0, []int{}, func(_ context.Context, item, _ int) (int, error) {
		return item, nil
	})
	rq.NoError(err)
	rq.Empty(result)
}

func TestParallelMapErrReportsLowestIndex(t *testing.T) {
	rq := require.New(t)

	input := make([]int, 40)
	for i := range input {
		input[i] = i
	}

	for range 50 {
		_, err := lox.ParallelMapErr(context.Background(), 8, input, func(_ context.Context, item, index int) (int, error) {
			switch index {
			case 1:
				// Earlier bad item finishes last.
				time.Sleep(2 * time.Millisecond)
				return 0, fmt.Errorf("entry %d", index+1)
			case 30:
				return 0, fmt.Errorf("entry %d", index+1)
			}
			return item, nil
		})
		rq.EqualError(err, "entry 2")
	}
}
