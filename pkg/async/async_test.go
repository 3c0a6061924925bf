package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/imic/pkg/async"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fs := async.Async(ctx, 42, func(_ context.Context, n int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("number %d", n), nil
	})
	fb := async.Go(ctx, func(context.Context) (bool, error) { return true, nil })

	s, err := fs.Await()
	require.NoError(t, err)
	assert.Equal(t, "number 42", s)

	b, err := fb.Await()
	require.NoError(t, err)
	assert.True(t, b)
	assert.True(t, fs.IsComplete())
}

func TestAsync_CanceledContextSkipsFunction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := async.Go(ctx, func(context.Context) (int, error) {
		called = true
		return 1, nil
	}).Await()

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAsync_Panic(t *testing.T) {
	t.Parallel()

	v, err := async.Go(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	}).Await()

	assert.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Zero(t, v)
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())

	close(release)
	v, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	f := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }
	res, err := async.WaitAll(async.Async(ctx, 1, double), async.Async(ctx, 2, double))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, res)

	_, err = async.WaitAll(
		async.Async(ctx, 1, double),
		async.Go(ctx, func(context.Context) (int, error) { return 0, boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestSettle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	results := async.Settle(
		async.Go(ctx, func(context.Context) (string, error) { return "", boom }),
		async.Go(ctx, func(context.Context) (string, error) {
			time.Sleep(10 * time.Millisecond)
			return "ok", nil
		}),
	)

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "ok", results[1].Value)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, _, err := async.WaitAny[int]()
	assert.ErrorIs(t, err, async.ErrNoFutures)

	slow := async.Go(ctx, func(context.Context) (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})
	fast := async.Go(ctx, func(context.Context) (int, error) { return 2, nil })

	idx, v, err := async.WaitAny(slow, fast)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, v)

	_, _ = slow.Await()
}
