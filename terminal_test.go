package gflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KumKeeHyun/gflow/options/sink"
	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, err := First(context.Background(), Of(7, 8))
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = First(context.Background(), Empty[int]())
	assert.ErrorIs(t, err, ErrNoElements)

	boom := errors.New("boom")
	_, err = First(context.Background(), Error[int](func() error { return boom }))
	assert.Same(t, boom, err)
}

func TestTo(t *testing.T) {
	out, errc := To(context.Background(), Of(1, 2, 3))

	res, err := Results(out, errc)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res)
}

func TestTo_Failure(t *testing.T) {
	boom := errors.New("boom")
	out, errc := To(context.Background(), Of(1).ResumeOnError(func() error { return boom }), sink.WithBufferedChan(1))

	res, err := Results(out, errc)
	assert.Same(t, boom, err)
	assert.Empty(t, res)
}

func TestTo_BufferedChan(t *testing.T) {
	out, errc := To(context.Background(), Of(1, 2, 3), sink.WithBufferedChan(3))

	assert.NoError(t, <-errc)
	res := make([]int, 0)
	for v := range out {
		res = append(res, v)
	}
	assert.Equal(t, []int{1, 2, 3}, res)
}

func TestTo_Timeout(t *testing.T) {
	out, errc := To(context.Background(), Of(1, 2), sink.WithTimeout(5*time.Millisecond))

	time.Sleep(50 * time.Millisecond)
	res, err := Results(out, errc)
	assert.ErrorIs(t, err, ErrSinkTimeout)
	assert.Empty(t, res)
}

func TestTo_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out, errc := To(ctx, FromChan(make(chan int)))

	cancel()
	res, err := Results(out, errc)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res)
}
