package gflow

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/KumKeeHyun/gflow/options/pipe"
)

func genericFilterMap(s []int) []int {
	res := make([]int, 0, len(s))
	for _, v := range s {
		if v%2 == 0 {
			res = append(res, v*2)
		}
	}
	return res
}

func flowFilterMap(s []int, opts ...pipe.Option) []int {
	f := FromSlice(s).
		Filter(func(i int) bool {
			return i%2 == 0
		}).
		Map(func(_ context.Context, i int) int {
			return i * 2
		})
	if len(opts) > 0 {
		f = f.Pipe(opts...)
	}
	res, _ := ToSlice(context.Background(), f)
	return res
}

func flowMapOnError10Times(s []int) error {
	f := New(func(ctx context.Context, emit Collector[int]) error {
		if err := FromSlice(s).Collect(ctx, emit); err != nil {
			return err
		}
		return errors.New("e0")
	})
	for i := 0; i < 10; i++ {
		f = f.MapOnError(func(err error) error { return err })
	}
	return f.Collect(context.Background(), func(context.Context, int) error { return nil })
}

func randIntSlice(size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = rand.Int()
	}
	return s
}

func BenchmarkGenericSize1000(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := randIntSlice(1000)
		b.StartTimer()
		genericFilterMap(s)
	}
}

func BenchmarkFlowSize1000(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := randIntSlice(1000)
		b.StartTimer()
		flowFilterMap(s)
	}
}

func BenchmarkFlowPipeSize1000(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := randIntSlice(1000)
		b.StartTimer()
		flowFilterMap(s, pipe.WithBufferedChan(64))
	}
}

func BenchmarkFlowMapOnError10TimesSize1000(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := randIntSlice(1000)
		b.StartTimer()
		_ = flowMapOnError10Times(s)
	}
}

func BenchmarkResumeOnErrorSize1000(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := randIntSlice(1000)
		b.StartTimer()
		_, _ = ToSlice(context.Background(), FromSlice(s).ResumeOnError(func() error {
			return errors.New("forced")
		}))
	}
}
