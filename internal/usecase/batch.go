package usecase

import (
	"context"
	"sync"
)

// Step is one named remote call inside a refresh batch.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// FetchInto adapts a typed fetcher into a Step that stores its result
// through dst.
func FetchInto[T any](name string, dst **T, fetch func(ctx context.Context) (*T, error)) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context) error {
			v, err := fetch(ctx)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
	}
}

// RunBatch fans the steps out concurrently and joins them all. It always
// waits for every step so a batch's writes never outlive the call, and
// returns the first error in completion order (nil when all succeed).
func RunBatch(ctx context.Context, steps ...Step) error {
	type item struct {
		name string
		err  error
	}
	ch := make(chan item, len(steps))
	var wg sync.WaitGroup

	for _, s := range steps {
		wg.Add(1)
		go func(s Step) {
			defer wg.Done()
			ch <- item{s.Name, s.Run(ctx)}
		}(s)
	}

	go func() { wg.Wait(); close(ch) }()

	var first error
	for it := range ch {
		if it.err != nil && first == nil {
			first = it.err
		}
	}
	return first
}
