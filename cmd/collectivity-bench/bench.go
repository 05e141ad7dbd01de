package main

import (
	"context"
	"slices"
	"time"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/adapter/gods"
	"go.llib.dev/collectivity/coldeque"
	"go.llib.dev/collectivity/collist"
	"go.llib.dev/collectivity/colmap"
	"go.llib.dev/collectivity/colslice"
)

// Container is the capability selection the benchmark needs from a collection.
type Container interface {
	collectivity.Insert[int, int]
	collectivity.Len
}

var containers = map[string]func(n int) Container{
	"array":   func(n int) Container { return make(colslice.Array[int], n) },
	"slice":   func(n int) Container { return &colslice.Slice[int]{} },
	"deque":   func(n int) Container { return &coldeque.Deque[int]{} },
	"treemap": func(n int) Container { return gods.NewTreeMap[int, int]() },
	"map":     func(n int) Container { return &colmap.Map[int, int]{} },
	"sync":    func(n int) Container { return &colmap.Sync[int, int]{} },
	"list":    func(n int) Container { return &collist.LinkedList[int]{} },
}

func ContainerNames() []string {
	var names []string
	for name := range containers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type Result struct {
	Container string
	Elapsed   time.Duration
	Len       int
}

// Progress is notified with the number of inserted items since the last call.
type Progress func(delta int)

// progressSteps is how many times a single run reports its progress.
const progressSteps = 100

// Bench fills a fresh container of the named kind with n items.
func Bench(ctx context.Context, name string, n int, progress Progress) (Result, error) {
	mk, ok := containers[name]
	if !ok {
		return Result{}, ErrUnknownContainer.F("%q", name)
	}
	return Fill(ctx, name, mk(n), n, progress)
}

// Fill inserts i -> i for every i in [0, n) into c,
// and reports the length c has afterwards.
// Cancellation is checked between progress steps.
func Fill(ctx context.Context, name string, c Container, n int, progress Progress) (Result, error) {
	step := max(n/progressSteps, 1)

	var reported int
	start := time.Now()
	for i := 0; i < n; i++ {
		c.Insert(i, i)
		if done := i + 1; done%step == 0 || done == n {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			if progress != nil {
				progress(done - reported)
			}
			reported = done
		}
	}
	return Result{
		Container: name,
		Elapsed:   time.Since(start),
		Len:       c.Len(),
	}, nil
}
