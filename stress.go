// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cybrota/bstguesser/bst"
	"golang.org/x/sync/errgroup"
)

type StressOptions struct {
	Runs    int
	Size    int
	MinKey  int
	MaxKey  int
	Workers int
}

// StressReport counts how often random insertion sequences hit the rotation
// precondition and how many keys rotations dropped from the trees.
type StressReport struct {
	Runs         int
	FailedRuns   int
	Rejected     int
	Accepted     int
	Lost         int
	FirstFailure []int
}

func (r StressReport) FailureRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.FailedRuns) / float64(r.Runs)
}

// runStress builds opts.Runs independent trees concurrently. Each worker owns
// its tree; only the counters are shared. progress is called once per run.
func runStress(ctx context.Context, opts StressOptions, draw drawFunc, progress func()) (StressReport, error) {
	if opts.Runs < 1 || opts.Size < 1 || opts.MinKey >= opts.MaxKey {
		return StressReport{}, fmt.Errorf("invalid stress options %+v", opts)
	}
	if uint64(opts.MaxKey)-uint64(opts.MinKey) >= math.MaxUint32 {
		return StressReport{}, fmt.Errorf("key range %d..%d is too wide to draw from", opts.MinKey, opts.MaxKey)
	}

	var (
		failedRuns, rejected, accepted, lost atomic.Int64
		mu                                   sync.Mutex
		firstFailure                         []int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	span := opts.MaxKey - opts.MinKey + 1
	for run := 0; run < opts.Runs; run++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			keys := make([]int, opts.Size)
			for i := range keys {
				keys[i] = opts.MinKey + draw(span)
			}

			tree := bst.New()
			failed := false
			for i, key := range keys {
				if err := tree.Insert(key); err != nil {
					if !errors.Is(err, bst.ErrRotationPrecondition) {
						return err
					}
					rejected.Add(1)
					if !failed {
						mu.Lock()
						if firstFailure == nil {
							firstFailure = append([]int(nil), keys[:i+1]...)
						}
						mu.Unlock()
					}
					failed = true
				}
			}

			if failed {
				failedRuns.Add(1)
			}
			accepted.Add(int64(len(tree.Keys())))
			lost.Add(int64(len(tree.Keys()) - tree.Len()))
			if progress != nil {
				progress()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return StressReport{}, err
	}

	return StressReport{
		Runs:         opts.Runs,
		FailedRuns:   int(failedRuns.Load()),
		Rejected:     int(rejected.Load()),
		Accepted:     int(accepted.Load()),
		Lost:         int(lost.Load()),
		FirstFailure: firstFailure,
	}, nil
}
