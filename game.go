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
	"strconv"
	"time"

	"github.com/cybrota/bstguesser/board"
	"github.com/cybrota/bstguesser/bst"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
	"github.com/willf/bloom"
)

var ErrRoundTooSmall = errors.New("could not grow a tree large enough for the round")

// drawFunc returns a pseudo-random integer in [0, n).
type drawFunc func(n int) int

func fastDraw(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

// Round is one game: a tree, the board it is shown on and the keys the
// player has to find, in order.
type Round struct {
	ID       uuid.UUID
	Tree     *bst.Tree
	Board    *board.Board
	Targets  []int
	Skipped  []int // keys rejected by the rotation precondition
	Par      int   // reveals needed when walking straight to every target
	Started  time.Time
	Finished time.Time

	current int
	guesses int
	misses  int
	found   int
	gaveUp  bool
}

// Outcome describes what a single guess did.
type Outcome struct {
	Key      int
	Fresh    bool
	Match    bool
	Finished bool
}

// RoundResult is the persisted summary of a round.
type RoundResult struct {
	ID         uuid.UUID `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Keys       []int     `json:"keys"`
	Targets    []int     `json:"targets"`
	Found      int       `json:"found"`
	Guesses    int       `json:"guesses"`
	Misses     int       `json:"misses"`
	Par        int       `json:"par"`
	GaveUp     bool      `json:"gave_up"`
}

// NewRound grows a random tree of distinct keys and picks the targets.
// Keys whose insertion trips the rotation precondition are skipped.
func NewRound(ctx context.Context, config GameConfig, geom board.Geometry, draw drawFunc) (*Round, error) {
	logger := FromContext(ctx)

	tree := bst.New(bst.WithObserver(func(s bst.Step) {
		logger.Debugw("rebalance check",
			"key", s.Key, "height", s.Height, "balance", s.Balance, "rotation", s.Rotation.String())
	}))

	if config.MinKey >= config.MaxKey || uint64(config.MaxKey)-uint64(config.MinKey) >= math.MaxUint32 {
		return nil, fmt.Errorf("key range %d..%d cannot be drawn from", config.MinKey, config.MaxKey)
	}
	span := config.MaxKey - config.MinKey + 1
	// Wide ranges rarely repeat a key, so the attempts and the filter are
	// bounded by the tree size rather than by the range.
	maxAttempts := min(span, config.TreeSize*16) * 4
	seen := bloom.NewWithEstimates(uint(max(maxAttempts, 1)), 0.001)
	var skipped []int

	for attempts := 0; tree.Len() < config.TreeSize && attempts < maxAttempts; attempts++ {
		key := config.MinKey + draw(span)
		if seen.TestAndAdd([]byte(strconv.Itoa(key))) {
			continue
		}
		if err := tree.Insert(key); err != nil {
			if !errors.Is(err, bst.ErrRotationPrecondition) {
				return nil, fmt.Errorf("inserting %d: %w", key, err)
			}
			logger.Debugw("key skipped", "key", key, "error", err)
			skipped = append(skipped, key)
		}
	}

	if tree.Len() < config.Targets {
		return nil, fmt.Errorf("%w: %d nodes for %d targets", ErrRoundTooSmall, tree.Len(), config.Targets)
	}

	r := assembleRound(tree, geom, config.Targets, draw)
	r.Skipped = skipped
	logger.Infow("round ready", "id", r.ID.String(), "keys", tree.Keys(), "nodes", tree.Len(), "targets", r.Targets)
	return r, nil
}

// assembleRound picks count distinct targets among the reachable nodes.
func assembleRound(tree *bst.Tree, geom board.Geometry, count int, draw drawFunc) *Round {
	b := board.New(tree, geom)
	nodes := b.Nodes()
	count = min(count, len(nodes))

	for i := 0; i < count; i++ {
		j := i + draw(len(nodes)-i)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	targets := make([]int, count)
	par := 0
	for i, n := range nodes[:count] {
		targets[i] = n.Key()
		_, depth, _ := tree.Find(n.Key())
		par += depth + 1
	}

	return &Round{
		ID:      uuid.Must(uuid.NewV7()),
		Tree:    tree,
		Board:   b,
		Targets: targets,
		Par:     par,
		Started: time.Now(),
	}
}

// Target returns the key the player is looking for.
func (r *Round) Target() (int, bool) {
	if r.Done() {
		return 0, false
	}
	return r.Targets[r.current], true
}

// Progress returns how many targets were found out of the total.
func (r *Round) Progress() (found, total int) {
	return r.found, len(r.Targets)
}

func (r *Round) Guesses() int { return r.guesses }

func (r *Round) Misses() int { return r.misses }

func (r *Round) Done() bool {
	return !r.Finished.IsZero()
}

// Guess clicks the board at (x, y). ok is false when the round is over or
// the point hits no node.
func (r *Round) Guess(x, y int) (Outcome, bool) {
	target, ok := r.Target()
	if !ok {
		return Outcome{}, false
	}
	n, fresh := r.Board.Click(x, y, target)
	if n == nil {
		return Outcome{}, false
	}
	return r.score(n, target, fresh), true
}

// GuessNode reveals n. Only fresh reveals count as guesses. Revealing the
// target moves on to the next one and the last target ends the round.
func (r *Round) GuessNode(n *bst.Node) Outcome {
	target, ok := r.Target()
	if !ok {
		return Outcome{Key: n.Key()}
	}
	return r.score(n, target, r.Board.Reveal(n, target))
}

func (r *Round) score(n *bst.Node, target int, fresh bool) Outcome {
	out := Outcome{Key: n.Key(), Fresh: fresh, Match: n.Key() == target}
	if out.Fresh {
		r.guesses++
		if !out.Match {
			r.misses++
		}
	}
	if out.Match {
		r.Board.Cell(n).Mark = board.Match
		r.found++
		r.current++
		if r.current >= len(r.Targets) {
			r.finish(false)
			out.Finished = true
		}
	}
	return out
}

// GiveUp ends the round and exposes the whole tree.
func (r *Round) GiveUp() {
	if !r.Done() {
		r.finish(true)
	}
}

func (r *Round) finish(gaveUp bool) {
	r.gaveUp = gaveUp
	r.Finished = time.Now()
	r.Board.RevealAll()
}

func (r *Round) Result() RoundResult {
	return RoundResult{
		ID:         r.ID,
		StartedAt:  r.Started,
		FinishedAt: r.Finished,
		Keys:       r.Tree.Keys(),
		Targets:    append([]int(nil), r.Targets...),
		Found:      r.found,
		Guesses:    r.guesses,
		Misses:     r.misses,
		Par:        r.Par,
		GaveUp:     r.gaveUp,
	}
}
