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
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const roundsBucket = "rounds"

// StatsStore keeps finished rounds in a bbolt file. Round ids are version 7
// UUIDs, so the bucket iterates in start order.
type StatsStore struct {
	db *bolt.DB
}

// StatsSummary aggregates every stored round.
type StatsSummary struct {
	Rounds    int
	Completed int
	Guesses   int
	Misses    int
	Par       int
}

// Efficiency is par over guesses for completed play, 1 being perfect.
func (s StatsSummary) Efficiency() float64 {
	if s.Guesses == 0 {
		return 0
	}
	return float64(s.Par) / float64(s.Guesses)
}

func OpenStats(ctx context.Context, path string) (*StatsStore, error) {
	logger := FromContext(ctx)
	logger.Debugw("opening stats db", "path", path)

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening stats db %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(roundsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &StatsStore{db: db}, nil
}

func (s *StatsStore) Close(ctx context.Context) error {
	FromContext(ctx).Debugw("closing stats db")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing stats db: %w", err)
	}
	return nil
}

func (s *StatsStore) Record(ctx context.Context, result RoundResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(roundsBucket)).Put(result.ID[:], data)
	}); err != nil {
		return fmt.Errorf("storing round %s: %w", result.ID, err)
	}
	FromContext(ctx).Infow("round stored", "id", result.ID.String(), "guesses", result.Guesses, "par", result.Par)
	return nil
}

// List returns up to limit rounds, newest first. A limit of 0 returns all.
func (s *StatsStore) List(_ context.Context, limit int) ([]RoundResult, error) {
	var results []RoundResult
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(roundsBucket)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(results) >= limit {
				break
			}
			var result RoundResult
			if err := json.Unmarshal(v, &result); err != nil {
				return fmt.Errorf("decoding round %x: %w", k, err)
			}
			results = append(results, result)
		}
		return nil
	})
	return results, err
}

func (s *StatsStore) Summary(ctx context.Context) (StatsSummary, error) {
	results, err := s.List(ctx, 0)
	if err != nil {
		return StatsSummary{}, err
	}

	var summary StatsSummary
	for _, r := range results {
		summary.Rounds++
		if r.GaveUp {
			continue
		}
		summary.Completed++
		summary.Guesses += r.Guesses
		summary.Misses += r.Misses
		summary.Par += r.Par
	}
	return summary, nil
}

func printStats(ctx context.Context, store *StatsStore, limit int) error {
	results, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	summary, err := store.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("📈 %d rounds played, %d completed\n", summary.Rounds, summary.Completed)
	if summary.Completed > 0 {
		fmt.Printf("🎯 %d guesses for a par of %d (efficiency %.0f%%), %d misses\n\n",
			summary.Guesses, summary.Par, summary.Efficiency()*100, summary.Misses)
	}

	for _, r := range results {
		status := Green + "completed" + Reset
		if r.GaveUp {
			status = Warning + "gave up" + Reset
		}
		fmt.Printf("  %s  %s  found %d/%d  guesses %d  par %d  keys %v\n",
			r.FinishedAt.Local().Format("Mon, 02 Jan 2006 15:04"), status,
			r.Found, len(r.Targets), r.Guesses, r.Par, r.Keys)
	}
	return nil
}
