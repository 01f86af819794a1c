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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/bstguesser/bst"
)

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid key %q: %w", field, err)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// writeTrace inserts keys one by one and writes every rebalance check and
// the resulting tree. Rejected keys are reported and the run goes on. The
// first write error stops the trace.
func writeTrace(w io.Writer, keys []int) error {
	var werr error
	printf := func(format string, args ...any) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, format, args...)
		}
	}

	tree := bst.New(bst.WithObserver(func(s bst.Step) {
		printf("  check key=%d height=%d balance=%d rotation=%s\n", s.Key, s.Height, s.Balance, s.Rotation)
	}))

	for _, key := range keys {
		printf("insert %d\n", key)
		if err := tree.Insert(key); err != nil {
			if !errors.Is(err, bst.ErrRotationPrecondition) {
				return err
			}
			printf("  rejected: %v\n", err)
		}

		states := tree.Snapshot()
		parts := make([]string, len(states))
		for i, s := range states {
			parts[i] = s.String()
		}
		printf("  tree %s\n", strings.Join(parts, " "))
		if werr != nil {
			return werr
		}
	}
	return nil
}
