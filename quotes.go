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
	"github.com/valyala/fastrand"
)

var cheers = []string{
	"Found it!",
	"Straight to the target",
	"Nice descent",
	"That key never stood a chance",
	"Binary search, but make it fun",
	"Left, right, done",
}

var nudges = []string{
	"Not that one",
	"Rotations move keys around, keep looking",
	"Try the other side",
	"Close, maybe",
	"Heights can lie, keys don't",
	"Keep descending",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[fastrand.Uint32n(uint32(len(list)))]
}

func GetCheer() string {
	return pickRandomString(cheers)
}

func GetNudge() string {
	return pickRandomString(nudges)
}
