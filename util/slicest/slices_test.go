// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"strconv"
	"testing"
)

func TestMapAndReduce(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if len(got) != 3 || got[2] != "3" {
		t.Fatalf("Map = %v", got)
	}
	idx := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if idx[1] != "b1" {
		t.Fatalf("MapI = %v", idx)
	}
	sum := Reduce([]int{1, 2, 3}, func(v, acc int) int { return acc + v })
	if sum != 6 {
		t.Fatalf("Reduce = %d", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("ReduceD = %q", joined)
	}
}
