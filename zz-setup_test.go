// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// checkInvariant walks the whole tree and verifies the ordering
// invariant and the size. On failure the tree is dumped.
func checkInvariant[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()

	if tree.root == nil {
		if tree.size != 0 {
			t.Fatalf("empty tree with size %d", tree.size)
		}
		return
	}

	// every node has an exclusive upper bound from left turns
	// and an inclusive lower bound from right turns
	type frame struct {
		n      *node[T]
		lo, hi *node[T]
	}

	count := 0
	stack := []frame{{n: tree.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if f.lo != nil && tree.cmp(f.n.val, f.lo.val) < 0 {
			t.Fatalf("%v is left of lower bound %v\n%s", f.n.val, f.lo.val, tree.dumpString())
		}
		if f.hi != nil && tree.cmp(f.n.val, f.hi.val) >= 0 {
			t.Fatalf("%v is not less than upper bound %v\n%s", f.n.val, f.hi.val, tree.dumpString())
		}

		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.lo, f.n})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.n, f.hi})
		}
	}

	if count != tree.size {
		t.Fatalf("counted %d nodes, size is %d\n%s", count, tree.size, tree.dumpString())
	}
}

// dumpVals for failure messages.
func dumpVals(vals ...any) string {
	return spew.Sdump(vals...)
}

// #########################################################

// tests for deep copies with Cloner interface
type MyInt int

// implement the Cloner interface
func (i *MyInt) Clone() *MyInt {
	a := *i
	return &a
}
