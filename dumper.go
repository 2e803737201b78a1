// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	nullNode nodeType = iota // empty tree
	leafNode                 // no children
	halfNode                 // exactly one child
	fullNode                 // left and right child
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree[T]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree structure and all the nodes to w, in pre-order.
//
//	### size(3), height(2), leaves(2), half(0), full(1)
//	[FULL] depth: 0 side: - value: 5
//	.[LEAF] depth: 1 side: L value: 3
//	.[LEAF] depth: 1 side: R value: 8
func (t *Tree[T]) dump(w io.Writer) {
	if t == nil {
		return
	}

	s := t.nodeStats()
	fmt.Fprintf(w, "### size(%d), height(%d), leaves(%d), half(%d), full(%d)\n",
		t.Len(), t.Height(), s.leaves, s.halves, s.fulls)

	if t.root == nil {
		return
	}

	type frame struct {
		n     *node[T]
		depth int
		side  string
	}

	stack := []frame{{t.root, 0, "-"}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(w, "%s[%s] depth: %d side: %s value: %v\n",
			strings.Repeat(".", f.depth), f.n.hasType(), f.depth, f.side, f.n.val)

		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1, "R"})
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1, "L"})
		}
	}
}

// hasType returns the nodeType.
func (n *node[T]) hasType() nodeType {
	switch {
	case n == nil:
		return nullNode
	case n.left != nil && n.right != nil:
		return fullNode
	case n.left != nil || n.right != nil:
		return halfNode
	default:
		return leafNode
	}
}

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case nullNode:
		return "NULL"
	case leafNode:
		return "LEAF"
	case halfNode:
		return "HALF"
	case fullNode:
		return "FULL"
	default:
		return "unreachable"
	}
}

// stats, only used for dump, tests and benchmarks
type stats struct {
	nodes  int
	leaves int
	halves int
	fulls  int
}

// nodeStats, count the node types.
func (t *Tree[T]) nodeStats() stats {
	var s stats
	if t == nil || t.root == nil {
		return s
	}

	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.nodes++
		switch n.hasType() {
		case leafNode:
			s.leaves++
		case halfNode:
			s.halves++
		case fullNode:
			s.fulls++
		}

		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}

	return s
}
