// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrNotInTree is returned when a node is not reachable from the root.
	ErrNotInTree = errors.New("bst: node not in tree")

	// ErrNoCompare is returned or raised when a tree without comparison
	// function is written, e.g. the zero value of [Tree].
	ErrNoCompare = errors.New("bst: tree has no comparison function, use New, NewFunc or NewItems")
)

// Item is the capability set a user defined record must provide
// to be stored in a tree created by [NewItems].
//
// Less and Equal must define a consistent total order,
// String is used by [Tree.String] and [Tree.Fprint].
// Greater is derived as b.Less(a).
type Item[T any] interface {
	Less(other T) bool
	Equal(other T) bool
	fmt.Stringer
}

// Tree is an unbalanced binary search tree with values of type T.
//
// All values in the left subtree of a node compare strictly less than the
// node's value, all values in the right subtree compare greater or equal.
//
// The zero value has no comparison function, it can be read but not
// written. A nil *Tree, like a nil Go map, can be read as well.
type Tree[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
	size int
}

// node, the children are exclusively owned, there are no parent pointers.
type node[T any] struct {
	left  *node[T]
	right *node[T]
	val   T
}

// New returns a tree for ordered primitive types, the optional vals are
// inserted in the given order.
func New[T cmp.Ordered](vals ...T) *Tree[T] {
	return NewFunc(cmp.Compare[T], vals...)
}

// NewItems returns a tree for records implementing [Item], the optional
// vals are inserted in the given order.
func NewItems[T Item[T]](vals ...T) *Tree[T] {
	return NewFunc(compareItems[T], vals...)
}

// NewFunc returns a tree ordered by the three-way comparison function compare,
// the optional vals are inserted in the given order.
//
// compare(a, b) must return a negative number when a < b,
// zero when a == b and a positive number when a > b.
// If compare is nil, NewFunc panics.
func NewFunc[T any](compare func(a, b T) int, vals ...T) *Tree[T] {
	if compare == nil {
		panic(ErrNoCompare)
	}

	t := &Tree[T]{cmp: compare}
	for _, val := range vals {
		t.Insert(val)
	}

	return t
}

// compareItems adapts the Item methods to a three-way comparison.
func compareItems[T Item[T]](a, b T) int {
	switch {
	case a.Equal(b):
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds val to the tree. Duplicates are not rejected,
// an equal value descends always to the right.
// Inserting into a tree without comparison function panics.
func (t *Tree[T]) Insert(val T) {
	if t.cmp == nil {
		panic(ErrNoCompare)
	}

	n := &node[T]{val: val}
	t.size++

	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if t.cmp(val, cur.val) < 0 {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
			continue
		}

		// equal or greater
		if cur.right == nil {
			cur.right = n
			return
		}
		cur = cur.right
	}
}

// Contains reports whether a value equal to key is stored in the tree.
func (t *Tree[T]) Contains(key T) bool {
	return t.search(key) != nil
}

// search returns the first node on the descent path equal to key, or nil.
func (t *Tree[T]) search(key T) *node[T] {
	if t == nil {
		return nil
	}

	n := t.root
	for n != nil {
		c := t.cmp(key, n.val)
		if c == 0 {
			return n
		}

		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	return nil
}

// Root returns the value at the root, ok is false for an empty tree.
func (t *Tree[T]) Root() (val T, ok bool) {
	if t == nil || t.root == nil {
		return
	}
	return t.root.val, true
}

// Min returns the smallest value, ok is false for an empty tree.
func (t *Tree[T]) Min() (val T, ok bool) {
	if t == nil || t.root == nil {
		return
	}
	return t.root.leftmost().val, true
}

// Max returns the largest value, ok is false for an empty tree.
// With duplicates the last inserted one is returned.
func (t *Tree[T]) Max() (val T, ok bool) {
	if t == nil || t.root == nil {
		return
	}
	return t.root.rightmost().val, true
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}

	height := 0

	// level by level, no recursion
	level := []*node[T]{t.root}
	for len(level) > 0 {
		height++

		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return height
}

// Delete removes one value equal to key from the tree and reports
// whether such a value was present.
//
// A key equal to the root value always removes the root node.
func (t *Tree[T]) Delete(key T) bool {
	if t == nil || t.root == nil {
		return false
	}

	if t.cmp(key, t.root.val) == 0 {
		return t.DeleteRoot()
	}

	n := t.search(key)
	if n == nil {
		return false
	}

	parent, err := t.parentOf(n)
	if err != nil {
		// n was found by search on this tree, the order must be broken
		panic(err)
	}

	t.unlink(n, parent)
	return true
}

// DeleteRoot removes the root node, it returns false for an empty tree.
func (t *Tree[T]) DeleteRoot() bool {
	if t == nil || t.root == nil {
		return false
	}

	t.unlink(t.root, nil)
	return true
}

// unlink removes n from the tree, parent is nil if n is the root.
//
// A node with two children is replaced by its in-order successor,
// the left-most node of its right subtree.
func (t *Tree[T]) unlink(n, parent *node[T]) {
	var repl *node[T]

	switch {
	case n.left == nil:
		// leaf or only a right child
		repl = n.right

	case n.right == nil:
		repl = n.left

	default:
		succ := n.right.leftmost()

		// the successor sits deeper than n.right, detach it
		// and close the gap with its right subtree
		if succ != n.right {
			succParent, err := t.parentOf(succ)
			if err != nil {
				panic(err)
			}

			succParent.left = succ.right
			succ.right = n.right
		}

		// succ has no left child by construction
		succ.left = n.left
		repl = succ
	}

	t.replaceChild(parent, n, repl)

	n.left, n.right = nil, nil
	t.size--
}

// replaceChild puts repl into the child slot of parent holding old,
// a nil parent means the root.
func (t *Tree[T]) replaceChild(parent, old, repl *node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

// parentOf returns the parent of n, nil for the root.
//
// The parent is derived, not stored: walk down from the root with the
// branching rule of search until a child of the visited node is n by
// identity. Equal values may be stored in distinct nodes, so comparing
// values is not enough to stop.
func (t *Tree[T]) parentOf(n *node[T]) (*node[T], error) {
	if n == t.root {
		return nil, nil
	}

	cur := t.root
	for cur != nil {
		if cur.left == n || cur.right == n {
			return cur, nil
		}

		if t.cmp(n.val, cur.val) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return nil, fmt.Errorf("parent lookup for %v: %w", n.val, ErrNotInTree)
}

// leftmost returns the node with the smallest value in the subtree at n.
func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the node with the largest value in the subtree at n.
func (n *node[T]) rightmost() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
