// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"iter"
	"slices"
)

// All returns an iterator over all values in ascending order (in-order).
//
// The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}

		var stack []*node[T]

		n := t.root
		for n != nil || len(stack) > 0 {
			// push the left spine
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.val) {
				// early exit
				return
			}

			n = n.right
		}
	}
}

// Backward returns an iterator over all values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}

		var stack []*node[T]

		n := t.root
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.right {
				stack = append(stack, n)
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.val) {
				return
			}

			n = n.left
		}
	}
}

// AllPreOrder returns an iterator over all values in pre-order,
// node before left subtree before right subtree.
//
// Inserting the values in this order into an empty tree
// with the same comparison rebuilds the same shape.
func (t *Tree[T]) AllPreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}

		stack := []*node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.val) {
				return
			}

			// right first, left is popped next
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// AllPostOrder returns an iterator over all values in post-order,
// left subtree before right subtree before node.
func (t *Tree[T]) AllPostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}

		var stack []*node[T]
		var last *node[T] // last yielded node

		n := t.root
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}

			top := stack[len(stack)-1]

			// right subtree not yet visited
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}

			if !yield(top.val) {
				return
			}

			last = top
			stack = stack[:len(stack)-1]
		}
	}
}

// InOrder returns all values in ascending order.
func (t *Tree[T]) InOrder() []T {
	return slices.AppendSeq(make([]T, 0, t.Len()), t.All())
}

// PreOrder returns all values in pre-order, the root value first.
func (t *Tree[T]) PreOrder() []T {
	return slices.AppendSeq(make([]T, 0, t.Len()), t.AllPreOrder())
}

// PostOrder returns all values in post-order, the root value last.
func (t *Tree[T]) PostOrder() []T {
	return slices.AppendSeq(make([]T, 0, t.Len()), t.AllPostOrder())
}
