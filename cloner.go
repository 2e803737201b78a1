// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import "github.com/gaissmai/bst/internal/value"

// Cloner is an interface that enables deep cloning of values of type T.
// If a value implements Cloner[T], [Tree.Clone] uses its Clone method
// to perform deep copies.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns a copy of the tree with the same shape and
// the same comparison function.
//
// Values implementing [Cloner] are deep copied,
// all others are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}

	c := &Tree[T]{cmp: t.cmp, size: t.size}
	if t.root == nil {
		return c
	}

	cloneFn := value.CloneFnFactory[T]()

	type pair struct {
		src, dst *node[T]
	}

	c.root = &node[T]{val: cloneFn(t.root.val)}

	stack := []pair{{t.root, c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.src.left != nil {
			p.dst.left = &node[T]{val: cloneFn(p.src.left.val)}
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = &node[T]{val: cloneFn(p.src.right.val)}
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}

	return c
}
