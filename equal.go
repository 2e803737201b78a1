// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import "github.com/gaissmai/bst/internal/value"

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[T any] interface {
	Equal(other T) bool
}

// Equal reports whether t and o have the same shape
// and pairwise equal values.
//
// Values implementing [Equaler] decide their equality themselves,
// otherwise [reflect.DeepEqual] is used. Trees holding the same values
// in a different shape, e.g. from another insertion order, are not equal.
// A nil tree equals an empty tree.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	if t == o {
		return true
	}

	if t.Len() != o.Len() {
		return false
	}

	if t.Len() == 0 {
		return true
	}

	type pair struct {
		a, b *node[T]
	}

	stack := []pair{{t.root, o.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}

		if !value.Equal(p.a.val, p.b.val) {
			return false
		}

		stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
	}

	return true
}
