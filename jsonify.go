// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"encoding/json"
	"errors"
)

// ErrShapeMismatch is returned by [Tree.UnmarshalJSON] when the decoded
// shape violates the order of the tree's comparison function.
var ErrShapeMismatch = errors.New("bst: decoded shape does not match the tree order")

// DumpNode contains the value and the children of a node, representing
// the tree in a nested form, especially useful for serialization.
type DumpNode[T any] struct {
	Value T            `json:"value"`
	Left  *DumpNode[T] `json:"left,omitempty"`
	Right *DumpNode[T] `json:"right,omitempty"`
}

// DumpTree returns the tree in nested form, nil for an empty tree.
func (t *Tree[T]) DumpTree() *DumpNode[T] {
	if t == nil || t.root == nil {
		return nil
	}

	type pair struct {
		n *node[T]
		d *DumpNode[T]
	}

	root := &DumpNode[T]{Value: t.root.val}

	stack := []pair{{t.root, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.n.left != nil {
			p.d.Left = &DumpNode[T]{Value: p.n.left.val}
			stack = append(stack, pair{p.n.left, p.d.Left})
		}
		if p.n.right != nil {
			p.d.Right = &DumpNode[T]{Value: p.n.right.val}
			stack = append(stack, pair{p.n.right, p.d.Right})
		}
	}

	return root
}

// MarshalJSON dumps the tree as nested objects, an empty tree as null.
//
//	{"value":5,"left":{"value":3},"right":{"value":8}}
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpTree())
}

// UnmarshalJSON replaces the content of t with the nested objects in data.
//
// t must already have a comparison function, e.g. made by [New], the zero
// value returns [ErrNoCompare]. The values are inserted in pre-order, which
// rebuilds the encoded shape if and only if the shape respects the order,
// otherwise [ErrShapeMismatch] is returned and t is left unchanged.
// A JSON null empties the tree.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	if t.cmp == nil {
		return ErrNoCompare
	}

	var dump *DumpNode[T]
	if err := json.Unmarshal(data, &dump); err != nil {
		return err
	}

	fresh := &Tree[T]{cmp: t.cmp}

	if dump != nil {
		stack := []*DumpNode[T]{dump}
		for len(stack) > 0 {
			d := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			fresh.Insert(d.Value)

			if d.Right != nil {
				stack = append(stack, d.Right)
			}
			if d.Left != nil {
				stack = append(stack, d.Left)
			}
		}
	}

	if !sameShape(fresh.root, dump) {
		return ErrShapeMismatch
	}

	t.root, t.size = fresh.root, fresh.size
	return nil
}

// sameShape reports whether n and d have the same structure.
func sameShape[T any](n *node[T], d *DumpNode[T]) bool {
	type pair struct {
		n *node[T]
		d *DumpNode[T]
	}

	stack := []pair{{n, d}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.n == nil || p.d == nil {
			if (p.n == nil) != (p.d == nil) {
				return false
			}
			continue
		}

		stack = append(stack, pair{p.n.left, p.d.Left}, pair{p.n.right, p.d.Right})
	}

	return true
}
