// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns the values in ascending order, each formatted
// with its default format, e.g.
//
//	TREE in order { 1, 3, 4, 5, 8 }
func (t *Tree[T]) String() string {
	w := new(strings.Builder)
	w.WriteString("TREE in order { ")

	first := true
	for val := range t.All() {
		if !first {
			w.WriteString(", ")
		}
		first = false

		fmt.Fprint(w, val)
	}

	w.WriteString(" }")
	return w.String()
}

// Fprint writes a hierarchical diagram of the tree shape to w,
// each child marked as left [L] or right [R] child.
// An empty tree writes nothing. If w is nil, Fprint panics.
//
//	5
//	├── [L]  3
//	│   ├── [L]  1
//	│   └── [R]  4
//	└── [R]  8
func (t *Tree[T]) Fprint(w io.Writer) error {
	if w == nil {
		panic(errors.New("bst: Fprint called with nil io.Writer"))
	}

	if t == nil || t.root == nil {
		return nil
	}

	diagram := treeprint.NewWithRoot(fmt.Sprint(t.root.val))

	type frame struct {
		n      *node[T]
		branch treeprint.Tree
	}

	stack := []frame{{t.root, diagram}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// both kids are added here, [L] always above [R]
		if l := f.n.left; l != nil {
			stack = append(stack, frame{l, f.branch.AddMetaBranch("L", fmt.Sprint(l.val))})
		}
		if r := f.n.right; r != nil {
			stack = append(stack, frame{r, f.branch.AddMetaBranch("R", fmt.Sprint(r.val))})
		}
	}

	_, err := io.WriteString(w, diagram.String())
	return err
}
