// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bst provides a generic, unbalanced binary search tree.
//
// A [Tree] stores values of any type with a consistent total order:
//
//   - [New]:      primitive keys, ordered by [cmp.Compare]
//   - [NewItems]: user defined records implementing [Item]
//   - [NewFunc]:  any type with a three-way comparison function
//
// Duplicates are kept, an equal value is always placed in the right
// subtree. The tree is never rebalanced, its height depends solely on the
// insertion order: sorted input degenerates to a list, random input gives
// logarithmic height on average.
//
// Values are visited in-order (ascending), pre-order (root first) or
// post-order (root last), either eagerly as slices or lazily with
// range-over-func iterators. All traversals use an explicit stack, the
// depth of a degenerated tree is no problem.
//
// A Tree is not safe for concurrent use. Callers must serialize access,
// e.g. with a [sync.RWMutex] around the whole tree.
package bst
