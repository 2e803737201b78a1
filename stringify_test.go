// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"strings"
	"testing"

	"github.com/gaissmai/bst/internal/tests/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []int
		want string
	}{
		{"empty", nil, "TREE in order {  }"},
		{"single", []int{42}, "TREE in order { 42 }"},
		{"sample", []int{5, 3, 8, 1, 4}, "TREE in order { 1, 3, 4, 5, 8 }"},
		{"duplicates", []int{5, 5}, "TREE in order { 5, 5 }"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.vals...).String(), tt.name)
	}
}

func TestStringStringer(t *testing.T) {
	t.Parallel()
	tree := NewItems(
		random.Student{Grade: 71, Name: "Ada"},
		random.Student{Grade: 42, Name: "Bob"},
	)

	assert.Equal(t, "TREE in order { 42, 71 }", tree.String())
}

func TestFprintPanic(t *testing.T) {
	t.Parallel()
	tree := New(1)

	assert.Panics(t, func() { _ = tree.Fprint(nil) })
}

func TestFprintEmpty(t *testing.T) {
	t.Parallel()
	w := new(strings.Builder)

	require.NoError(t, New[int]().Fprint(w))
	assert.Empty(t, w.String())
}

func TestFprintShape(t *testing.T) {
	t.Parallel()
	tree := New(5, 3, 8, 1, 4)

	w := new(strings.Builder)
	require.NoError(t, tree.Fprint(w))
	out := w.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, tree.Len(), out)

	assert.Equal(t, "5", lines[0])

	// [L] above [R], children below their parent
	assert.Contains(t, lines[1], "[L]")
	assert.Contains(t, lines[1], "3")
	assert.Contains(t, lines[2], "[L]")
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[3], "[R]")
	assert.Contains(t, lines[3], "4")
	assert.Contains(t, lines[4], "[R]")
	assert.Contains(t, lines[4], "8")
}
