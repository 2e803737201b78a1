// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/bst/internal/tests/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []int
		want string
	}{
		{"empty", nil, `null`},
		{"single", []int{1}, `{"value":1}`},
		{"sample", []int{5, 3, 8, 1}, `{"value":5,"left":{"value":3,"left":{"value":1}},"right":{"value":8}}`},
		{"duplicates", []int{5, 5}, `{"value":5,"right":{"value":5}}`},
	}

	for _, tt := range tests {
		buf, err := json.Marshal(New(tt.vals...))
		require.NoError(t, err, tt.name)
		assert.JSONEq(t, tt.want, string(buf), tt.name)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(9, 9))

	tree := New(random.Ints(prng, workLoadN(), 200)...)

	buf, err := json.Marshal(tree)
	require.NoError(t, err)

	got := New[int]()
	require.NoError(t, json.Unmarshal(buf, got))
	checkInvariant(t, got)

	assert.True(t, tree.Equal(got))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	t.Parallel()

	// zero value has no comparison function
	var zero Tree[int]
	err := json.Unmarshal([]byte(`{"value":1}`), &zero)
	assert.True(t, errors.Is(err, ErrNoCompare), "got %v", err)

	// 8 can't be left of 5
	tree := New(1, 2)
	err = json.Unmarshal([]byte(`{"value":5,"left":{"value":8}}`), tree)
	assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
	assert.Equal(t, []int{1, 2}, tree.InOrder(), "unchanged on error")

	err = json.Unmarshal([]byte(`{"value":"x"}`), tree)
	assert.Error(t, err)

	// null empties the tree
	require.NoError(t, json.Unmarshal([]byte(`null`), tree))
	assert.Equal(t, 0, tree.Len())
}
