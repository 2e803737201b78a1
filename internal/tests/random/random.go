// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates seeded test input for the bst package.
package random

import (
	"math/rand/v2"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// Ints returns n pseudo random ints in [0, limit), duplicates possible.
func Ints(prng *rand.Rand, n, limit int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = prng.IntN(limit)
	}
	return out
}

// Perm returns the ints [0, n) in pseudo random order.
func Perm(prng *rand.Rand, n int) []int {
	return prng.Perm(n)
}

// Sorted returns the ints [0, n) ascending,
// the worst case input for an unbalanced tree.
func Sorted(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Student is a record keyed by Grade, the Name is just payload.
// It compares and prints solely by its Grade.
type Student struct {
	Grade int
	Name  string
}

// Less reports whether s has a lower grade than o.
func (s Student) Less(o Student) bool { return s.Grade < o.Grade }

// Equal reports whether s and o have the same grade.
func (s Student) Equal(o Student) bool { return s.Grade == o.Grade }

// String returns the grade.
func (s Student) String() string { return strconv.Itoa(s.Grade) }

// Students returns n students with fake names and grades in [0, 100].
func Students(seed int64, n int) []Student {
	faker := gofakeit.New(seed)

	out := make([]Student, n)
	for i := range out {
		out[i] = Student{
			Grade: faker.IntRange(0, 100),
			Name:  faker.Name(),
		}
	}
	return out
}
