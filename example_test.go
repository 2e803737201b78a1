// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bst_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gaissmai/bst"
)

// Student is keyed by its grade, the name is just payload.
type Student struct {
	Grade int
	Name  string
}

func (s Student) Less(o Student) bool { return s.Grade < o.Grade }
func (s Student) Equal(o Student) bool { return s.Grade == o.Grade }
func (s Student) String() string { return strconv.Itoa(s.Grade) }

func ExampleNew() {
	tree := bst.New(5, 3, 8, 1, 4)

	fmt.Println(tree)
	fmt.Println("in:  ", tree.InOrder())
	fmt.Println("pre: ", tree.PreOrder())
	fmt.Println("post:", tree.PostOrder())

	// Output:
	// TREE in order { 1, 3, 4, 5, 8 }
	// in:   [1 3 4 5 8]
	// pre:  [5 3 1 4 8]
	// post: [1 4 3 8 5]
}

func ExampleTree_Delete() {
	tree := bst.New(5, 3, 8, 1, 4)

	fmt.Println(tree.Delete(3))
	fmt.Println(tree.Delete(3))
	fmt.Println(tree.InOrder())
	fmt.Println(tree.PreOrder())

	// Output:
	// true
	// false
	// [1 4 5 8]
	// [5 4 1 8]
}

func ExampleTree_DeleteRoot() {
	tree := bst.New(42)

	fmt.Println(tree.DeleteRoot())

	root, ok := tree.Root()
	fmt.Println(root, ok)
	fmt.Println(tree.DeleteRoot())

	// Output:
	// true
	// 0 false
	// false
}

func ExampleNewItems() {
	tree := bst.NewItems(
		Student{Grade: 87, Name: "Grace"},
		Student{Grade: 72, Name: "Alan"},
		Student{Grade: 95, Name: "Ada"},
		Student{Grade: 72, Name: "Edsger"},
	)

	fmt.Println(tree)
	fmt.Println(tree.Contains(Student{Grade: 95}))

	for s := range tree.All() {
		fmt.Printf("%d %s\n", s.Grade, s.Name)
	}

	// Output:
	// TREE in order { 72, 72, 87, 95 }
	// true
	// 72 Alan
	// 72 Edsger
	// 87 Grace
	// 95 Ada
}

func ExampleNewFunc() {
	caseless := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}

	tree := bst.NewFunc(caseless, "beta", "Alpha", "gamma")

	fmt.Println(tree)
	fmt.Println(tree.Contains("GAMMA"))

	// Output:
	// TREE in order { Alpha, beta, gamma }
	// true
}
