// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gaissmai/bst"
	"github.com/urfave/cli/v2"
)

var valuesFlag = &cli.StringFlag{
	Name:    "values",
	Usage:   "comma separated int values, appended to the arguments",
	EnvVars: []string{"BST_VALUES"},
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "build a tree and print a traversal",
	ArgsUsage: `<int>...`,
	Flags: []cli.Flag{
		valuesFlag,
		&cli.StringFlag{
			Name:    "order",
			Usage:   "traversal order: in, pre or post",
			Value:   "in",
			EnvVars: []string{"BST_ORDER"},
		},
		&cli.BoolFlag{
			Name:  "shape",
			Usage: "also print the tree shape",
		},
	},
	Action: runPrint,
}

var cmdDelete = &cli.Command{
	Name:      "delete",
	Usage:     "build a tree, delete a key and print the result",
	ArgsUsage: `<int>...`,
	Flags: []cli.Flag{
		valuesFlag,
		&cli.IntFlag{
			Name:  "key",
			Usage: "key to delete",
		},
		&cli.BoolFlag{
			Name:  "root",
			Usage: "delete the root instead of --key",
		},
	},
	Action: runDelete,
}

var cmdJSON = &cli.Command{
	Name:      "json",
	Usage:     "build a tree and print it as JSON",
	ArgsUsage: `<int>...`,
	Flags: []cli.Flag{
		valuesFlag,
	},
	Action: runJSON,
}

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "random insert and delete workload",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of values to insert",
			Value: 100_000,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed of the random generator",
			Value: 42,
		},
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "insert in ascending order, the worst case",
		},
	},
	Action: runBench,
}

// parseValues collects the ints from the args and the --values flag.
func parseValues(cctx *cli.Context) ([]int, error) {
	raw := cctx.Args().Slice()
	if s := cctx.String("values"); s != "" {
		raw = append(raw, strings.Split(s, ",")...)
	}

	vals := make([]int, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", s, err)
		}
		vals = append(vals, v)
	}

	slog.Debug("parsed values", "count", len(vals))
	return vals, nil
}

func runPrint(cctx *cli.Context) error {
	vals, err := parseValues(cctx)
	if err != nil {
		return err
	}

	tree := bst.New(vals...)
	w := cctx.App.Writer

	fmt.Fprintln(w, tree)

	var seq []int
	switch order := cctx.String("order"); order {
	case "in":
		seq = tree.InOrder()
	case "pre":
		seq = tree.PreOrder()
	case "post":
		seq = tree.PostOrder()
	default:
		return fmt.Errorf("unknown traversal order: %q", order)
	}
	fmt.Fprintf(w, "%s-order: %v\n", cctx.String("order"), seq)

	if cctx.Bool("shape") {
		return tree.Fprint(w)
	}

	return nil
}

func runDelete(cctx *cli.Context) error {
	vals, err := parseValues(cctx)
	if err != nil {
		return err
	}

	tree := bst.New(vals...)
	w := cctx.App.Writer

	var found bool
	if cctx.Bool("root") {
		root, _ := tree.Root()
		found = tree.DeleteRoot()
		slog.Info("delete root", "root", root, "found", found)
	} else {
		if !cctx.IsSet("key") {
			return fmt.Errorf("either --key or --root is required")
		}
		key := cctx.Int("key")
		found = tree.Delete(key)
		slog.Info("delete", "key", key, "found", found)
	}

	fmt.Fprintf(w, "found: %v\n", found)
	fmt.Fprintln(w, tree)

	return tree.Fprint(w)
}

func runJSON(cctx *cli.Context) error {
	vals, err := parseValues(cctx)
	if err != nil {
		return err
	}

	buf, err := json.Marshal(bst.New(vals...))
	if err != nil {
		return err
	}

	fmt.Fprintln(cctx.App.Writer, string(buf))
	return nil
}

func runBench(cctx *cli.Context) error {
	n := cctx.Int("n")
	if n < 1 {
		return fmt.Errorf("n must be positive, got %d", n)
	}

	prng := rand.New(rand.NewPCG(cctx.Uint64("seed"), 0))

	vals := prng.Perm(n)
	if cctx.Bool("sorted") {
		for i := range vals {
			vals[i] = i
		}
	}

	tree := bst.New[int]()

	start := time.Now()
	for _, v := range vals {
		tree.Insert(v)
	}
	slog.Info("inserted", "n", n, "height", tree.Height(), "duration", time.Since(start))

	start = time.Now()
	deleted := 0
	for _, v := range vals[:n/2] {
		if tree.Delete(v) {
			deleted++
		}
	}
	slog.Info("deleted", "n", deleted, "height", tree.Height(), "duration", time.Since(start))

	fmt.Fprintf(cctx.App.Writer, "len: %d, height: %d\n", tree.Len(), tree.Height())
	return nil
}
