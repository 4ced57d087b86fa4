package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/urfave/cli"
)

var ErrUnknownKind = errors.New("unknown tree kind")

func newTree(kind string, hint uint32) (Trees.Tree[int, uint32], error) {
	switch kind {
	case "avl":
		return Trees.NewAVL[int, uint32](hint), nil
	case "rb":
		return Trees.NewRB[int, uint32](hint), nil
	case "treap":
		return Trees.NewTreap[int, uint32](hint), nil
	default:
		return nil, fmt.Errorf("%w: %q can only be avl/rb/treap", ErrUnknownKind, kind)
	}
}

// keys from the arguments, or whitespace separated from in when there are none.
func keys(c *cli.Context, in io.Reader) ([]int, error) {
	words := []string(c.Args())
	if len(words) == 0 {
		sc := bufio.NewScanner(in)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			words = append(words, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	a := make([]int, len(words))
	for i, s := range words {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		a[i] = v
	}
	return a, nil
}

// build a tree of the kind flag holding the keys of c.
func build(c *cli.Context, m *metadata) (Trees.Tree[int, uint32], error) {
	a, err := keys(c, m.in)
	if err != nil {
		return nil, err
	}
	tree, err := newTree(c.String("kind"), uint32(len(a)))
	if err != nil {
		return nil, err
	}
	for _, v := range a {
		if !tree.Insert(v) {
			m.log.WithField("key", v).Debug("duplicate key ignored")
		}
	}
	return tree, nil
}
