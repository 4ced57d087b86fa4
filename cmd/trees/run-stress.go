package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var ErrCorrupt = errors.New("tree invariants broken")

func runStress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	n := c.Int("n")
	if n < 0 {
		return errors.New("n must not be negative")
	}
	kind := c.String("kind")
	tree, err := newTree(kind, uint32(n))
	if err != nil {
		return err
	}
	rg := rand.New(rand.NewSource(c.Int64("seed")))
	log := m.log.WithFields(logrus.Fields{"kind": kind, "n": n})

	start := time.Now()
	for range n {
		tree.Insert(rg.Int())
	}
	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start), "size": tree.Size(), "height": tree.Height(),
	}).Info("insert phase done")
	if tree.Corrupt() {
		log.Error("corrupt after insertions")
		return ErrCorrupt
	}

	all := make([]int, 0, tree.Size())
	tree.InOrder(func(v int) bool {
		all = append(all, v)
		return true
	})
	rg.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	start = time.Now()
	for _, v := range all[:len(all)/2] {
		tree.Delete(v)
	}
	for range n - len(all)/2 {
		tree.Delete(rg.Int())
	}
	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start), "size": tree.Size(), "height": tree.Height(),
	}).Info("delete phase done")
	if tree.Corrupt() {
		log.Error("corrupt after deletions")
		return ErrCorrupt
	}
	_, err = m.w.Write([]byte("ok\n"))
	return err
}
