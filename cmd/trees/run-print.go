package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	tree, err := build(c, m)
	if err != nil {
		return err
	}
	m.log.WithFields(logrus.Fields{
		"kind": c.String("kind"), "size": tree.Size(), "height": tree.Height(),
	}).Info("tree built")
	return tree.Fprint(m.w)
}

func runShape(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	tree, err := build(c, m)
	if err != nil {
		return err
	}
	var sb strings.Builder
	last := -1
	tree.Levels(func(v int, d int) bool {
		if d != last {
			if last >= 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%d:", d)
			last = d
		}
		fmt.Fprintf(&sb, " %d", v)
		return true
	})
	if last >= 0 {
		sb.WriteByte('\n')
	}
	_, err = m.w.Write([]byte(sb.String()))
	return err
}
