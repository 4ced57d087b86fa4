package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var ErrMalformed = errors.New("malformed operation")

// runSeq reads a count N then N operations on a sequence of strings:
// "+ i s" inserts s at i, "- b e" deletes positions b through e inclusive, "? i" prints the
// value at i on its own line.
func runSeq(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	sc := bufio.NewScanner(m.in)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	index := func() (uint32, error) {
		s, ok := next()
		if !ok {
			return 0, ErrMalformed
		}
		i, err := strconv.ParseUint(s, 10, 32)
		return uint32(i), err
	}

	n, err := index()
	if err != nil {
		return fmt.Errorf("operation count: %w", err)
	}
	w := bufio.NewWriter(m.w)
	defer w.Flush()
	s := Trees.NewSeq[string, uint32](n, nil)
	for k := uint32(1); k <= n; k++ {
		op, ok := next()
		if !ok {
			return fmt.Errorf("operation %d: %w: unexpected end of input", k, ErrMalformed)
		}
		i, err := index()
		if err != nil {
			return fmt.Errorf("operation %d: %w", k, err)
		}
		switch op {
		case "+":
			v, ok := next()
			if !ok {
				return fmt.Errorf("operation %d: %w: missing value", k, ErrMalformed)
			}
			err = s.InsertAt(i, v)
		case "-":
			var e uint32
			if e, err = index(); err != nil {
				break
			}
			if e < i {
				err = fmt.Errorf("%w: reversed range %d..%d", ErrMalformed, i, e)
			} else if n := s.Size(); e >= n {
				err = fmt.Errorf("%w: range end %d, size %d", Trees.ErrOutOfRange, e, n)
			} else {
				err = s.Delete(i, e+1)
			}
		case "?":
			var v string
			if v, err = s.At(i); err == nil {
				_, err = fmt.Fprintln(w, v)
			}
		default:
			err = fmt.Errorf("%w: unknown operator %q", ErrMalformed, op)
		}
		if err != nil {
			return fmt.Errorf("operation %d: %w", k, err)
		}
		m.log.WithFields(logrus.Fields{"op": op, "index": i, "size": s.Size()}).Debug("applied")
	}
	return sc.Err()
}
