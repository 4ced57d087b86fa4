package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type metadata struct {
	log *logrus.Logger
	in  io.Reader
	w   io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var kindFlag = cli.StringFlag{
	Name:  "kind, k",
	Value: "avl",
	Usage: " balancing `KIND` [avl|rb|treap]",
}

func newApp(in io.Reader, w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "trees"
	app.Usage = "exercise the balanced search trees"
	app.Version = version
	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level, l",
			Value:  "warning",
			Usage:  " logging `LEVEL` [debug|info|warning|error]",
			EnvVar: "TREES_LOG_LEVEL",
		},
		cli.BoolFlag{
			Name:  "log-json",
			Usage: " log as JSON instead of text",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "insert integer keys and print them in order",
			ArgsUsage: "[KEY...] (read from stdin when absent)",
			Flags:     []cli.Flag{kindFlag},
			Action:    runPrint,
		},
		{
			Name:      "shape",
			Usage:     "insert integer keys and print the tree level by level",
			ArgsUsage: "[KEY...] (read from stdin when absent)",
			Flags:     []cli.Flag{kindFlag},
			Action:    runShape,
		},
		{
			Name:   "seq",
			Usage:  "run positional sequence operations read from stdin",
			Action: runSeq,
		},
		{
			Name:  "stress",
			Usage: "insert and delete random keys, then verify the tree",
			Flags: []cli.Flag{
				kindFlag,
				cli.IntFlag{
					Name:  "n",
					Value: 100000,
					Usage: " `COUNT` of keys inserted then deleted",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
			},
			Action: runStress,
		},
	}

	app.Before = func(c *cli.Context) error {
		log := logrus.New()
		log.Out = e
		level, err := logrus.ParseLevel(c.GlobalString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		if c.GlobalBool("log-json") {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		}
		c.App.Metadata["config"] = &metadata{log: log, in: in, w: w}
		return nil
	}
	return app
}
