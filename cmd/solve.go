package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/search"
)

func cmdSolve() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "brute force a single digest record given as CRC:SUM hex",
		ArgsUsage: "CRC:SUM",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "block-size",
				Aliases: []string{"n"},
				Usage:   "candidate block size in bytes",
				Value:   2,
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "candidate alphabet: printable, full, or a LO-HI byte range",
				Value: "printable",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abort the search after this long (0 = no limit)",
				Value: 0,
			},
		},
		Action: solve,
	}
}

func solve(c *cli.Context) error {
	setup(c)
	if c.NArg() != 1 {
		return fmt.Errorf("solve needs one CRC:SUM argument, e.g. 29B1:0083")
	}

	rec, err := codec.ParseDigestText(c.Args().First())
	if err != nil {
		return err
	}
	alphabet, err := parseAlphabet(c.String("alphabet"))
	if err != nil {
		return err
	}
	engine, err := search.NewBounded(alphabet)
	if err != nil {
		return err
	}

	ctx := c.Context
	if d := c.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	block, err := engine.SolveBlock(ctx, rec, c.Int("block-size"))
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %x (%q)\n", rec.TextString(), block, block)
	return nil
}
