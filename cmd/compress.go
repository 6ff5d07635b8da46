package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/transform"
)

func cmdCompress() *cli.Command {
	selfFlags := []cli.Flag{
		&cli.IntFlag{
			Name:    "block-size",
			Aliases: []string{"n"},
			Usage:   "bytes per block; each block becomes a 4-byte digest record",
			Value:   2,
		},
		&cli.StringFlag{
			Name:  "transform",
			Usage: "payload pre-transform: none/snappy/zlib/dict",
			Value: "none",
		},
	}

	return &cli.Command{
		Name:      "compress",
		Usage:     "digest a payload into a checksum stream",
		ArgsUsage: "SRC DST",
		Flags:     append(selfFlags, s3Flags()...),
		Action:    compress,
	}
}

func compress(c *cli.Context) error {
	setup(c)
	if c.NArg() != 2 {
		return fmt.Errorf("compress needs SRC and DST arguments")
	}
	src, dst := c.Args().Get(0), c.Args().Get(1)

	payload, err := loadArtifact(c.Context, c, src)
	if err != nil {
		return err
	}

	tr, err := transform.GetTransformerViaString(c.String("transform"))
	if err != nil {
		return fmt.Errorf("transform %q: %w", c.String("transform"), err)
	}
	applied, err := tr.Apply(payload)
	if err != nil {
		return fmt.Errorf("failed to apply %s transform: %w", tr.TypeString(), err)
	}

	stream, err := codec.Encode(applied, c.Int("block-size"))
	if err != nil {
		return err
	}

	blob := wrapContainer(tr.Type(), stream.Marshal())
	if err := storeArtifact(c.Context, c, dst, blob); err != nil {
		return err
	}

	logger.Infof("compressed %s (%d bytes) -> %s (%d bytes, %d records of block size %d, transform %s)",
		src, len(payload), dst, len(blob), len(stream.Records), stream.BlockSize, tr.TypeString())
	return nil
}
