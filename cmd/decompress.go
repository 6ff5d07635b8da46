package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/internal"
	"github.com/zhengshuai-xiao/SCCodec/memo"
	"github.com/zhengshuai-xiao/SCCodec/pkg/daemon"
	"github.com/zhengshuai-xiao/SCCodec/search"
	"github.com/zhengshuai-xiao/SCCodec/transform"
)

func cmdDecompress() *cli.Command {
	selfFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "engine",
			Usage: "search engine: parallel (full byte space, N<=4) or bounded (restricted alphabet)",
			Value: "parallel",
		},
		&cli.StringFlag{
			Name:  "alphabet",
			Usage: "bounded engine alphabet: printable, full, or a LO-HI byte range like 32-126",
			Value: "printable",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "parallel engine worker count (0 = GOMAXPROCS)",
			Value: 0,
		},
		&cli.IntFlag{
			Name:  "memo-size",
			Usage: "in-process memo cache entries (0 disables)",
			Value: 65536,
		},
		&cli.StringFlag{
			Name:  "memo-addr",
			Usage: "redis address for the shared memo store, e.g. 127.0.0.1:6379/1 (empty disables)",
			Value: "",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "abort reconstruction after this long (0 = no limit)",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:    "background",
			Aliases: []string{"d"},
			Usage:   "run in background; progress goes to the log file",
		},
	}

	return &cli.Command{
		Name:      "decompress",
		Usage:     "reconstruct a payload from a checksum stream by exhaustive search",
		ArgsUsage: "SRC DST",
		Flags:     append(selfFlags, s3Flags()...),
		Action:    decompress,
	}
}

func decompress(c *cli.Context) error {
	setup(c)
	if c.NArg() != 2 {
		return fmt.Errorf("decompress needs SRC and DST arguments")
	}
	src, dst := c.Args().Get(0), c.Args().Get(1)

	if c.Bool("background") {
		if daemon.WasReborn() {
			daemon.UnsetMark()
		} else {
			logDir := c.String("logdir")
			if logDir == "" {
				logDir = internal.GetDefaultLogDir()
			}
			if err := os.MkdirAll(logDir, 0750); err != nil {
				return err
			}
			proc, err := daemon.Daemonize(
				path.Join(logDir, "sccodec-decompress.pid"),
				path.Join(logDir, "sccodec-decompress.log"),
				os.Args)
			if err != nil {
				return fmt.Errorf("failed to daemonize: %w", err)
			}
			if proc != nil {
				logger.Infof("decompress running in background, pid %d, logs in %s", proc.Pid, logDir)
				return nil
			}
			// child continues below
		}
	}

	ctx := c.Context
	if d := c.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	blob, err := loadArtifact(ctx, c, src)
	if err != nil {
		return err
	}
	trType, streamBytes, err := unwrapContainer(blob)
	if err != nil {
		return err
	}
	tr, err := transform.GetTransformerViaType(trType)
	if err != nil {
		return fmt.Errorf("container declares unknown transform %d: %w", trType, err)
	}

	solver, maxBlockSize, err := buildSolver(c)
	if err != nil {
		return err
	}
	stream, err := codec.Unmarshal(streamBytes, maxBlockSize)
	if err != nil {
		return err
	}

	store, closeStore, err := buildMemoStore(c)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	start := time.Now()
	recovered, err := codec.Reconstruct(ctx, stream, solver, store)
	if err != nil {
		return fmt.Errorf("reconstruction failed: %w", err)
	}
	logger.Infof("reconstructed %d blocks in %s", len(stream.Records), time.Since(start))

	payload, err := tr.Revert(recovered)
	if err != nil {
		return fmt.Errorf("failed to revert %s transform: %w", tr.TypeString(), err)
	}

	if err := storeArtifact(ctx, c, dst, payload); err != nil {
		return err
	}
	logger.Infof("decompressed %s -> %s (%d bytes)", src, dst, len(payload))
	return nil
}

func buildSolver(c *cli.Context) (codec.Solver, int, error) {
	switch c.String("engine") {
	case "parallel":
		return search.NewParallel(c.Int("workers")), search.MaxParallelBlockSize, nil
	case "bounded":
		alphabet, err := parseAlphabet(c.String("alphabet"))
		if err != nil {
			return nil, 0, err
		}
		b, err := search.NewBounded(alphabet)
		if err != nil {
			return nil, 0, err
		}
		return b, codec.MaxBlockSize, nil
	default:
		return nil, 0, fmt.Errorf("unknown engine %q: want parallel or bounded", c.String("engine"))
	}
}

func parseAlphabet(spec string) (search.Alphabet, error) {
	switch spec {
	case "printable":
		return search.PrintableAlphabet(), nil
	case "full":
		return search.FullAlphabet(), nil
	}
	loStr, hiStr, found := strings.Cut(spec, "-")
	if !found {
		return nil, fmt.Errorf("unknown alphabet %q: want printable, full, or LO-HI", spec)
	}
	lo, err := strconv.ParseUint(loStr, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet range %q: %w", spec, err)
	}
	hi, err := strconv.ParseUint(hiStr, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet range %q: %w", spec, err)
	}
	return search.RangeAlphabet(byte(lo), byte(hi))
}

func buildMemoStore(c *cli.Context) (codec.MemoStore, func(), error) {
	var stores []codec.MemoStore
	if size := c.Int("memo-size"); size > 0 {
		lruStore, err := memo.NewLRU(size)
		if err != nil {
			return nil, nil, err
		}
		stores = append(stores, lruStore)
	}

	var closeStore func()
	if addr := c.String("memo-addr"); addr != "" {
		redisStore, err := memo.NewRedis(addr)
		if err != nil {
			return nil, nil, fmt.Errorf("memo store unavailable: %w", err)
		}
		stores = append(stores, redisStore)
		closeStore = func() { redisStore.Close() }
	}

	switch len(stores) {
	case 0:
		return nil, nil, nil
	case 1:
		return stores[0], closeStore, nil
	default:
		return memo.Chain(stores...), closeStore, nil
	}
}
