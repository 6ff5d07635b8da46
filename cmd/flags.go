package cmd

import (
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/SCCodec/internal"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "loglevel",
			Usage: "log level: trace/debug/info/warn/error",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  "logdir",
			Usage: "write logs to a rotating file in this directory instead of stderr",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored log levels",
		},
		&cli.StringFlag{
			Name:  "trace-id",
			Usage: "log ID prefixed to every line; defaults to a fresh short uuid",
			Value: "",
		},
	}
}

// s3Flags configure the optional S3 backend used when a source or
// destination is an s3:// URI.
func s3Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "s3-endpoint",
			Usage: "S3-compatible endpoint (host:port) for s3:// sources and destinations",
			Value: "127.0.0.1:9000",
		},
		&cli.BoolFlag{
			Name:  "s3-secure",
			Usage: "use TLS when talking to the S3 endpoint",
		},
	}
}

// setup applies the global logging flags. Called at the top of every
// command action.
func setup(c *cli.Context) {
	lvl, err := logrus.ParseLevel(c.String("loglevel"))
	if err != nil {
		logger.Warnf("unknown log level %q, using info", c.String("loglevel"))
		lvl = logrus.InfoLevel
	}
	internal.SetLogLevel(lvl)

	if c.Bool("no-color") || !isatty.IsTerminal(os.Stderr.Fd()) {
		internal.DisableLogColor()
	}

	if dir := c.String("logdir"); dir != "" {
		internal.SetOutFile(path.Join(dir, "sccodec.log"))
	}

	id := c.String("trace-id")
	if id == "" {
		id = uuid.New().String()[:8]
	}
	internal.SetLogID(id + " ")
}
