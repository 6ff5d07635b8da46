package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zhengshuai-xiao/SCCodec/cmd"
	"github.com/zhengshuai-xiao/SCCodec/internal"
)

var logger = internal.GetLogger("sccodec_main")

func main() {
	internal.SetLogLevel(logrus.InfoLevel)
	err := cmd.Main(os.Args)
	if err != nil {
		logger.Fatal(err)
	}
}
