package internal

import "fmt"

var (
	version  = "0.3.0"
	revision = "HEAD" // overridden by -ldflags at release time
	revDate  = "unknown"
)

func Version() string {
	return fmt.Sprintf("%s (%s %s)", version, revision, revDate)
}
