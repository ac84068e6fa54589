// Package buildinfo is stamped at link time:
//
//	go build -ldflags "-X github.com/aalvaropc/primer/internal/buildinfo.Version=v0.3.0"
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("primer %s (commit=%s, date=%s, %s)", Version, Commit, Date, runtime.Version())
}
