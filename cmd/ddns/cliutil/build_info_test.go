package cliutil

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo_Log(t *testing.T) {
	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	GetBuildInfo("", "1.2.0").Log(logf)
	assert.Equal(t, []string{
		"Version 1.2.0",
		fmt.Sprintf("GOOS: %s, GOVersion: %s, GoArch: %s", runtime.GOOS, runtime.Version(), runtime.GOARCH),
	}, lines)

	lines = nil
	GetBuildInfo("docker", "1.2.0").Log(logf)
	assert.Equal(t, "Built with docker", lines[1])
}
