package cliutil

import (
	"fmt"
	"runtime"
)

type BuildInfo struct {
	GoOS          string `json:"go_os"`
	GoVersion     string `json:"go_version"`
	GoArch        string `json:"go_arch"`
	BuildType     string `json:"build_type"`
	CfddnsVersion string `json:"cfddns_version"`
}

func GetBuildInfo(buildType, version string) *BuildInfo {
	return &BuildInfo{
		GoOS:          runtime.GOOS,
		GoVersion:     runtime.Version(),
		GoArch:        runtime.GOARCH,
		BuildType:     buildType,
		CfddnsVersion: version,
	}
}

func (bi *BuildInfo) Log(log func(format string, args ...any)) {
	log("Version %s", bi.CfddnsVersion)
	if bi.BuildType != "" {
		log("Built%s", bi.GetBuildTypeMsg())
	}
	log("GOOS: %s, GOVersion: %s, GoArch: %s", bi.GoOS, bi.GoVersion, bi.GoArch)
}

func (bi *BuildInfo) GetBuildTypeMsg() string {
	if bi.BuildType == "" {
		return ""
	}
	return fmt.Sprintf(" with %s", bi.BuildType)
}
