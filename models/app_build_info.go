// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries build metadata injected with -ldflags at release
// time and shown in the shell's about window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion returns the release version.
func (a AppBuildInfo) BuildVersion() string {
	return orNA(a.buildVersion)
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return orNA(a.buildDate)
}

// BuildCommit returns the source commit hash.
func (a AppBuildInfo) BuildCommit() string {
	return orNA(a.buildCommit)
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
