/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
)

var (
	// These variables are set using -ldflags
	geoconvVersion string
	gitBranch      string
	lastCommitSHA  string
	lastCommitTime string
)

func BuildDetails() string {
	return fmt.Sprintf(`
Geoconv version  : %v
Commit SHA-1     : %v
Commit timestamp : %v
Branch           : %v

Licensed under the Apache Public License 2.0. © Hypermode Inc.

`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

func Version() string {
	if geoconvVersion == "" {
		return "dev"
	}
	return geoconvVersion
}
