/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/profile"
	"github.com/spf13/viper"
)

type stopper interface {
	Stop()
}

// StartProfile starts the profiler named by profile_mode. Profiles are
// written to the current directory.
func StartProfile(conf *viper.Viper) stopper {
	profileMode := conf.GetString("profile_mode")
	switch profileMode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	case "mutex":
		return profile.Start(profile.MutexProfile, profile.ProfilePath("."), profile.Quiet)
	case "block":
		runtime.SetBlockProfileRate(conf.GetInt("block_rate"))
		return profile.Start(profile.BlockProfile, profile.ProfilePath("."), profile.Quiet)
	case "":
		// do nothing
		return noOpStopper{}
	default:
		glog.Errorf("Invalid profile mode: %q", profileMode)
		return noOpStopper{}
	}
}

type noOpStopper struct{}

func (noOpStopper) Stop() {}
