/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// Error helpers for the command line. Library packages return errors; only
// mains call Check and friends, which log fatal through glog.
// (1) An error from a library should stop the command: use x.Check, x.Checkf.
// (2) An error should be passed on with some context: use x.Wrapf or errors.Wrapf.
// (3) A new error with stack trace info: use errors.Errorf.

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		err = errors.Wrap(err, "")
		glog.Fatalf("%+v", err)
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		err = errors.Wrapf(err, format, args...)
		glog.Fatalf("%+v", err)
	}
}

// Wrapf is errors.Wrapf that keeps nil as nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
