/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CompareJSON compares two JSON documents, ignoring key order and whitespace.
func CompareJSON(t testing.TB, want, got string) {
	t.Helper()
	wantVal := UnmarshalJSON(t, want)
	gotVal := UnmarshalJSON(t, got)
	if diff := cmp.Diff(wantVal, gotVal); diff != "" {
		t.Errorf("Expected JSON and actual JSON differ (-want +got):\n%s", diff)
	}
}

// UnmarshalJSON unmarshals the given string into a generic value.
func UnmarshalJSON(t testing.TB, jsonStr string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(jsonStr), &v); err != nil {
		t.Fatalf("Could not unmarshal JSON %q: %v", jsonStr, err)
	}
	return v
}
