// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math/rand"
	"testing"
)

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	//nolint:gosec
	return rand.New(rand.NewSource(1))
}
