// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package randutil provides an explicit, seedable random source, so that
// random polygon generation and splits are reproducible given the same
// seed. Locator preprocessing itself takes no random source.
package randutil

import "math/rand"

// New returns a new seeded random source. Callers should hold on to it and
// pass it explicitly (for example to polyops.Split or
// polyops.RandomConvexPolygon) rather than relying on a package-global
// RNG, so that two runs with the same seed make the same draws.
func New(seed int64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}
