// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package polyops implements the higher-level polygon operations a
// point-location hierarchy is built from: point containment, random
// interior/exterior point sampling, and recursive polygon splitting.
//
// It lives apart from package geom to avoid an import cycle: splitting
// and containment on a concave polygon need constrained triangulation
// (package cdt), and cdt in turn needs geom's primitives. geom stays the
// leaf package with no triangulation dependency; polyops sits above both.
package polyops

import "errors"

// errEmptyPolygon is returned by operations that need a non-degenerate
// bounding box or triangulation and receive a polygon that doesn't have
// one.
var errEmptyPolygon = errors.New("polyops: polygon has zero area")
