// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "errors"

// ErrDegeneratePolygon is returned when fewer than three vertices are
// supplied to NewPolygon or NewTriangle.
var ErrDegeneratePolygon = errors.New("geom: polygon must have at least three vertices")
