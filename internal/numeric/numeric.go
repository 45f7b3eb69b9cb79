// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package numeric

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDomain           = errors.New("domain error")
)

// Area of a single trapezoid between x0 and x1
func SingleTrapz(x0, x1, y0, y1 float64) float64 {
	return 0.5*math.Abs(x1-x0)*(y1+y0)
}

// Linearly interpolate the y value at position x between the two points (x0,y0) and (x1,y1).
// Returns NaN for a degenerate segment with x0==x1
func LinInterp(x, x0, x1, y0, y1 float64) float64 {
	dx:=x1-x0
	return (y1*(x-x0) + y0*(x1-x))/dx
}

// Linearly interpolate the (xs, ys) data points onto the given grid.
// xs must be monotonically increasing. Grid positions outside [xs[0], xs[last])
// yield NaN, except a position exactly on the final xs value, which yields the
// final y. Appends results to dst if non-nil, else allocates
func LinearResample(xs, ys, grid, dst []float64) []float64 {
	if dst==nil { dst=make([]float64, 0, len(grid)) }
	n:=len(xs)
	if len(ys)<n { n=len(ys) }

	for _,xi:=range grid {
		yi:=math.NaN()
		for k:=0; k+1<n; k++ {
			if xi>=xs[k] && xi<xs[k+1] {
				yi=LinInterp(xi, xs[k], xs[k+1], ys[k], ys[k+1])
				break
			}
		}
		if math.IsNaN(yi) && n>=2 && xi==xs[n-1] {
			yi=ys[n-1] // grid position exactly on the last sample
		}
		dst=append(dst, yi)
	}
	return dst
}

// Returns the index of the element in xs closest to target, or -1 if xs is
// empty or contains only NaNs. NaN elements are never selected
func NearestIndex(xs []float64, target float64) int {
	best:=-1
	bestDist:=math.Inf(1)
	for i,x:=range xs {
		d:=math.Abs(x-target)
		if math.IsNaN(d) { continue }
		if d<bestDist {
			best=i
			bestDist=d
		}
	}
	return best
}

// Integrate ys over [min(left,right), max(left,right)] with the trapezoidal rule.
// The window is clipped to the data range, and partial end segments are
// linearly interpolated. With localBaseline set, the area under the straight
// line connecting the interpolated window end points is subtracted first
func Trapz(xs, ys []float64, left, right float64, localBaseline bool) (float64, error) {
	if left>right { left, right = right, left }

	n:=len(xs)-1
	if n!=len(ys)-1 {
		return 0, fmt.Errorf("%w: x and y must have the same length, got %d and %d", ErrShapeMismatch, len(xs), len(ys))
	}
	if n<1 {
		return 0, fmt.Errorf("%w: x and y must contain at least 2 elements, got %d", ErrInsufficientData, len(xs))
	}
	if xs[0]>=right || xs[n]<=left {
		return 0, fmt.Errorf("%w: integration window [%g, %g] out of bounds", ErrDomain, left, right)
	}

	area:=0.0
	if localBaseline {
		endpoints:=LinearResample(xs, ys, []float64{left, right}, nil)
		if math.IsNaN(endpoints[0]) || math.IsNaN(endpoints[1]) {
			return 0, fmt.Errorf("%w: local baseline endpoint outside data range", ErrDomain)
		}
		area=-SingleTrapz(left, right, endpoints[0], endpoints[1])
	}

	insideWindow:=false
	for j:=2; j<=n; j++ {
		x0, x1:=xs[j-1], xs[j]
		y0, y1:=ys[j-1], ys[j]

		if x1<=left { continue }
		if !insideWindow {
			// runs once, on entering the integration window
			if x0<left {
				y0=LinInterp(left, x0, x1, y0, y1)
				x0=left
			} else {
				left=x0 // window started left of the data
			}
			insideWindow=true
		}

		lastSegment:=false
		if x1>=right {
			if x1!=right {
				y1=LinInterp(right, x0, x1, y0, y1)
			}
			x1=right
			lastSegment=true
		}

		area+=SingleTrapz(x0, x1, y0, y1)
		if lastSegment { break }
	}
	return area, nil
}
