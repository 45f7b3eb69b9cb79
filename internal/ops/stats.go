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


package ops

import (
	"fmt"
	"math"

	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/qsort"
)

// Nearest-rank quantile of a, reordering a in place.
// The rank is p*(len(a)-1) rounded half away from zero
func quantileNearest(a []float64, p float64) (float64, error) {
	if len(a)==0 { return 0, fmt.Errorf("%w: quantile of empty input", numeric.ErrInsufficientData) }
	idx:=int(math.Round(p*float64(len(a)-1)))
	return qsort.QSelectFloat64(a, idx+1), nil
}

// Appends the non-NaN values of src to dst[:0]
func filterNaN(dst, src []float64) []float64 {
	dst=dst[:0]
	for _,v:=range src {
		if !math.IsNaN(v) { dst=append(dst, v) }
	}
	return dst
}

// Index of the largest value. Errors on empty input and on NaNs,
// which admit no order
func argmax(a []float64) (int, error) {
	if len(a)==0 { return 0, fmt.Errorf("%w: argmax of empty input", numeric.ErrInsufficientData) }
	best:=0
	for i,v:=range a {
		if math.IsNaN(v) { return 0, fmt.Errorf("%w: argmax of input containing NaN", numeric.ErrDomain) }
		if v>a[best] { best=i }
	}
	return best, nil
}
