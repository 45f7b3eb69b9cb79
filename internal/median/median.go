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


package median

import (
	"github.com/mlnoga/ramantools/internal/qsort"
)

// Maps an index back into [0,n) by reflecting at both boundaries.
// Reflects, does not wrap: index n maps to n-1, larger indices walk backwards
func MirrorIndex(idx, n int) int {
	if idx<=0 { return -(idx%n) }
	if idx>=n { return n-1-(idx%n) }
	return idx
}

// A dense rows x cols matrix of float64 with mirrored boundary indexing.
// Out-of-bounds accesses reflect back into the grid, which image filters
// rely on near the data boundaries
type Grid struct {
	Data []float64
	Rows int
	Cols int
}

// Creates a zeroed grid of the given shape
func NewGrid(rows, cols int) *Grid {
	return &Grid{Data: make([]float64, rows*cols), Rows: rows, Cols: cols}
}

func (g *Grid) At(i, j int) float64 {
	return g.Data[MirrorIndex(i, g.Rows)*g.Cols+MirrorIndex(j, g.Cols)]
}

func (g *Grid) Set(i, j int, v float64) {
	g.Data[MirrorIndex(i, g.Rows)*g.Cols+MirrorIndex(j, g.Cols)]=v
}

// Applies a w x w sliding window median with mirrored boundaries to in,
// storing results in out. w must be odd; the median is the exact middle
// element of the sorted window values, without averaging. buf must hold at
// least w*w elements and is reused across pixels
func FilterWindow(out, in *Grid, w int, buf []float64) {
	half:=w/2
	for i:=0; i<in.Rows; i++ {
		for j:=0; j<in.Cols; j++ {
			n:=0
			for k:=-half; k<=half; k++ {
				for l:=-half; l<=half; l++ {
					buf[n]=in.At(i+k, j+l)
					n++
				}
			}
			out.Set(i, j, qsort.QSelectMedianFloat64(buf[:n]))
		}
	}
}
