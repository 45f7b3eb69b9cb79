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

	"gonum.org/v1/gonum/optimize"
	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Aligns all frames to the first frame by finding the sub-pixel x shift
// that maximizes the overlap with the reference intensities, then
// resampling each frame onto the reference axis. The shift is bounded by
// the absolute value of CostMaxAbs, which only needs adapting when
// alignment fails
type TrAlign struct {
	TrBase `yaml:",inline"`
	CostMaxAbs float64 `yaml:"cost_max_abs"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrAlignDefault() }) } // register for provenance decoding

func NewTrAlignDefault() *TrAlign { return NewTrAlign(0.1) }

func NewTrAlign(costMaxAbs float64) *TrAlign {
	return &TrAlign{
		TrBase     : TrBase{Transformation: "AlignTransform"},
		CostMaxAbs : costMaxAbs,
	}
}

func (tr *TrAlign) Transform(ds *spectral.Dataset, c *Context) error {
	refGrid :=append([]float64(nil), ds.Col(0)...)
	refFrame:=append([]float64(nil), ds.Col(1)...)
	shifted :=make([]float64, ds.Rows)
	for k:=1; k<ds.NumFrames(); k++ {
		xs, ys:=ds.Frame(k)
		// all x axes take the values of the reference frame
		copy(xs, refGrid)
		dx, err:=bestShift(refFrame, ys, math.Abs(tr.CostMaxAbs))
		if err!=nil { return err }
		for i,g:=range refGrid { shifted[i]=g+dx }
		aligned:=numeric.LinearResample(shifted, ys, refGrid, nil)
		copy(ys, aligned)
	}
	return nil
}

// Finds the x shift of frameB against frameA minimizing the negative
// absolute overlap of the two intensity profiles, evaluated on a pixel
// index grid so the shift is in fractional pixels
func bestShift(frameA, frameB []float64, costMaxAbs float64) (float64, error) {
	if len(frameA)!=len(frameB) {
		return 0, fmt.Errorf("%w: frames that shall be aligned must be of same length", numeric.ErrShapeMismatch)
	}
	grid:=make([]float64, len(frameA)-1)
	for i:=range grid { grid[i]=float64(i+1) }
	xShifted :=make([]float64, len(grid))
	resampled:=make([]float64, len(grid))

	problem:=optimize.Problem{
		Func: func(x []float64) float64 {
			dx:=x[0]
			if dx< -costMaxAbs || dx>costMaxAbs { return math.Inf(1) }
			for i,g:=range grid { xShifted[i]=g+dx }
			ys:=numeric.LinearResample(xShifted, frameB, grid, resampled)
			sum:=0.0
			for i,y1:=range ys {
				cst:=-math.Abs(y1*frameA[i])
				if !math.IsNaN(cst) { sum+=cst }
			}
			return sum
		},
	}
	res, err:=optimize.Minimize(problem, []float64{0}, nil, &optimize.NelderMead{})
	if err!=nil { return 0, fmt.Errorf("%w: %s", ErrOptimization, err.Error()) }
	if res==nil || len(res.X)!=1 || math.IsNaN(res.X[0]) {
		return 0, fmt.Errorf("%w: frame alignment did not return optimized parameters", ErrOptimization)
	}
	return res.X[0], nil
}
