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

	"gonum.org/v1/gonum/stat"
	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Removes cosmic ray spikes by comparing each pixel across frames.
// While the largest intensity for a pixel exceeds the cross-frame median
// by more than Threshold sample standard deviations, it is replaced with
// the median and the statistics are recomputed. Needs at least 3 frames
type TrFinning struct {
	TrBase `yaml:",inline"`
	Threshold  float64 `yaml:"threshold"`
	Iterations int     `yaml:"iterations"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrFinningDefault() }) } // register for provenance decoding

func NewTrFinningDefault() *TrFinning { return NewTrFinning(0, 100) }

func NewTrFinning(threshold float64, iterations int) *TrFinning {
	return &TrFinning{
		TrBase     : TrBase{Transformation: "FinningTransform"},
		Threshold  : threshold,
		Iterations : iterations,
	}
}

func (tr *TrFinning) Transform(ds *spectral.Dataset, c *Context) error {
	numFrames:=ds.NumFrames()
	if numFrames<3 {
		return fmt.Errorf("%w: not enough frames to perform finning, got %d, need at least 3", numeric.ErrInsufficientData, numFrames)
	}
	row   :=make([]float64, numFrames)  // one pixel across all frames
	buf   :=make([]float64, 0, numFrames)
	for i:=0; i<ds.Rows; i++ {
		for k:=0; k<numFrames; k++ {
			_, ys:=ds.Frame(k)
			row[k]=ys[i]
		}
		median, std, n, err:=finningStats(row, buf)
		if err!=nil { return err }
		for iterations:=0; row[n]>median+tr.Threshold*std; {
			iterations++
			row[n]=median
			_, ys:=ds.Frame(n)
			ys[i]=median
			median, std, n, err=finningStats(row, buf)
			if err!=nil { return err }
			if iterations>tr.Iterations { break }
		}
	}
	return nil
}

// Cross-frame median (ignoring NaNs), sample standard deviation and the
// index of the largest value
func finningStats(row, buf []float64) (median, std float64, n int, err error) {
	buf=filterNaN(buf, row)
	median, err=quantileNearest(buf, 0.5)
	if err!=nil { return 0, 0, 0, err }
	std=stat.StdDev(row, nil)
	n, err=argmax(row)
	if err!=nil { return 0, 0, 0, err }
	return median, std, n, nil
}
