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
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Collapses all frames into a single frame holding the mean intensity
// per pixel, on the x axis of the first frame
type TrAverage struct {
	TrBase `yaml:",inline"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrAverage() }) } // register for provenance decoding

func NewTrAverage() *TrAverage {
	return &TrAverage{TrBase: TrBase{Transformation: "AverageTransform"}}
}

func (tr *TrAverage) Transform(ds *spectral.Dataset, c *Context) error {
	numFrames:=ds.NumFrames()
	out:=spectral.NewDataset(ds.Rows, 2)
	copy(out.Col(0), ds.Col(0))
	mean:=out.Col(1)
	for k:=0; k<numFrames; k++ {
		_, ys:=ds.Frame(k)
		for i,y:=range ys { mean[i]+=y }
	}
	for i:=range mean { mean[i]/=float64(numFrames) }
	ds.ReplaceMatrix(out)
	return nil
}
