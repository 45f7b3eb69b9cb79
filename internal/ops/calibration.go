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
	"gonum.org/v1/gonum/stat"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Applies a linear calibration x' = slope*x + intercept to all x axes,
// fitted by least squares through the given reference points. A single
// point yields a pure offset, zero points leave the dataset unchanged
type TrCalibration struct {
	TrBase `yaml:",inline"`
	Points []Pair `yaml:"points"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrCalibrationDefault() }) } // register for provenance decoding

func NewTrCalibrationDefault() *TrCalibration { return NewTrCalibration(nil) }

func NewTrCalibration(points []Pair) *TrCalibration {
	return &TrCalibration{
		TrBase : TrBase{Transformation: "CalibrationTransform"},
		Points : points,
	}
}

func (tr *TrCalibration) Transform(ds *spectral.Dataset, c *Context) error {
	var slope, intercept float64
	switch len(tr.Points) {
	case 0:
		return nil
	case 1:
		slope, intercept=1.0, tr.Points[0].B-tr.Points[0].A
	default:
		xs:=make([]float64, len(tr.Points))
		ys:=make([]float64, len(tr.Points))
		for i,p:=range tr.Points {
			xs[i], ys[i]=p.A, p.B
		}
		intercept, slope=stat.LinearRegression(xs, ys, nil, false)
	}
	for k:=0; k<ds.NumFrames(); k++ {
		xs, _:=ds.Frame(k)
		for i,x:=range xs {
			xs[i]=x*slope+intercept
		}
	}
	return nil
}
