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
	"math"

	"github.com/mlnoga/ramantools/internal/spectral"
)

// The conversion factor stems from the PyLoN calibration certificate
const defaultConversionFactor=1.42857

// Converts intensities from raw CCD counts into photoelectrons per second
// and wavenumber, dividing by the local x step, the exposure time and the
// count to photoelectron conversion factor. The last row reuses the step
// of the row before it
type TrCountConversion struct {
	TrBase `yaml:",inline"`
	Exposure         float64 `yaml:"exposure"`
	ConversionFactor float64 `yaml:"conversion_factor"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrCountConversionDefault() }) } // register for provenance decoding

func NewTrCountConversionDefault() *TrCountConversion { return NewTrCountConversion(300.0, defaultConversionFactor) }

func NewTrCountConversion(exposure, conversionFactor float64) *TrCountConversion {
	return &TrCountConversion{
		TrBase           : TrBase{Transformation: "CountConversionTransform"},
		Exposure         : exposure,
		ConversionFactor : conversionFactor,
	}
}

func (tr *TrCountConversion) Transform(ds *spectral.Dataset, c *Context) error {
	prevDx:=1.0
	for k:=0; k<ds.NumFrames(); k++ {
		xs, ys:=ds.Frame(k)
		for i:=range ys {
			dx:=prevDx
			if i<ds.Rows-1 {
				dx=math.Abs(xs[i+1]-xs[i])
				prevDx=dx
			}
			ys[i]/=dx*tr.Exposure*tr.ConversionFactor
		}
	}
	return nil
}
