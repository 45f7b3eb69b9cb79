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

// Converts all x axes from wavelength in nm into Raman shift in 1/cm
// relative to the given laser wavelength, using vacuum wavenumbers
type TrRamanShift struct {
	TrBase `yaml:",inline"`
	Wavelength      float64  `yaml:"wavelength"`
	RefractiveIndex float64  `yaml:"refractive_index"`
	Correction      *float64 `yaml:"correction,omitempty"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrRamanShiftDefault() }) } // register for provenance decoding

func NewTrRamanShiftDefault() *TrRamanShift { return NewTrRamanShift(0, 1.000264, nil) }

func NewTrRamanShift(wavelength, refractiveIndex float64, correction *float64) *TrRamanShift {
	return &TrRamanShift{
		TrBase          : TrBase{Transformation: "RamanShiftTransform"},
		Wavelength      : wavelength,
		RefractiveIndex : refractiveIndex,
		Correction      : correction,
	}
}

func (tr *TrRamanShift) Transform(ds *spectral.Dataset, c *Context) error {
	correction:=0.0
	if tr.Correction!=nil { correction=*tr.Correction }
	laser:=1e7/tr.Wavelength
	return forEachFrame(allFrames(ds.NumFrames()), c.MaxThreads, func(k int) error {
		xs, _:=ds.Frame(k)
		for i,x:=range xs {
			xs[i]=(laser-1e7/x)/tr.RefractiveIndex+correction
		}
		return nil
	})
}
