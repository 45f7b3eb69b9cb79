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
	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Integrates every frame over the given bounds, optionally above a local
// straight-line baseline from start to end point. The dataset is replaced
// by a table with one row per frame, holding frame number and integral
// for each bound
type TrIntegrate struct {
	TrBase `yaml:",inline"`
	Bounds        []Pair `yaml:"bounds"`
	LocalBaseline bool   `yaml:"local_baseline"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrIntegrateDefault() }) } // register for provenance decoding

func NewTrIntegrateDefault() *TrIntegrate { return NewTrIntegrate(nil, false) }

func NewTrIntegrate(bounds []Pair, localBaseline bool) *TrIntegrate {
	return &TrIntegrate{
		TrBase        : TrBase{Transformation: "IntegrateTransform"},
		Bounds        : bounds,
		LocalBaseline : localBaseline,
	}
}

func (tr *TrIntegrate) Transform(ds *spectral.Dataset, c *Context) error {
	out:=spectral.NewDataset(ds.NumFrames(), 2*len(tr.Bounds))
	for k:=0; k<ds.NumFrames(); k++ {
		xs, ys:=ds.Frame(k)
		for j,bd:=range tr.Bounds {
			integral, err:=numeric.Trapz(xs, ys, bd.A, bd.B, tr.LocalBaseline)
			if err!=nil { return err }
			out.Set(k, 2*j,   float64(k+1))
			out.Set(k, 2*j+1, integral)
		}
	}
	ds.ReplaceMatrix(out)
	return nil
}
