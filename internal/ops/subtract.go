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

	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Subtracts the subtrahend frame from the minuend frames, which then
// replace the dataset. Without explicit minuends, all other frames are
// used. Unless Direct is set, minuends are first resampled onto the
// subtrahend's x axis, which also becomes their new axis
type TrSubtract struct {
	TrBase `yaml:",inline"`
	Subtrahend int   `yaml:"subtrahend"`
	Minuends   []int `yaml:"minuends,omitempty"`
	Direct     bool  `yaml:"direct"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrSubtractDefault() }) } // register for provenance decoding

func NewTrSubtractDefault() *TrSubtract { return NewTrSubtract(0, nil, false) }

func NewTrSubtract(subtrahend int, minuends []int, direct bool) *TrSubtract {
	return &TrSubtract{
		TrBase     : TrBase{Transformation: "SubtractTransform"},
		Subtrahend : subtrahend,
		Minuends   : minuends,
		Direct     : direct,
	}
}

func (tr *TrSubtract) Transform(ds *spectral.Dataset, c *Context) error {
	var minuends *spectral.Dataset
	var err error
	if tr.Minuends!=nil {
		for _,m:=range tr.Minuends {
			if m==tr.Subtrahend {
				return fmt.Errorf("the minuend frames must not contain the subtrahend frame")
			}
		}
		minuends, err=ds.SelectFrames(tr.Minuends, false)
	} else {
		minuends, err=ds.SelectFrames([]int{tr.Subtrahend}, true)
	}
	if err!=nil { return err }
	subtrahend, err:=ds.SelectFrames([]int{tr.Subtrahend}, false)
	if err!=nil { return err }

	grid, subYs:=subtrahend.Frame(0)
	for k:=0; k<minuends.NumFrames(); k++ {
		xs, ys:=minuends.Frame(k)
		if !tr.Direct {
			resampled:=numeric.LinearResample(xs, ys, grid, nil)
			for i:=range ys { ys[i]=resampled[i]-subYs[i] }
			copy(xs, grid)
		} else {
			// ignore spectral axes of minuends, subtract intensities directly
			for i:=range ys { ys[i]-=subYs[i] }
		}
	}
	ds.ReplaceMatrix(minuends)
	return nil
}
