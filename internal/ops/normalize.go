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

// Normalizes the target frames. Without Xj, each frame is divided by its
// intensity nearest to Xi. With Xj, each frame is divided by its integral
// between Xi and Xj, optionally above a local straight-line baseline.
// Frames inside FilterRange are left untouched
type TrNormalize struct {
	TrBase `yaml:",inline"`
	Xi            float64  `yaml:"xi"`
	Xj            *float64 `yaml:"xj,omitempty"`
	LocalBaseline bool     `yaml:"local_baseline"`
	TargetFrames  []int    `yaml:"target_frames,omitempty"`
	FilterRange   *Pair    `yaml:"filter_range,omitempty"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrNormalizeDefault() }) } // register for provenance decoding

func NewTrNormalizeDefault() *TrNormalize { return NewTrNormalize(0, nil, false, nil) }

func NewTrNormalize(xi float64, xj *float64, localBaseline bool, targetFrames []int) *TrNormalize {
	return &TrNormalize{
		TrBase        : TrBase{Transformation: "NormalizeTransform"},
		Xi            : xi,
		Xj            : xj,
		LocalBaseline : localBaseline,
		TargetFrames  : targetFrames,
	}
}

func (tr *TrNormalize) Transform(ds *spectral.Dataset, c *Context) error {
	frames, err:=resolveTargetFrames(ds, tr.TargetFrames)
	if err!=nil { return err }
	for _,k:=range frames {
		xs, ys:=ds.Frame(k)
		var norm float64
		if tr.Xj==nil {
			// normalize to the y value closest to Xi
			idx:=numeric.NearestIndex(xs, tr.Xi)
			if idx<0 { return fmt.Errorf("could not find %g in dataset", tr.Xi) }
			norm=ys[idx]
		} else {
			// normalize to the integral between Xi and Xj
			norm, err=numeric.Trapz(xs, ys, tr.Xi, *tr.Xj, tr.LocalBaseline)
			if err!=nil { return err }
		}
		if tr.FilterRange!=nil { continue }
		for i:=range ys { ys[i]/=norm }
	}
	return nil
}
