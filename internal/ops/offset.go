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

// Adds a constant offset to the intensities of the target frames. In
// percentile mode Offset is interpreted as a quantile rank instead, and
// that per-frame quantile is subtracted, e.g. to pin a noise floor to zero
type TrOffset struct {
	TrBase `yaml:",inline"`
	Offset       float64 `yaml:"offset"`
	Percentile   bool    `yaml:"percentile"`
	TargetFrames []int   `yaml:"target_frames,omitempty"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrOffsetDefault() }) } // register for provenance decoding

func NewTrOffsetDefault() *TrOffset { return NewTrOffset(0, false, nil) }

func NewTrOffset(offset float64, percentile bool, targetFrames []int) *TrOffset {
	return &TrOffset{
		TrBase       : TrBase{Transformation: "OffsetTransform"},
		Offset       : offset,
		Percentile   : percentile,
		TargetFrames : targetFrames,
	}
}

func (tr *TrOffset) Transform(ds *spectral.Dataset, c *Context) error {
	frames, err:=resolveTargetFrames(ds, tr.TargetFrames)
	if err!=nil { return err }
	buf:=make([]float64, 0, ds.Rows)
	for _,k:=range frames {
		_, ys:=ds.Frame(k)
		offset:=tr.Offset
		if tr.Percentile {
			buf=filterNaN(buf, ys)
			quantile, err:=quantileNearest(buf, tr.Offset)
			if err!=nil { return err }
			offset=-quantile
		}
		for i:=range ys { ys[i]+=offset }
	}
	return nil
}
