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

// Keeps only the given 1-based frames, or discards them if Invert is set
type TrSelect struct {
	TrBase `yaml:",inline"`
	Frames []int `yaml:"frames"`
	Invert bool  `yaml:"invert"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrSelectDefault() }) } // register for provenance decoding

func NewTrSelectDefault() *TrSelect { return NewTrSelect(nil, false) }

func NewTrSelect(frames []int, invert bool) *TrSelect {
	return &TrSelect{
		TrBase : TrBase{Transformation: "SelectTransform"},
		Frames : frames,
		Invert : invert,
	}
}

func (tr *TrSelect) Transform(ds *spectral.Dataset, c *Context) error {
	out, err:=ds.SelectFrames(tr.Frames, tr.Invert)
	if err!=nil { return err }
	ds.ReplaceMatrix(out)
	return nil
}
