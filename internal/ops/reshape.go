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

// Repartitions the dataset into the given number of rows, e.g. to split a
// single long column pair holding several concatenated scans into frames.
// Values are read column pair by column pair and refilled in the same order
type TrReshape struct {
	TrBase `yaml:",inline"`
	Rows int `yaml:"rows"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrReshapeDefault() }) } // register for provenance decoding

func NewTrReshapeDefault() *TrReshape { return NewTrReshape(0) }

func NewTrReshape(rows int) *TrReshape {
	return &TrReshape{
		TrBase : TrBase{Transformation: "ReshapeTransform"},
		Rows   : rows,
	}
}

func (tr *TrReshape) Transform(ds *spectral.Dataset, c *Context) error {
	if tr.Rows<=0 {
		return fmt.Errorf("%w: cannot reshape data into %d rows", numeric.ErrShapeMismatch, tr.Rows)
	}
	colsReshaped:=ds.Cols*ds.Rows/tr.Rows
	if tr.Rows*colsReshaped!=ds.Rows*ds.Cols {
		return fmt.Errorf("%w: cannot reshape data into form (%d, %d)", numeric.ErrShapeMismatch, tr.Rows, colsReshaped)
	}
	if colsReshaped==0 {
		return fmt.Errorf("%w: number of reshaped columns must not be zero", numeric.ErrShapeMismatch)
	}

	out:=spectral.NewDataset(tr.Rows, colsReshaped)
	a, b:=0, 0 // read position in the old matrix
	for j:=0; j<colsReshaped-1; j+=2 {
		for i:=0; i<tr.Rows; i++ {
			out.Set(i, j,   ds.At(a, b))
			out.Set(i, j+1, ds.At(a, b+1))
			a++
			if a==ds.Rows {
				a=0
				b+=2
			}
		}
	}
	ds.ReplaceMatrix(out)
	return nil
}
