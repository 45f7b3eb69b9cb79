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

// Appends a further dataset read from a file. By default the new frames
// become additional column pairs, which requires an equal row count.
// Horizontal appends the data as additional rows instead, e.g. to add
// scans recorded with the same axis, and requires an equal column count
type TrAppend struct {
	TrBase `yaml:",inline"`
	Filepath   string `yaml:"filepath"`
	Comment    string `yaml:"comment"`
	Delimiter  string `yaml:"delimiter"`
	Horizontal bool   `yaml:"horizontal"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrAppendDefault() }) } // register for provenance decoding

func NewTrAppendDefault() *TrAppend { return NewTrAppend("", "#", ",", false) }

func NewTrAppend(filepath, comment, delimiter string, horizontal bool) *TrAppend {
	return &TrAppend{
		TrBase     : TrBase{Transformation: "AppendTransform"},
		Filepath   : filepath,
		Comment    : comment,
		Delimiter  : delimiter,
		Horizontal : horizontal,
	}
}

func (tr *TrAppend) Transform(ds *spectral.Dataset, c *Context) error {
	comment, delimiter:=byte('#'), byte(',')
	if tr.Comment!=""   { comment  =tr.Comment[0] }
	if tr.Delimiter!="" { delimiter=tr.Delimiter[0] }
	other, err:=spectral.ReadCSVFile(tr.Filepath, comment, delimiter)
	if err!=nil { return err }
	ds.PreviousComments=ds.PreviousComments+"\n"+other.PreviousComments

	if tr.Horizontal {
		if ds.Cols!=other.Cols {
			return fmt.Errorf("%w: cannot append %d columns to %d columns", numeric.ErrShapeMismatch, other.Cols, ds.Cols)
		}
		out:=spectral.NewDataset(ds.Rows+other.Rows, ds.Cols)
		for j:=0; j<ds.Cols; j++ {
			col:=out.Col(j)
			copy(col, ds.Col(j))
			copy(col[ds.Rows:], other.Col(j))
		}
		ds.ReplaceMatrix(out)
	} else {
		if ds.Rows!=other.Rows {
			return fmt.Errorf("%w: cannot append %d rows to %d rows", numeric.ErrShapeMismatch, other.Rows, ds.Rows)
		}
		out:=spectral.NewDataset(ds.Rows, ds.Cols+other.Cols)
		for j:=0; j<ds.Cols; j++ {
			copy(out.Col(j), ds.Col(j))
		}
		for j:=0; j<other.Cols; j++ {
			copy(out.Col(ds.Cols+j), other.Col(j))
		}
		ds.ReplaceMatrix(out)
	}
	return nil
}
