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


package spectral

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mlnoga/ramantools/internal/numeric"
)

// Parses delimited text into a dataset. Lines starting with the comment
// character are collected verbatim into PreviousComments, prefixed with a
// line naming the source. Remaining lines must form a rectangular matrix of
// floats separated by the delimiter character; fields are trimmed
func ParseCSV(input, sourceName string, comment, delimiter byte) (*Dataset, error) {
	comments:=strings.Builder{}
	rows:=[][]float64{}
	cols:=0

	for _,line:=range strings.Split(input, "\n") {
		if strings.HasPrefix(line, string(comment)) {
			comments.WriteString(line)
			comments.WriteByte('\n')
			continue
		}
		if strings.TrimSpace(line)=="" { continue }

		fields:=strings.Split(line, string(delimiter))
		row:=make([]float64, len(fields))
		for i,field:=range fields {
			v, err:=strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err!=nil {
				return nil, fmt.Errorf("cannot parse %q as float in line %q: %s", field, line, err.Error())
			}
			row[i]=v
		}
		if cols==0 {
			cols=len(row)
		} else if len(row)!=cols {
			return nil, fmt.Errorf("%w: row with %d columns in a matrix of %d columns", numeric.ErrShapeMismatch, len(row), cols)
		}
		rows=append(rows, row)
	}

	ds:=NewDataset(len(rows), cols)
	for i,row:=range rows {
		for j,v:=range row {
			ds.Set(i, j, v)
		}
	}

	if comments.Len()>0 {
		ds.PreviousComments="comments from "+sourceName+":\n"+comments.String()
	}
	return ds, nil
}

// Reads a delimited text file into a dataset
func ReadCSVFile(fileName string, comment, delimiter byte) (*Dataset, error) {
	buf, err:=os.ReadFile(fileName)
	if err!=nil { return nil, err }
	sourceName:="input file "+fileName
	if abs, err:=filepath.Abs(fileName); err==nil {
		sourceName="input file "+abs
	}
	return ParseCSV(string(buf), sourceName, comment, delimiter)
}
