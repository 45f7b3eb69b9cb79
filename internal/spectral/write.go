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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Writes the dataset as delimited text: a banner line, the metadata and
// previous comments as '# ' prefixed header lines, then the matrix body.
// The header embeds the provenance block that PipelineFromProvenance can
// reconstruct the applied pipeline from
func (ds *Dataset) Write(w io.Writer, banner string) error {
	bw:=bufio.NewWriter(w)

	if banner!="" {
		if _, err:=bw.WriteString("# "+banner+"\n# ---\n"); err!=nil { return err }
	}
	if err:=writeCommented(bw, ds.Metadata); err!=nil { return err }
	if err:=writeCommented(bw, ds.PreviousComments); err!=nil { return err }

	for i:=0; i<ds.Rows; i++ {
		for j:=0; j<ds.Cols; j++ {
			if j>0 {
				if err:=bw.WriteByte(','); err!=nil { return err }
			}
			if _, err:=bw.WriteString(strconv.FormatFloat(ds.At(i, j), 'f', -1, 64)); err!=nil { return err }
		}
		if err:=bw.WriteByte('\n'); err!=nil { return err }
	}
	return bw.Flush()
}

// Writes the dataset to a file. The file is only created once the pipeline
// has completed, so no partial output is committed on failure
func (ds *Dataset) WriteFile(fileName, banner string) error {
	f, err:=os.Create(fileName)
	if err!=nil { return err }
	defer f.Close()
	return ds.Write(f, banner)
}

// Prefixes every line of text with '# ' and writes it out
func writeCommented(w *bufio.Writer, text string) error {
	if text=="" { return nil }
	for _,line:=range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if _, err:=w.WriteString("# "+line+"\n"); err!=nil { return err }
	}
	return nil
}
