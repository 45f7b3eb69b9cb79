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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	fileName:=filepath.Join(t.TempDir(), "other.csv")
	if err:=os.WriteFile(fileName, []byte(content), 0644); err!=nil { t.Fatal(err) }
	return fileName
}

func newAppendBase() *spectral.Dataset {
	ds:=spectral.NewDataset(2, 2)
	copy(ds.Col(0), []float64{1, 2})
	copy(ds.Col(1), []float64{10, 20})
	return ds
}

func TestAppendColumns(t *testing.T) {
	fileName:=writeTestCSV(t, "# extra scan\n1.0,30.0\n2.0,40.0\n")
	ds:=newAppendBase()
	tr:=NewTrAppend(fileName, "#", ",", false)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Rows!=2 || ds.Cols!=4 {
		t.Fatalf("got shape (%d,%d), want (2,4)", ds.Rows, ds.Cols)
	}
	if ds.At(0, 3)!=30 || ds.At(1, 3)!=40 {
		t.Errorf("appended frame: got (%v,%v)", ds.At(0, 3), ds.At(1, 3))
	}
	if !strings.Contains(ds.PreviousComments, "extra scan") {
		t.Errorf("previous comments miss the appended file's comments:\n%s", ds.PreviousComments)
	}
}

func TestAppendHorizontal(t *testing.T) {
	fileName:=writeTestCSV(t, "3.0,30.0\n4.0,40.0\n")
	ds:=newAppendBase()
	tr:=NewTrAppend(fileName, "#", ",", true)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Rows!=4 || ds.Cols!=2 {
		t.Fatalf("got shape (%d,%d), want (4,2)", ds.Rows, ds.Cols)
	}
	if ds.At(2, 0)!=3 || ds.At(3, 1)!=40 {
		t.Errorf("appended rows: got (%v,%v)", ds.At(2, 0), ds.At(3, 1))
	}
}

func TestAppendShapeMismatch(t *testing.T) {
	fileName:=writeTestCSV(t, "1.0,1.0\n2.0,2.0\n3.0,3.0\n")
	ds:=newAppendBase()
	err:=NewTrAppend(fileName, "#", ",", false).Transform(ds, NewContext(io.Discard))
	if !errors.Is(err, numeric.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}
