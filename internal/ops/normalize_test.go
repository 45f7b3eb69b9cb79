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
	"io"
	"math"
	"testing"

	"github.com/mlnoga/ramantools/internal/spectral"
)

func newNormalizeInput() *spectral.Dataset {
	ds:=spectral.NewDataset(3, 2)
	copy(ds.Col(0), []float64{1, 2, 3})
	copy(ds.Col(1), []float64{2, 4, 8})
	return ds
}

func TestNormalizeNearest(t *testing.T) {
	ds:=newNormalizeInput()
	if err:=NewTrNormalize(2.1, nil, false, nil).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	want:=[]float64{0.5, 1, 2} // divided by the intensity nearest to x=2.1
	for i,w:=range want {
		if got:=ds.At(i, 1); got!=w {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestNormalizeIntegral(t *testing.T) {
	ds:=newNormalizeInput()
	xj:=3.0
	if err:=NewTrNormalize(1, &xj, false, nil).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	want:=[]float64{2.0/6.0, 4.0/6.0, 8.0/6.0}
	for i,w:=range want {
		if got:=ds.At(i, 1); math.Abs(got-w)>1e-12 {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestNormalizeTargetFrames(t *testing.T) {
	ds:=spectral.NewTestDummy()
	if err:=NewTrNormalize(11, nil, false, []int{2}).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	if got:=ds.At(0, 1); got!=12 {
		t.Errorf("frame 1 must stay untouched, got %v", got)
	}
	if got:=ds.At(0, 3); got!=1 {
		t.Errorf("frame 2 must be normalized to its first row, got %v", got)
	}
}

func TestNormalizeFilterRangeLeavesFrame(t *testing.T) {
	ds:=newNormalizeInput()
	tr:=NewTrNormalize(2, nil, false, nil)
	tr.FilterRange=&Pair{A: 1, B: 3}
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	want:=[]float64{2, 4, 8}
	for i,w:=range want {
		if got:=ds.At(i, 1); got!=w {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestIntegrateLocalBaseline(t *testing.T) {
	ds:=spectral.NewTestDummy()
	tr:=NewTrIntegrate([]Pair{{A: 31, B: 61}}, true)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Rows!=4 || ds.Cols!=2 {
		t.Fatalf("got shape (%d,%d), want (4,2)", ds.Rows, ds.Cols)
	}
	for k:=0; k<4; k++ {
		if got:=ds.At(k, 0); got!=float64(k+1) {
			t.Errorf("row %d: frame number got %v", k, got)
		}
		// intensities are linear in x, so the local baseline removes everything
		if got:=ds.At(k, 1); math.Abs(got)>1e-9 {
			t.Errorf("row %d: integral got %v, want 0", k, got)
		}
	}
}

func TestIntegrateDisjointWindow(t *testing.T) {
	ds:=spectral.NewTestDummy()
	if err:=NewTrIntegrate([]Pair{{A: 1000, B: 2000}}, false).Transform(ds, NewContext(io.Discard)); err==nil {
		t.Error("expected error for a window outside the data range")
	}
}
