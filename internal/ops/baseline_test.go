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

func TestBaselineSplineCatmullRom(t *testing.T) {
	// anchors on the parabola y=x^2: Catmull-Rom reproduces it exactly
	// in the interior segments
	s:=newBaselineSpline([]Pair{{A: 0, B: 0}, {A: 1, B: 1}, {A: 2, B: 4}, {A: 3, B: 9}, {A: 4, B: 16}})
	tests:=[]struct{ x, want float64 }{
		{0.5, 0.5},   // first segment interpolates linearly
		{1.5, 2.25},
		{2.5, 6.25},
		{-1, 0},      // out of range
		{4, 0},       // exactly on the last anchor is out of range, too
		{5, 0},
	}
	for _,tt:=range tests {
		if got:=s.sample(tt.x); math.Abs(got-tt.want)>1e-12 {
			t.Errorf("sample(%v): got %v want %v", tt.x, got, tt.want)
		}
	}
}

func TestBaselineSubtract(t *testing.T) {
	ds:=spectral.NewDataset(3, 2)
	copy(ds.Col(0), []float64{2, 4, 20})
	copy(ds.Col(1), []float64{10, 10, 10})
	tr:=NewTrBaseline([]Pair{{A: 0, B: 0}, {A: 10, B: 10}}, false)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	want:=[]float64{8, 6, 10} // x=20 lies outside the spline and stays untouched
	for i,w:=range want {
		if got:=ds.At(i, 1); got!=w {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestBaselineStore(t *testing.T) {
	ds:=spectral.NewDataset(3, 2)
	copy(ds.Col(0), []float64{2, 4, 6})
	copy(ds.Col(1), []float64{10, 10, 10})
	tr:=NewTrBaseline([]Pair{{A: 0, B: 0}, {A: 10, B: 10}}, true)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Cols!=4 { t.Fatalf("got %d columns, want 4", ds.Cols) }
	for i:=0; i<3; i++ {
		if ds.At(i, 1)!=10 {
			t.Errorf("row %d: original intensities must stay untouched", i)
		}
		x:=ds.At(i, 2)
		if x!=ds.At(i, 0) || ds.At(i, 3)!=x {
			t.Errorf("row %d: baseline frame got (%v,%v), want (%v,%v)", i, x, ds.At(i, 3), ds.At(i, 0), x)
		}
	}
}

func TestBaselineNeedsTwoPoints(t *testing.T) {
	ds:=spectral.NewTestDummy()
	want:=append([]float64(nil), ds.Data...)
	if err:=NewTrBaseline([]Pair{{A: 1, B: 1}}, false).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	for i,w:=range want {
		if ds.Data[i]!=w { t.Fatalf("dataset changed at %d", i) }
	}
}
