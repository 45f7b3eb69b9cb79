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

func TestAverage(t *testing.T) {
	ds:=spectral.NewTestDummy()
	if err:=NewTrAverage().Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Rows!=8 || ds.Cols!=2 {
		t.Fatalf("got shape (%d,%d), want (8,2)", ds.Rows, ds.Cols)
	}
	for i:=0; i<8; i++ {
		wantX:=float64((i+1)*10+1)
		wantY:=float64((i+1)*10+5) // mean of columns 2,4,6,8
		if ds.At(i, 0)!=wantX || ds.At(i, 1)!=wantY {
			t.Errorf("row %d: got (%v,%v) want (%v,%v)", i, ds.At(i, 0), ds.At(i, 1), wantX, wantY)
		}
	}
}

func TestCountConversion(t *testing.T) {
	ds:=spectral.NewDataset(3, 2)
	copy(ds.Col(0), []float64{0, 1, 3})
	copy(ds.Col(1), []float64{8, 8, 8})
	tr:=NewTrCountConversion(2.0, 2.0)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	want:=[]float64{2, 1, 1} // last row reuses the previous x step
	for i,w:=range want {
		if got:=ds.At(i, 1); got!=w {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestRamanShift(t *testing.T) {
	ds:=spectral.NewDataset(2, 2)
	copy(ds.Col(0), []float64{400, 500})
	correction:=7.0
	tr:=NewTrRamanShift(500, 1.0, &correction)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	want:=[]float64{1e7/500-1e7/400+7, 7} // the laser line lands on the correction offset
	for i,w:=range want {
		if got:=ds.At(i, 0); math.Abs(got-w)>1e-9 {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestCalibration(t *testing.T) {
	newDs:=func() *spectral.Dataset {
		ds:=spectral.NewDataset(3, 2)
		copy(ds.Col(0), []float64{1, 2, 3})
		return ds
	}
	tests:=[]struct{ name string
		points []Pair
		want   []float64
	}{
		{"twoPoints", []Pair{{A: 1, B: 3}, {A: 2, B: 5}}, []float64{3, 5, 7}},   // slope 2, intercept 1
		{"onePoint",  []Pair{{A: 2, B: 5}},               []float64{4, 5, 6}},   // pure offset
		{"noPoints",  nil,                                []float64{1, 2, 3}},   // unchanged
	}
	for _,tt:=range tests {
		ds:=newDs()
		if err:=NewTrCalibration(tt.points).Transform(ds, NewContext(io.Discard)); err!=nil {
			t.Fatalf("%s: %s", tt.name, err.Error())
		}
		for i,w:=range tt.want {
			if got:=ds.At(i, 0); math.Abs(got-w)>1e-12 {
				t.Errorf("%s row %d: got %v want %v", tt.name, i, got, w)
			}
		}
	}
}

func TestMask(t *testing.T) {
	ds:=spectral.NewTestDummy()
	tr:=NewTrMask([]IntPair{
		{A: 2, B: 3},  // frame 2, pixel 3
		{A: 0, B: 1},  // out of bounds, skipped with a warning
		{A: 99, B: 1}, // out of bounds, skipped with a warning
	})
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	want:=(32.0+36.0+38.0)/3.0 // mean of unmasked intensities for pixel 3
	if got:=ds.At(2, 3); got!=want {
		t.Errorf("masked value: got %v want %v", got, want)
	}
	if got:=ds.At(2, 1); got!=32 {
		t.Errorf("unmasked value changed: got %v", got)
	}
}

func TestSubtractDirect(t *testing.T) {
	ds:=spectral.NewTestDummy()
	tr:=NewTrSubtract(1, []int{2}, true)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	if ds.Cols!=2 { t.Fatalf("got %d columns, want 2", ds.Cols) }
	for i:=0; i<8; i++ {
		// frame 2 keeps its own axis, intensities differ by 2
		if ds.At(i, 0)!=float64((i+1)*10+3) || ds.At(i, 1)!=2 {
			t.Errorf("row %d: got (%v,%v)", i, ds.At(i, 0), ds.At(i, 1))
		}
	}
}

func TestSubtractResampled(t *testing.T) {
	ds:=spectral.NewDataset(3, 4)
	copy(ds.Col(0), []float64{1, 2, 3})
	copy(ds.Col(1), []float64{1, 2, 3})
	copy(ds.Col(2), []float64{1, 2, 3})
	copy(ds.Col(3), []float64{5, 6, 7})
	tr:=NewTrSubtract(1, nil, false)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil { t.Fatal(err) }
	for i:=0; i<3; i++ {
		if ds.At(i, 0)!=float64(i+1) || ds.At(i, 1)!=4 {
			t.Errorf("row %d: got (%v,%v), want (%v,4)", i, ds.At(i, 0), ds.At(i, 1), i+1)
		}
	}
}

func TestSubtractRejectsSelfSubtraction(t *testing.T) {
	ds:=spectral.NewTestDummy()
	if err:=NewTrSubtract(1, []int{1, 2}, false).Transform(ds, NewContext(io.Discard)); err==nil {
		t.Error("expected error when minuends contain the subtrahend")
	}
}
