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
	"testing"

	"github.com/mlnoga/ramantools/internal/spectral"
)

func TestOffsetTargetFrames(t *testing.T) {
	ds:=spectral.NewTestDummy()
	tr:=NewTrOffset(2.0, false, []int{1, 4})
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatalf("transform: %s", err.Error())
	}
	for i:=0; i<8; i++ {
		for j:=0; j<8; j++ {
			want:=float64((i+1)*10+j+1)
			if j==1 || j==7 { want+=2.0 } // intensity columns of frames 1 and 4
			if got:=ds.At(i, j); got!=want {
				t.Errorf("at (%d,%d): got %v want %v", i, j, got, want)
			}
		}
	}
}

func TestOffsetPercentile(t *testing.T) {
	ds:=spectral.NewDataset(4, 2)
	copy(ds.Col(0), []float64{1, 2, 3, 4})
	copy(ds.Col(1), []float64{5, 7, 3, 9})
	tr:=NewTrOffset(0.0, true, nil) // quantile 0 is the minimum
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatalf("transform: %s", err.Error())
	}
	want:=[]float64{2, 4, 0, 6}
	for i,w:=range want {
		if got:=ds.At(i, 1); got!=w {
			t.Errorf("row %d: got %v want %v", i, got, w)
		}
	}
}

func TestOffsetOutOfBounds(t *testing.T) {
	ds:=spectral.NewTestDummy()
	tr:=NewTrOffset(1.0, false, []int{9})
	err:=tr.Transform(ds, NewContext(io.Discard))
	if !errors.Is(err, spectral.ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}
