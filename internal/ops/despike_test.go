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

	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// a flat field with a single cosmic ray must come out flat,
// with all other values untouched bit for bit
func TestDespikeSingleSpike(t *testing.T) {
	ds:=spectral.NewDataset(8, 8)
	for k:=0; k<4; k++ {
		xs, ys:=ds.Frame(k)
		for i:=range xs {
			xs[i]=float64(i + 1)
			ys[i]=10.0
		}
	}
	ds.Set(4, 5, 1000.0) // spike in frame 3, pixel 4

	tr:=NewTrDespike(10.0, 10.0)
	if err:=tr.Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatalf("transform: %s", err.Error())
	}
	for i:=0; i<8; i++ {
		for j:=0; j<8; j++ {
			want:=10.0
			if j%2==0 { want=float64(i + 1) }
			if got:=ds.At(i, j); got!=want {
				t.Errorf("at (%d,%d): got %v want %v", i, j, got, want)
			}
		}
	}
}

func TestDespikeTooSmall(t *testing.T) {
	ds:=spectral.NewDataset(1, 8)
	err:=NewTrDespike(10, 10).Transform(ds, NewContext(io.Discard))
	if !errors.Is(err, numeric.ErrInsufficientData) {
		t.Errorf("1 row: got %v, want ErrInsufficientData", err)
	}
	ds=spectral.NewDataset(8, 2)
	err=NewTrDespike(10, 10).Transform(ds, NewContext(io.Discard))
	if !errors.Is(err, numeric.ErrInsufficientData) {
		t.Errorf("1 frame: got %v, want ErrInsufficientData", err)
	}
}
