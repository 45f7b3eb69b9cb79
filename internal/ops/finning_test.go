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

func TestFinning(t *testing.T) {
	ds:=spectral.NewDataset(2, 8)
	for k:=0; k<4; k++ {
		xs, ys:=ds.Frame(k)
		xs[0], xs[1]=1, 2
		ys[0], ys[1]=10, 5
	}
	ds.Set(0, 7, 100) // outlier in frame 4, pixel 1

	// median 10, sample std 45: the outlier exceeds 10+1*45 and gets finned
	if err:=NewTrFinning(1.0, 10).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	for k:=0; k<4; k++ {
		_, ys:=ds.Frame(k)
		if ys[0]!=10 || ys[1]!=5 {
			t.Errorf("frame %d: got (%v,%v), want (10,5)", k+1, ys[0], ys[1])
		}
	}
}

func TestFinningKeepsModerateValues(t *testing.T) {
	ds:=spectral.NewDataset(1, 6)
	vals:=[]float64{10, 12, 14}
	for k:=0; k<3; k++ {
		_, ys:=ds.Frame(k)
		ys[0]=vals[k]
	}
	if err:=NewTrFinning(2.5, 10).Transform(ds, NewContext(io.Discard)); err!=nil {
		t.Fatal(err)
	}
	for k:=0; k<3; k++ {
		_, ys:=ds.Frame(k)
		if ys[0]!=vals[k] {
			t.Errorf("frame %d: got %v want %v", k+1, ys[0], vals[k])
		}
	}
}

func TestFinningNeedsThreeFrames(t *testing.T) {
	ds:=spectral.NewDataset(4, 4)
	err:=NewTrFinning(2.5, 10).Transform(ds, NewContext(io.Discard))
	if !errors.Is(err, numeric.ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}
