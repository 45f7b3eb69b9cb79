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


package median

import (
	"testing"
)

func TestMirrorIndex(t *testing.T) {
	tcs:=[]struct{ idx, n, expect int }{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 1},
		{-2, 5, 2},
		{5, 5, 4},
		{6, 5, 3},
		{7, 5, 2},
	}
	for _,tc:=range tcs {
		if got:=MirrorIndex(tc.idx, tc.n); got!=tc.expect {
			t.Errorf("MirrorIndex(%d, %d)=%d; want %d", tc.idx, tc.n, got, tc.expect)
		}
	}
}

func TestFilterWindowFlat(t *testing.T) {
	in:=NewGrid(3, 3)
	for i:=range in.Data { in.Data[i]=1 }
	in.Set(1, 1, 2)

	out:=NewGrid(3, 3)
	buf:=make([]float64, 9)
	FilterWindow(out, in, 3, buf)

	for i:=0; i<3; i++ {
		for j:=0; j<3; j++ {
			if out.At(i, j)!=1 {
				t.Errorf("out[%d,%d]=%f; want 1", i, j, out.At(i, j))
			}
		}
	}
}

func TestFilterWindowSpike(t *testing.T) {
	in:=NewGrid(8, 8)
	for i:=range in.Data { in.Data[i]=10 }
	in.Set(4, 4, 1000)

	out:=NewGrid(8, 8)
	buf:=make([]float64, 25)
	FilterWindow(out, in, 5, buf)

	// a single outlier in a 5x5 window never reaches the middle of the sorted values
	for i:=0; i<8; i++ {
		for j:=0; j<8; j++ {
			if out.At(i, j)!=10 {
				t.Errorf("out[%d,%d]=%f; want 10", i, j, out.At(i, j))
			}
		}
	}
}
