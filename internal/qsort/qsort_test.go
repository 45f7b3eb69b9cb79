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


package qsort

import (
	"testing"
	"github.com/valyala/fastrand"
)


func TestSelectMedian(t *testing.T) {
	rng:=fastrand.RNG{}
	for i:=1; i<1000; i++ {
		// prepare array of given length with a random permutation of 1..n
		arr:=make([]float64, i)
		for j:=0; j<len(arr); j++ {
			arr[j]=float64(j+1)
		}
		for j:=0; j<len(arr); j++ {
			k:=rng.Uint32n(uint32(len(arr)))
			arr[j], arr[k] = arr[k], arr[j]
		}

		// the middle element of the sorted 1..n sequence, no averaging
		expect:=float64((i>>1)+1)

		res:=QSelectMedianFloat64(arr)
		if res!=expect {
			t.Logf("median(1..%d) got %f expect %f\n", i, res, expect)
			t.Fail()
		}
	}
}

func TestSelectKth(t *testing.T) {
	rng:=fastrand.RNG{}
	for i:=1; i<200; i++ {
		arr:=make([]float64, i)
		for j:=0; j<len(arr); j++ {
			arr[j]=float64(j+1)
		}
		for j:=0; j<len(arr); j++ {
			k:=rng.Uint32n(uint32(len(arr)))
			arr[j], arr[k] = arr[k], arr[j]
		}

		k:=int(rng.Uint32n(uint32(i)))+1
		res:=QSelectFloat64(arr, k)
		if res!=float64(k) {
			t.Logf("kth(1..%d, %d) got %f expect %d\n", i, k, res, k)
			t.Fail()
		}
	}
}

func TestSort(t *testing.T) {
	rng:=fastrand.RNG{}
	arr:=make([]float64, 257)
	for j:=0; j<len(arr); j++ {
		arr[j]=float64(j+1)
	}
	for j:=0; j<len(arr); j++ {
		k:=rng.Uint32n(uint32(len(arr)))
		arr[j], arr[k] = arr[k], arr[j]
	}

	QSortFloat64(arr)
	for j:=0; j<len(arr); j++ {
		if arr[j]!=float64(j+1) {
			t.Fatalf("sorted[%d]=%f expect %d", j, arr[j], j+1)
		}
	}
}
