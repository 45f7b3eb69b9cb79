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
	"errors"
	"fmt"
)

var (
	ErrOutOfRange     = errors.New("frame number out of range")
	ErrEmptySelection = errors.New("empty frame selection")
)

// A spectroscopic dataset: a matrix of float64 with an even number of
// columns. Column 2k holds the x axis (wavelength or shift) of frame k+1,
// column 2k+1 its intensities. All frames share the same row count.
// Frames are numbered from 1 in user-facing APIs, 0-based internally.
//
// Data is stored column-major, so a column is a contiguous subslice.
type Dataset struct {
	Data []float64 // column-major, Data[j*Rows+i]
	Rows int
	Cols int

	Metadata         string // provenance of every transformation applied so far
	PreviousComments string // comment text from prior runs and input files, never interpreted
}

// Creates a zeroed dataset of the given shape
func NewDataset(rows, cols int) *Dataset {
	return &Dataset{
		Data: make([]float64, rows*cols),
		Rows: rows,
		Cols: cols,
	}
}

func (ds *Dataset) At(i, j int) float64     { return ds.Data[j*ds.Rows+i] }
func (ds *Dataset) Set(i, j int, v float64) { ds.Data[j*ds.Rows+i]=v }

// Returns column j as a mutable view into the dataset
func (ds *Dataset) Col(j int) []float64 {
	return ds.Data[j*ds.Rows : (j+1)*ds.Rows]
}

// Number of frames, i.e. column pairs
func (ds *Dataset) NumFrames() int { return ds.Cols/2 }

// Replaces this dataset's matrix with another dataset's matrix,
// keeping metadata and previous comments in place
func (ds *Dataset) ReplaceMatrix(other *Dataset) {
	ds.Data=other.Data
	ds.Rows=other.Rows
	ds.Cols=other.Cols
}

// Returns the x and y columns of frame k (0-based) as mutable views
func (ds *Dataset) Frame(k int) (xs, ys []float64) {
	return ds.Col(2*k), ds.Col(2*k+1)
}

// Tests that a 1-based frame number is in bounds
func (ds *Dataset) VerifyOneFrameInBounds(frameNo int) error {
	if frameNo<=0 {
		return fmt.Errorf("%w: frame count starts at 1, frame %d is invalid", ErrOutOfRange, frameNo)
	}
	if (frameNo-1)*2>=ds.Cols {
		return fmt.Errorf("%w: frame number %d is out of bounds, largest valid frame number is %d",
			ErrOutOfRange, frameNo, ds.Cols/2)
	}
	return nil
}

// Tests that all given 1-based frame numbers are in bounds
func (ds *Dataset) VerifyFramesInBounds(frames []int) error {
	for _,frame:=range frames {
		if err:=ds.VerifyOneFrameInBounds(frame); err!=nil { return err }
	}
	return nil
}

// Returns a freshly copied dataset holding only the requested 1-based frames,
// or all but the requested frames if invert is set. Metadata is not copied
func (ds *Dataset) SelectFrames(frames []int, invert bool) (*Dataset, error) {
	if err:=ds.VerifyFramesInBounds(frames); err!=nil { return nil, err }

	selection:=[]int{}
	for k:=0; k<ds.NumFrames(); k++ {
		if invert!=containsInt(frames, k+1) {
			selection=append(selection, k)
		}
	}
	if len(selection)==0 {
		return nil, fmt.Errorf("%w: selection does not yield any frames: %v", ErrEmptySelection, frames)
	}

	out:=NewDataset(ds.Rows, 2*len(selection))
	for o,k:=range selection {
		copy(out.Col(2*o),   ds.Col(2*k))
		copy(out.Col(2*o+1), ds.Col(2*k+1))
	}
	return out, nil
}

func containsInt(a []int, v int) bool {
	for _,x:=range a {
		if x==v { return true }
	}
	return false
}

// Creates the 8x8 test dataset used across package tests
func NewTestDummy() *Dataset {
	ds:=NewDataset(8, 8)
	for i:=0; i<8; i++ {
		for j:=0; j<8; j++ {
			ds.Set(i, j, float64((i+1)*10+j+1))
		}
	}
	return ds
}
