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
	"fmt"
	"math"

	"github.com/mlnoga/ramantools/internal/median"
	"github.com/mlnoga/ramantools/internal/numeric"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// Fixed parameters of the cosmic ray detection, following van Dokkum 2001
const (
	despikeGain      =1.0
	despikeReadNoise =6.0
	despikeIterations=4
)

// Removes cosmic ray spikes with Laplacian edge detection per van Dokkum
// 2001. The intensity columns are stacked into a pixel-by-frame image,
// flagged pixels are replaced with their 3x3 median. Siglim bounds the
// Laplacian signal to noise, Flim the ratio of Laplacian to fine
// structure. MaskFile optionally stores the detection mask as a 16-bit
// grayscale TIFF for inspection
type TrDespike struct {
	TrBase `yaml:",inline"`
	Siglim   float64 `yaml:"siglim"`
	Flim     float64 `yaml:"flim"`
	MaskFile string  `yaml:"mask_file,omitempty"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrDespikeDefault() }) } // register for provenance decoding

func NewTrDespikeDefault() *TrDespike { return NewTrDespike(0, 0) }

func NewTrDespike(siglim, flim float64) *TrDespike {
	return &TrDespike{
		TrBase : TrBase{Transformation: "DespikeTransform"},
		Siglim : siglim,
		Flim   : flim,
	}
}

func (tr *TrDespike) Transform(ds *spectral.Dataset, c *Context) error {
	rows, numFrames:=ds.Rows, ds.NumFrames()
	if rows<2 || numFrames<2 {
		return fmt.Errorf("%w: spectral dataset must have at least 2 rows and 2 columns, got %d and %d",
			numeric.ErrInsufficientData, rows, numFrames)
	}
	input:=median.NewGrid(rows, numFrames)
	for k:=0; k<numFrames; k++ {
		_, ys:=ds.Frame(k)
		for i,y:=range ys { input.Data[i*numFrames+k]=y }
	}
	mask:=make([]bool, rows*numFrames)
	despikeGrid(input, tr.Siglim, tr.Flim, despikeGain, despikeReadNoise, despikeIterations, mask)
	for k:=0; k<numFrames; k++ {
		_, ys:=ds.Frame(k)
		for i:=range ys { ys[i]=input.Data[i*numFrames+k] }
	}

	if tr.MaskFile!="" {
		maskImage:=make([]float64, len(mask))
		for i,m:=range mask {
			if m { maskImage[i]=1.0 }
		}
		if err:=spectral.WriteGrayTIFF16File(tr.MaskFile, maskImage, numFrames); err!=nil {
			return fmt.Errorf("cannot write despike mask to %s: %s", tr.MaskFile, err.Error())
		}
		fmt.Fprintf(c.Log, "Wrote despike mask to %s\n", tr.MaskFile)
	}
	return nil
}

// Iteratively detects and replaces cosmic rays in the pixel-by-frame image,
// modifying input in place and recording detections in mask
func despikeGrid(input *median.Grid, siglim, flim, gain, readNoise float64, iterations int, mask []bool) {
	rows, cols:=input.Rows, input.Cols
	laplacian     :=median.NewGrid(rows, cols)
	medianFiltered:=median.NewGrid(rows, cols)
	signalToNoise :=median.NewGrid(rows, cols)
	fineStructure :=median.NewGrid(rows, cols)
	buf:=make([]float64, 7*7)

	for it:=0; it<iterations; it++ {
		laplaceConvolve(laplacian, input)

		// equation 10 in van Dokkum 2001: S = laplacian / (2*noise)
		median.FilterWindow(medianFiltered, input, 5, buf)
		for idx:=range signalToNoise.Data {
			noise:=math.Sqrt(gain*medianFiltered.Data[idx]+readNoise*readNoise)/gain
			signalToNoise.Data[idx]=laplacian.Data[idx]/(2.0*noise)
		}
		// equation 13: S' = S - median5x5(S) rejects smooth structure
		median.FilterWindow(medianFiltered, signalToNoise, 5, buf)
		for idx:=range signalToNoise.Data {
			signalToNoise.Data[idx]-=medianFiltered.Data[idx]
		}

		// equation 14: fine structure image F = median3x3 - median7x7(median3x3)
		median.FilterWindow(medianFiltered, input, 3, buf)
		median.FilterWindow(fineStructure, medianFiltered, 7, buf)
		for idx:=range fineStructure.Data {
			fineStructure.Data[idx]=medianFiltered.Data[idx]-fineStructure.Data[idx]
		}

		for idx:=range input.Data {
			isCosmicRay:=signalToNoise.Data[idx]>siglim &&
				laplacian.Data[idx]/fineStructure.Data[idx]>flim
			if isCosmicRay {
				mask[idx]=true
				input.Data[idx]=medianFiltered.Data[idx] // 3x3 median of current input
			}
		}
	}
}

// Applies the Laplacian kernel
//
//	 0 -1  0
//	-1  4 -1
//	 0 -1  0
//
// at twofold supersampling, keeping only positive subpixel responses.
// Edges are handled by the grids' mirrored indexing
func laplaceConvolve(out, in *median.Grid) {
	for i:=0; i<in.Rows; i++ {
		for j:=0; j<in.Cols; j++ {
			ij  :=in.At(i,   j)
			im1j:=in.At(i-1, j)
			ijm1:=in.At(i,   j-1)
			ip1j:=in.At(i+1, j)
			ijp1:=in.At(i,   j+1)
			upperLeft :=2.0*ij-im1j-ijm1
			upperRight:=2.0*ij-im1j-ijp1
			lowerLeft :=2.0*ij-ip1j-ijm1
			lowerRight:=2.0*ij-ip1j-ijp1
			sum:=0.0
			for _,v:=range [4]float64{lowerRight, lowerLeft, upperRight, upperLeft} {
				if v>0.0 { sum+=v }
			}
			out.Data[i*out.Cols+j]=sum
		}
	}
}
