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

	"github.com/mlnoga/ramantools/internal/spectral"
)

// Replaces manually masked data points, given as 1-based frame,pixel pairs,
// with the mean intensity of the unmasked frames for that pixel.
// Out-of-bounds pairs and pixels with no unmasked frames left are
// reported and skipped
type TrMask struct {
	TrBase `yaml:",inline"`
	Mask []IntPair `yaml:"mask"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrMaskDefault() }) } // register for provenance decoding

func NewTrMaskDefault() *TrMask { return NewTrMask(nil) }

func NewTrMask(mask []IntPair) *TrMask {
	return &TrMask{
		TrBase : TrBase{Transformation: "MaskTransform"},
		Mask   : mask,
	}
}

func (tr *TrMask) Transform(ds *spectral.Dataset, c *Context) error {
	// group masked frames by pixel to simplify the actual masking
	mask:=map[int]map[int]bool{}
	for _,p:=range tr.Mask {
		// translate 1-based frame,pixel numbers into 0-based matrix indices.
		// only every other odd column holds intensities, so frameIdx = 2a-1
		frameIdx, pixelIdx:=2*p.A-1, p.B-1
		if frameIdx<0 || frameIdx>=ds.Cols || pixelIdx<0 || pixelIdx>=ds.Rows {
			fmt.Fprintf(c.Log, "frame,pixel = %d,%d is out of bounds\n", p.A, p.B)
			continue
		}
		if mask[pixelIdx]==nil { mask[pixelIdx]=map[int]bool{} }
		mask[pixelIdx][frameIdx]=true
	}

	for pixelIdx, frameIndices:=range mask {
		// the mean intensity of the unmasked frames replaces the masked values
		sum, n:=0.0, 0
		for j:=1; j<ds.Cols; j+=2 {
			if frameIndices[j] { continue }
			sum+=ds.At(pixelIdx, j)
			n++
		}
		if n==0 {
			fmt.Fprintf(c.Log, "no data left for pixel %d, skipping\n", pixelIdx+1)
			continue
		}
		mean:=sum/float64(n)
		for j:=range frameIndices {
			ds.Set(pixelIdx, j, mean)
		}
	}
	return nil
}
