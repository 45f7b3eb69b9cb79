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
	"bufio"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/tiff"
)

// Writes a row-major width x height float64 matrix as 16-bit grayscale TIFF,
// scaling [min, max] of the data onto the full intensity range
func WriteGrayTIFF16(w io.Writer, data []float64, width int) error {
	height:=len(data)/width

	min, max:=math.Inf(1), math.Inf(-1)
	for _,v:=range data {
		if v<min { min=v }
		if v>max { max=v }
	}
	scale:=0.0
	if max>min { scale=65535.0/(max-min) }

	img:=image.NewGray16(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	for y:=0; y<height; y++ {
		for x:=0; x<width; x++ {
			v:=(data[y*width+x]-min)*scale
			if v<0 { v=0 }
			if v>65535 { v=65535 }
			img.SetGray16(x, y, color.Gray16{uint16(v)})
		}
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Writes a row-major float64 matrix as 16-bit grayscale TIFF to a file
func WriteGrayTIFF16File(fileName string, data []float64, width int) error {
	f, err:=os.Create(fileName)
	if err!=nil { return err }
	defer f.Close()

	w:=bufio.NewWriter(f)
	defer w.Flush()
	return WriteGrayTIFF16(w, data, width)
}
