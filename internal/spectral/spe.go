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
	"fmt"

	"github.com/mlnoga/ramantools/internal/spe"
)

// Builds a frame-paired dataset from a decoded instrument file. Every frame
// gets the shared wavelength axis as its x column and its counts as y.
func NewDatasetFromSPE(d *spe.Data) (*Dataset, error) {
	if len(d.Frames)==0 { return nil, fmt.Errorf("instrument file contains no frames") }
	rows:=len(d.Wavelength)
	ds:=NewDataset(rows, 2*len(d.Frames))
	for k,frame:=range d.Frames {
		xs, ys:=ds.Frame(k)
		copy(xs, d.Wavelength)
		for i,c:=range frame { ys[i]=float64(c) }
	}
	ds.Metadata=d.MetadataString()
	return ds, nil
}

// Reads an SPE file from disk and converts it into a dataset
func ReadSPEFile(fileName string) (*Dataset, float64, error) {
	d, err:=spe.ReadFile(fileName)
	if err!=nil { return nil, 0, err }
	ds, err:=NewDatasetFromSPE(d)
	if err!=nil { return nil, 0, err }
	return ds, d.Exposure, nil
}
