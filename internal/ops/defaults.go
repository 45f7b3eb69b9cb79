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

// The standard evaluation chain for raw PyLoN CCD exposures: split the
// long readout column into frames, remove cosmic rays, average, pin the
// noise floor to zero, convert wavelengths to Raman shift for a 532.1nm
// laser and scale counts to photoelectrons per second
func NewDefaultPipeline() *Pipeline {
	correction:=0.0
	return NewPipeline(
		NewTrReshape(1340),
		NewTrFinning(2.5, 4),
		NewTrAverage(),
		NewTrOffset(0.05, true, nil),
		NewTrRamanShift(532.1, 1.000264, &correction),
		NewTrCountConversionDefault(),
	)
}
