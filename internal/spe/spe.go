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


// Package spe decodes Princeton Instruments SPE 3.0 spectroscopy files:
// a fixed-size binary header, frame data as little-endian counts from byte
// 4100 onwards, and an XML footer whose start offset is stored at byte 678.
package spe

import (
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	xmlOffsetPos = 678  // file position of the footer offset field
	dataPos      = 4100 // file position of the first frame
)

// A decoded SPE file: the wavelength axis, one intensity array per frame,
// and the descriptive metadata from the XML footer
type Data struct {
	FrameCount       int
	FrameSizeBytes   int64 // bytes per frame, all regions, without metadata
	FrameStrideBytes int64 // bytes per frame stride, including metadata
	Exposure         float64 // exposure time in seconds
	CenterWavelength float64 // center wavelength in nanometers
	Grating          string
	Wavelength       []float64
	Frames           [][]uint16
	FileName         string
	Created          string
}

// XML footer layout, reduced to the elements this decoder needs
type speFormat struct {
	DataFormat struct {
		DataBlock struct {
			Count     int `xml:"count,attr"`
			DataBlock struct {
				Size   int64 `xml:"size,attr"`
				Stride int64 `xml:"stride,attr"`
			} `xml:"DataBlock"`
		} `xml:"DataBlock"`
	} `xml:"DataFormat"`
	Calibrations struct {
		WavelengthMapping struct {
			Wavelength string `xml:"Wavelength"`
		} `xml:"WavelengthMapping"`
	} `xml:"Calibrations"`
	DataHistories struct {
		DataHistory struct {
			Origin struct {
				Created    string `xml:"created,attr"`
				Experiment struct {
					Devices struct {
						Cameras struct {
							Camera struct {
								ShutterTiming struct {
									ExposureTime string `xml:"ExposureTime"`
								} `xml:"ShutterTiming"`
								Experiment struct {
									FileNameGeneration struct {
										BaseFileName string `xml:"BaseFileName"`
									} `xml:"FileNameGeneration"`
								} `xml:"Experiment"`
							} `xml:"Camera"`
						} `xml:"Cameras"`
						Spectrometers struct {
							Spectrometer struct {
								Grating struct {
									CenterWavelength string `xml:"CenterWavelength"`
									Selected         string `xml:"Selected"`
								} `xml:"Grating"`
							} `xml:"Spectrometer"`
						} `xml:"Spectrometers"`
					} `xml:"Devices"`
				} `xml:"Experiment"`
			} `xml:"Origin"`
		} `xml:"DataHistory"`
	} `xml:"DataHistories"`
}

// Decodes an SPE file from disk
func ReadFile(fileName string) (*Data, error) {
	f, err:=os.Open(fileName)
	if err!=nil { return nil, err }
	defer f.Close()

	// locate and read the XML footer
	offsetBuf:=make([]byte, 8)
	if _, err:=f.ReadAt(offsetBuf, xmlOffsetPos); err!=nil {
		return nil, fmt.Errorf("cannot read footer offset: %s", err.Error())
	}
	xmlOffset:=int64(binary.LittleEndian.Uint64(offsetBuf))
	if _, err:=f.Seek(xmlOffset, io.SeekStart); err!=nil { return nil, err }
	footer, err:=io.ReadAll(f)
	if err!=nil { return nil, err }

	d, err:=newFromFooter(footer)
	if err!=nil { return nil, err }

	// read frame data, assuming full vertical binning
	if _, err:=f.Seek(dataPos, io.SeekStart); err!=nil { return nil, err }
	countsBuf:=make([]byte, d.FrameSizeBytes)
	for pos:=int64(dataPos); pos+d.FrameStrideBytes<=xmlOffset; pos+=d.FrameStrideBytes {
		if _, err:=io.ReadFull(f, countsBuf); err!=nil {
			return nil, fmt.Errorf("cannot read frame %d: %s", len(d.Frames), err.Error())
		}
		frame:=make([]uint16, len(countsBuf)/2)
		for i:=range frame {
			frame[i]=binary.LittleEndian.Uint16(countsBuf[2*i:])
		}
		if len(frame)!=len(d.Wavelength) {
			return nil, fmt.Errorf("frame %d has %d samples, wavelength axis has %d",
				len(d.Frames), len(frame), len(d.Wavelength))
		}
		d.Frames=append(d.Frames, frame)
	}
	return d, nil
}

// Descriptive text for the file header of derived datasets
func (d *Data) MetadataString() string {
	b:=strings.Builder{}
	fmt.Fprintf(&b, "filename = %s\n", d.FileName)
	fmt.Fprintf(&b, "created = %s\n", d.Created)
	fmt.Fprintf(&b, "grating = %s\n", d.Grating)
	fmt.Fprintf(&b, "center wavelength = %g\n", d.CenterWavelength)
	fmt.Fprintf(&b, "exposure time = %g\n", d.Exposure)
	fmt.Fprintf(&b, "frame count = %d\n", d.FrameCount)
	return b.String()
}

func newFromFooter(footer []byte) (*Data, error) {
	format:=speFormat{}
	if err:=xml.Unmarshal(footer, &format); err!=nil {
		return nil, fmt.Errorf("cannot parse XML footer: %s", err.Error())
	}

	block:=format.DataFormat.DataBlock
	if block.Count==0 || block.DataBlock.Size==0 || block.DataBlock.Stride==0 {
		return nil, fmt.Errorf("frame description missing from XML footer")
	}

	origin:=format.DataHistories.DataHistory.Origin
	grating:=origin.Experiment.Devices.Spectrometers.Spectrometer.Grating
	centerWavelength, err:=strconv.ParseFloat(strings.TrimSpace(grating.CenterWavelength), 64)
	if err!=nil { return nil, fmt.Errorf("center wavelength not found in XML footer") }

	exposureMS, err:=strconv.ParseFloat(strings.TrimSpace(origin.Experiment.Devices.Cameras.Camera.ShutterTiming.ExposureTime), 64)
	if err!=nil { return nil, fmt.Errorf("exposure time not found in XML footer") }

	wavelengthRaw:=strings.TrimSpace(format.Calibrations.WavelengthMapping.Wavelength)
	if wavelengthRaw=="" { return nil, fmt.Errorf("wavelength axis not found in XML footer") }
	wavelength, err:=parseWavelengths(wavelengthRaw)
	if err!=nil { return nil, fmt.Errorf("cannot parse wavelength axis: %s", err.Error()) }

	return &Data{
		FrameCount:       block.Count,
		FrameSizeBytes:   block.DataBlock.Size,
		FrameStrideBytes: block.DataBlock.Stride,
		Exposure:         exposureMS/1000.0,
		CenterWavelength: centerWavelength,
		Grating:          grating.Selected,
		Wavelength:       wavelength,
		FileName:         origin.Experiment.Devices.Cameras.Camera.Experiment.FileNameGeneration.BaseFileName,
		Created:          origin.Created,
	}, nil
}

func parseWavelengths(raw string) ([]float64, error) {
	parts:=strings.Split(raw, ",")
	result:=make([]float64, len(parts))
	for i,part:=range parts {
		v, err:=strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err!=nil { return nil, err }
		result[i]=v
	}
	return result, nil
}
