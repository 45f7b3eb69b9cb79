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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	rt "github.com/mlnoga/ramantools/internal"
	"github.com/mlnoga/ramantools/internal/ops"
	"github.com/mlnoga/ramantools/internal/rest"
	"github.com/mlnoga/ramantools/internal/spectral"
)

const version = "0.3.1"

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

var out       = flag.String("out", "", "save output to `file` instead of stdout")
var log       = flag.String("log", "", "save log output to `file` in addition to stderr")
var comment   = flag.String("comment", "#", "the character starting a comment")
var delimiter = flag.String("delimiter", ",", "the delimiting character")
var replay    = flag.String("replay", "", "re-run the pipeline recorded in the header of `file` before any further commands")
var showVer   = flag.Bool("version", false, "show version information and exit")

// The command words which start a new argument group. Everything between
// two command words belongs to the earlier command
var commands=[]string{
	"align", "append", "average", "baseline", "calibration", "count-conversion",
	"default", "despike", "finning", "integrate", "mask", "normalize", "offset",
	"reshape", "select", "shift", "subtract",
	"serve", "legal", "version", "help",
}

func isCommand(arg string) bool {
	for _,c:=range commands {
		if arg==c { return true }
	}
	return false
}

// Splits the raw arguments into per-command groups. The first group holds
// the global flags and the input file, each following group starts with a
// command word and carries that command's arguments
func splitArgs(args []string) [][]string {
	groups:=[][]string{{}}
	for _,arg:=range args {
		if isCommand(arg) {
			groups=append(groups, []string{arg})
		} else {
			groups[len(groups)-1]=append(groups[len(groups)-1], arg)
		}
	}
	return groups
}

func main() {
	logWriter:=rt.LogWriter()
	start:=time.Now()
	flag.Usage=func(){
 	    fmt.Fprintf(os.Stderr, `Raman CLI Tools Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (input.csv|input.spe) command [args] (command [args] ...)

Commands:
  align            Align frames to the first frame
  append           Append a dataset from a further input file
  average          Average intensity over all frames
  baseline         Draw and subtract a spline baseline
  calibration      Apply a linear calibration to the wavelength axis
  count-conversion Convert from counts to photoelectrons per second
  default          Run the standard preprocessing pipeline
  despike          Apply laplace edge-detection despike algorithm
  finning          Apply finning despike algorithm
  integrate        Integrate frames in given interval(s)
  mask             Mask data points by frame and pixel number
  normalize        Normalize frames
  offset           Add offset to intensity columns
  reshape          Reshape dataset into different form
  select           Select frames to keep
  shift            Calculate Raman shift
  subtract         Subtract a frame from other frames
  serve            Run the preprocessing REST server
  legal            Show license and attribution information
  version          Show version information

Commands chain left to right, e.g. '%s run.spe reshape 1340 average'.
Each command takes its own arguments; run a command with -help for details.

Flags:
`, os.Args[0], os.Args[0])
	    flag.PrintDefaults()
	}
	groups:=splitArgs(os.Args[1:])
	if err:=flag.CommandLine.Parse(groups[0]); err!=nil { os.Exit(2) }
	if *showVer {
		rt.LogPrintf("Version %s\n", version)
		return
	}

	if *log!="" {
		if err:=rt.LogAlsoToFile(*log); err!=nil { rt.LogFatalf("Unable to open logfile '%s'\n", *log) }
	}

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			rt.LogFatal("Could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			rt.LogFatal("Could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	fileName:=""
	if positional:=flag.CommandLine.Args(); len(positional)>0 { fileName=positional[0] }

	// Informational commands and the server short-circuit the pipeline
	for _,group:=range groups[1:] {
		switch group[0] {
		case "serve":
			fs:=flag.NewFlagSet("serve", flag.ExitOnError)
			chroot:=fs.String("chroot", "", "sandbox the server in this filesystem root (requires root)")
			setuid:=fs.Int("setuid", -1, "drop server privileges to this user ID, -1=keep")
			fs.Parse(group[1:])
			rest.MakeSandbox(*chroot, *setuid)
			rest.Serve(version)
			return
		case "legal":
			cmdLegal()
			return
		case "version":
			rt.LogPrintf("Version %s\n", version)
			return
		case "help":
			flag.Usage()
			return
		}
	}

	pipeline:=ops.NewPipeline()

	// A replayed file contributes its recorded pipeline, and its recorded
	// invocation when no input file is given on the command line
	if *replay!="" {
		buf, err:=os.ReadFile(*replay)
		if err!=nil { rt.LogFatalf("Unable to read replay file '%s': %s\n", *replay, err.Error()) }
		replayed, err:=ops.PipelineFromProvenance(string(buf))
		if err!=nil { rt.LogFatalf("Unable to reconstruct pipeline from '%s': %s\n", *replay, err.Error()) }
		pipeline.Append(replayed.Steps...)
		if fileName=="" {
			inv, err:=ops.InvocationFromProvenance(string(buf))
			if err!=nil { rt.LogFatalf("Unable to reconstruct invocation from '%s': %s\n", *replay, err.Error()) }
			fileName=inv.Filepath
			if inv.Comment!=""   { *comment  =inv.Comment }
			if inv.Delimiter!="" { *delimiter=inv.Delimiter }
		}
	}

	// Read the input dataset, from an instrument file, a delimited text
	// file, or standard input
	var ds *spectral.Dataset
	var speExposure float64
	var err error
	if strings.EqualFold(filepath.Ext(fileName), ".spe") {
		ds, speExposure, err=spectral.ReadSPEFile(fileName)
	} else if fileName!="" {
		ds, err=spectral.ReadCSVFile(fileName, (*comment)[0], (*delimiter)[0])
	} else {
		var buf []byte
		buf, err=io.ReadAll(os.Stdin)
		if err==nil {
			ds, err=spectral.ParseCSV(string(buf), "standard input", (*comment)[0], (*delimiter)[0])
		}
	}
	if err!=nil { rt.LogFatalf("Unable to read input data: %s\n", err.Error()) }

	// Record this invocation as the first provenance segment, after any
	// instrument metadata the reader collected
	invPath:=fileName
	if abs, err:=filepath.Abs(fileName); fileName!="" && err==nil { invPath=abs }
	inv:=ops.Invocation{Filepath: invPath, Comment: *comment, Delimiter: *delimiter}
	segment, err:=inv.Serialize()
	if err!=nil { rt.LogFatalf("Unable to serialize invocation: %s\n", err.Error()) }
	ds.Metadata=ds.Metadata+segment

	// Parse the remaining command groups into transformers
	for _,group:=range groups[1:] {
		trs, err:=buildTransformers(group, speExposure)
		if err!=nil { rt.LogFatalf("%s: %s\n", group[0], err.Error()) }
		pipeline.Append(trs...)
	}

	if err:=pipeline.Apply(ds, ops.NewContext(logWriter)); err!=nil {
		rt.LogFatalf("Error applying pipeline: %s\n", err.Error())
	}

	banner:="Raman CLI Tools version "+version+"."
	if *out!="" {
		err=ds.WriteFile(*out, banner)
	} else {
		err=ds.Write(os.Stdout, banner)
	}
	if err!=nil { rt.LogFatalf("Error writing output: %s\n", err.Error()) }

	elapsed:=time.Now().Sub(start)
	rt.LogPrintf("Done after %v\n", elapsed)

	// Store memory profile if flagged
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			rt.LogFatal("Could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.Lookup("allocs").WriteTo(f,0); err != nil {
			rt.LogFatal("Could not write allocation profile: ", err)
		}
	}
	rt.LogSync()
}

// Builds the transformers for one command argument group. The 'default'
// command expands into the whole standard pipeline, all other commands
// yield a single transformer
func buildTransformers(group []string, speExposure float64) ([]ops.Transformer, error) {
	if group[0]=="default" {
		if len(group)>1 { return nil, fmt.Errorf("default takes no arguments") }
		return ops.NewDefaultPipeline().Steps, nil
	}
	tr, err:=buildTransformer(group, speExposure)
	if err!=nil { return nil, err }
	return []ops.Transformer{tr}, nil
}

func buildTransformer(group []string, speExposure float64) (ops.Transformer, error) {
	name, args:=group[0], group[1:]
	switch name {
	case "align":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		costMaxAbs:=fs.Float64("costmaxabs", 0.1, "maximum absolute value of the cost function, adapt only if alignment fails")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		return ops.NewTrAlign(*costMaxAbs), nil

	case "append":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		comment   :=fs.String("comment", "#", "the character starting a comment")
		delimiter :=fs.String("delimiter", ",", "the delimiting character")
		horizontal:=fs.Bool("horizontal", false, "append data horizontally (as rows), e.g. to add scans")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=1 { return nil, fmt.Errorf("expected one input file, got %d arguments", fs.NArg()) }
		return ops.NewTrAppend(fs.Arg(0), *comment, *delimiter, *horizontal), nil

	case "average":
		return ops.NewTrAverage(), nil

	case "baseline":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		store:=fs.Bool("store", false, "add the baseline to the dataset as a new frame instead of subtracting it")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		points, err:=parsePairs(fs.Args())
		if err!=nil { return nil, err }
		return ops.NewTrBaseline(points, *store), nil

	case "calibration":
		points, err:=parsePairs(args)
		if err!=nil { return nil, err }
		return ops.NewTrCalibration(points), nil

	case "count-conversion":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		factor:=fs.Float64("factor", 1.42857, "count to photoelectron conversion factor")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		exposure:=300.0
		if speExposure>0 { exposure=speExposure }
		if fs.NArg()>0 {
			var err error
			exposure, err=strconv.ParseFloat(fs.Arg(0), 64)
			if err!=nil { return nil, fmt.Errorf("cannot parse exposure %q: %s", fs.Arg(0), err.Error()) }
		}
		return ops.NewTrCountConversion(exposure, *factor), nil

	case "despike":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		maskFile:=fs.String("maskfile", "", "write a 16-bit grayscale TIFF marking detected spikes to `file`")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=2 { return nil, fmt.Errorf("expected arguments: siglim flim") }
		siglim, err:=strconv.ParseFloat(fs.Arg(0), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse siglim %q: %s", fs.Arg(0), err.Error()) }
		flim, err:=strconv.ParseFloat(fs.Arg(1), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse flim %q: %s", fs.Arg(1), err.Error()) }
		tr:=ops.NewTrDespike(siglim, flim)
		tr.MaskFile=*maskFile
		return tr, nil

	case "finning":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		iterations:=fs.Int("iterations", 100, "maximal number of refinement iterations per pixel")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=1 { return nil, fmt.Errorf("expected argument: threshold") }
		threshold, err:=strconv.ParseFloat(fs.Arg(0), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse threshold %q: %s", fs.Arg(0), err.Error()) }
		return ops.NewTrFinning(threshold, *iterations), nil

	case "integrate":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		localBaseline:=fs.Bool("localbaseline", false, "subtract local baseline (straight line from integration start- to end-point)")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		bounds, err:=parsePairs(fs.Args())
		if err!=nil { return nil, err }
		return ops.NewTrIntegrate(bounds, *localBaseline), nil

	case "mask":
		mask, err:=parseIntPairs(args)
		if err!=nil { return nil, err }
		return ops.NewTrMask(mask), nil

	case "normalize":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		localBaseline:=fs.Bool("localbaseline", false, "subtract local baseline when integrating")
		frames       :=intList{}
		fs.Var(&frames, "frames", "normalize only these frames, e.g. -frames 1,3")
		filter       :=fs.String("filter", "", "select a region to filter, e.g. -filter 100,200")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()<1 || fs.NArg()>2 { return nil, fmt.Errorf("expected arguments: xi [xj]") }
		xi, err:=strconv.ParseFloat(fs.Arg(0), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse xi %q: %s", fs.Arg(0), err.Error()) }
		var xj *float64
		if fs.NArg()==2 {
			v, err:=strconv.ParseFloat(fs.Arg(1), 64)
			if err!=nil { return nil, fmt.Errorf("cannot parse xj %q: %s", fs.Arg(1), err.Error()) }
			xj=&v
		}
		tr:=ops.NewTrNormalize(xi, xj, *localBaseline, frames)
		if *filter!="" {
			p, err:=parsePair(*filter)
			if err!=nil { return nil, err }
			tr.FilterRange=&p
		}
		return tr, nil

	case "offset":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		percentile:=fs.Bool("percentile", false, "subtract this percentile from the frame instead of adding a fixed value")
		frames    :=intList{}
		fs.Var(&frames, "frames", "apply offset only to these frames, e.g. -frames 1,3")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=1 { return nil, fmt.Errorf("expected argument: offset") }
		offset, err:=strconv.ParseFloat(fs.Arg(0), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse offset %q: %s", fs.Arg(0), err.Error()) }
		return ops.NewTrOffset(offset, *percentile, frames), nil

	case "reshape":
		if len(args)!=1 { return nil, fmt.Errorf("expected argument: rows") }
		rows, err:=strconv.Atoi(args[0])
		if err!=nil { return nil, fmt.Errorf("cannot parse rows %q: %s", args[0], err.Error()) }
		return ops.NewTrReshape(rows), nil

	case "select":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		invert:=fs.Bool("invert", false, "discard selected frames and keep the non-selected")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		frames, err:=parseInts(fs.Args())
		if err!=nil { return nil, err }
		return ops.NewTrSelect(frames, *invert), nil

	case "shift":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		refractiveIndex:=fs.Float64("refractiveindex", 1.000264, "refractive index of air used to calculate vacuum wavenumbers from wavelength")
		correction     :=fs.String("correction", "", "optional corrective offset added to calculated wavenumbers")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=1 { return nil, fmt.Errorf("expected argument: laser wavelength in nm") }
		wavelength, err:=strconv.ParseFloat(fs.Arg(0), 64)
		if err!=nil { return nil, fmt.Errorf("cannot parse wavelength %q: %s", fs.Arg(0), err.Error()) }
		var corr *float64
		if *correction!="" {
			v, err:=strconv.ParseFloat(*correction, 64)
			if err!=nil { return nil, fmt.Errorf("cannot parse correction %q: %s", *correction, err.Error()) }
			corr=&v
		}
		return ops.NewTrRamanShift(wavelength, *refractiveIndex, corr), nil

	case "subtract":
		fs:=flag.NewFlagSet(name, flag.ContinueOnError)
		minuends:=intList{}
		fs.Var(&minuends, "minuends", "frame(s) to subtract from; if none given, subtract from all other frames")
		direct  :=fs.Bool("direct", false, "subtract frame intensities without interpolating on the same grid first")
		if err:=fs.Parse(args); err!=nil { return nil, err }
		if fs.NArg()!=1 { return nil, fmt.Errorf("expected argument: subtrahend frame number") }
		subtrahend, err:=strconv.Atoi(fs.Arg(0))
		if err!=nil { return nil, fmt.Errorf("cannot parse subtrahend %q: %s", fs.Arg(0), err.Error()) }
		return ops.NewTrSubtract(subtrahend, minuends, *direct), nil
	}
	return nil, fmt.Errorf("unknown command")
}

// Comma-separated list of integers as a repeatable flag value
type intList []int

func (l *intList) String() string {
	fields:=make([]string, len(*l))
	for i,v:=range *l { fields[i]=strconv.Itoa(v) }
	return strings.Join(fields, ",")
}

func (l *intList) Set(value string) error {
	vs, err:=parseInts(strings.Split(value, ","))
	if err!=nil { return err }
	*l=append(*l, vs...)
	return nil
}

func parseInts(args []string) ([]int, error) {
	vs:=make([]int, 0, len(args))
	for _,arg:=range args {
		arg=strings.TrimSpace(arg)
		if arg=="" { continue }
		v, err:=strconv.Atoi(arg)
		if err!=nil { return nil, fmt.Errorf("cannot parse %q as integer: %s", arg, err.Error()) }
		vs=append(vs, v)
	}
	return vs, nil
}

// Parses a single "a,b" argument into a pair of floats
func parsePair(arg string) (ops.Pair, error) {
	fields:=strings.Split(arg, ",")
	if len(fields)!=2 { return ops.Pair{}, fmt.Errorf("expected a pair like 100,200, got %q", arg) }
	a, err:=strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err!=nil { return ops.Pair{}, fmt.Errorf("cannot parse %q as float: %s", fields[0], err.Error()) }
	b, err:=strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err!=nil { return ops.Pair{}, fmt.Errorf("cannot parse %q as float: %s", fields[1], err.Error()) }
	return ops.Pair{A: a, B: b}, nil
}

func parsePairs(args []string) ([]ops.Pair, error) {
	pairs:=make([]ops.Pair, 0, len(args))
	for _,arg:=range args {
		p, err:=parsePair(arg)
		if err!=nil { return nil, err }
		pairs=append(pairs, p)
	}
	return pairs, nil
}

func parseIntPairs(args []string) ([]ops.IntPair, error) {
	pairs:=make([]ops.IntPair, 0, len(args))
	for _,arg:=range args {
		fields:=strings.Split(arg, ",")
		if len(fields)!=2 { return nil, fmt.Errorf("expected a frame,pixel pair like 1,5, got %q", arg) }
		a, err:=strconv.Atoi(strings.TrimSpace(fields[0]))
		if err!=nil { return nil, fmt.Errorf("cannot parse %q as integer: %s", fields[0], err.Error()) }
		b, err:=strconv.Atoi(strings.TrimSpace(fields[1]))
		if err!=nil { return nil, fmt.Errorf("cannot parse %q as integer: %s", fields[1], err.Error()) }
		pairs=append(pairs, ops.IntPair{A: a, B: b})
	}
	return pairs, nil
}

// Show licensing information
func cmdLegal() {
	rt.LogPrint(`Raman CLI Tools is Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.
The binary version of this program uses several open source libraries and components, which come with their own licensing terms. See below for a list of attributions.

ATTRIBUTIONS

A1. https://github.com/gonum/gonum is Copyright (c) 2013 The Gonum Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

* Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.

* Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.

* Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


A2. https://github.com/pbnjay/memory is Copyright (c) 2017, Jeremy Jay. All rights reserved.

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

* Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.

* Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.

* Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


A3. https://github.com/valyala/fastrand is Copyright (c) 2017 Aliaksandr Valialkin

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the "Software"), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
`)
}
