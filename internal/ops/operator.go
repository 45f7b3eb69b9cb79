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


// Package ops implements dataset transformers and the pipeline machinery
// that applies them and records their provenance
package ops

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/pbnjay/memory"
	"github.com/mlnoga/ramantools/internal/spectral"
)

var (
	ErrConfigParse        = errors.New("cannot parse transformer configuration")
	ErrUnknownTransformer = errors.New("unknown transformer")
	ErrOptimization       = errors.New("optimization failed")
)

// An execution context for transformers
type Context struct {
	Log        io.Writer
	MemoryMB   int // memory.TotalMemory()/1024/1024
	MaxThreads int
}

func NewContext(log io.Writer) *Context {
	return &Context{
		Log        : log,
		MemoryMB   : int(memory.TotalMemory()/1024/1024),
		MaxThreads : runtime.GOMAXPROCS(0),
	}
}

// A dataset transformer: applies itself to the dataset in place, or
// replaces the dataset contents wholesale
type Transformer interface {
	Name() string
	Transform(ds *spectral.Dataset, c *Context) error
}

// Base type for transformers, carrying the name tag used for
// serializing/deserializing provenance records
type TrBase struct {
	Transformation string `yaml:"transformation"`
}

func (tr *TrBase) Name() string { return tr.Transformation }

// Factory method for transformers. For provenance serializing/deserializing
type TransformerFactory func() Transformer

// Mapping from transformer name tags to factory method for the type
var transformerFactories=map[string]TransformerFactory{}

// Returns the transformer factory for a given name tag
func GetTransformerFactory(name string) TransformerFactory {
	return transformerFactories[name]
}

// Registers a given name tag for a given type of Transformer, identified via an exemplar generator
func SetTransformerFactory(f TransformerFactory) {
	tr:=f()
	name:=tr.Name()
	if GetTransformerFactory(name)!=nil { panic(fmt.Sprintf("error: re-registering transformer key %s\n", name)) }
	transformerFactories[name]=f
}

// A pair of axis coordinates, e.g. a baseline or calibration anchor point
type Pair struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// A pair of one-based frame and pixel numbers
type IntPair struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Runs fn for the given frame indices with concurrency limited to maxThreads.
// The first error wins, remaining errors are chained onto it
func forEachFrame(frames []int, maxThreads int, fn func(k int) error) error {
	if len(frames)==0 { return nil }
	if maxThreads<1 { maxThreads=1 }
	limiter:=make(chan bool, maxThreads)
	errs   :=make(chan error, len(frames))
	for _,k:=range frames {
		limiter <- true
		go func(k int) {
			defer func() { <-limiter }()
			errs <- fn(k)
		}(k)
	}
	for i:=0; i<cap(limiter); i++ { // wait for goroutines to finish
		limiter <- true
	}
	var err error
	for i:=0; i<len(frames); i++ { // collect errors
		e:=<-errs
		if e!=nil {
			if err==nil {
				err=e
			} else {
				err=errors.New(fmt.Sprintf("%s; %s", err.Error(), e.Error()))
			}
		}
	}
	return err
}

// All frame indices 0..numFrames-1, the default working set of most transformers
func allFrames(numFrames int) []int {
	frames:=make([]int, numFrames)
	for i:=range frames { frames[i]=i }
	return frames
}

// Converts one-based user frame numbers into zero-based indices,
// verifying bounds against the dataset. Empty input selects all frames
func resolveTargetFrames(ds *spectral.Dataset, targetFrames []int) ([]int, error) {
	if len(targetFrames)==0 { return allFrames(ds.NumFrames()), nil }
	if err:=ds.VerifyFramesInBounds(targetFrames); err!=nil { return nil, err }
	frames:=make([]int, len(targetFrames))
	for i,f:=range targetFrames { frames[i]=f-1 }
	return frames, nil
}
