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
	"sort"

	"github.com/mlnoga/ramantools/internal/spectral"
)

// Subtracts a spline baseline drawn through the given anchor points from
// all frames, sampling the spline at each frame's own x values. The first
// and second to last segments interpolate linearly, interior segments use
// Catmull-Rom. With Store set, the sampled baseline is appended as a new
// frame on the first frame's x axis instead of being subtracted.
// Fewer than two anchor points leave the dataset unchanged
type TrBaseline struct {
	TrBase `yaml:",inline"`
	Points []Pair `yaml:"points"`
	Store  bool   `yaml:"store"`
}

func init() { SetTransformerFactory(func() Transformer { return NewTrBaselineDefault() }) } // register for provenance decoding

func NewTrBaselineDefault() *TrBaseline { return NewTrBaseline(nil, false) }

func NewTrBaseline(points []Pair, store bool) *TrBaseline {
	return &TrBaseline{
		TrBase : TrBase{Transformation: "BaselineTransform"},
		Points : points,
		Store  : store,
	}
}

func (tr *TrBaseline) Transform(ds *spectral.Dataset, c *Context) error {
	if len(tr.Points)<2 { return nil }
	spline:=newBaselineSpline(tr.Points)

	if tr.Store {
		// append the sampled baseline as a new frame
		out:=spectral.NewDataset(ds.Rows, ds.Cols+2)
		for j:=0; j<ds.Cols; j++ {
			copy(out.Col(j), ds.Col(j))
		}
		xs:=out.Col(ds.Cols)
		ys:=out.Col(ds.Cols+1)
		copy(xs, ds.Col(0))
		for i,x:=range xs {
			ys[i]=spline.sample(x)
		}
		ds.ReplaceMatrix(out)
		return nil
	}
	for k:=0; k<ds.NumFrames(); k++ {
		xs, ys:=ds.Frame(k)
		for i,x:=range xs {
			ys[i]-=spline.sample(x)
		}
	}
	return nil
}

type splineKey struct {
	x, y   float64
	linear bool
}

// A spline through anchor points with per-segment interpolation.
// Samples outside the key range, and in segments lacking the neighbor
// keys Catmull-Rom needs, evaluate to zero
type baselineSpline struct {
	keys []splineKey
}

func newBaselineSpline(points []Pair) *baselineSpline {
	keys:=make([]splineKey, len(points))
	for i,p:=range points {
		keys[i]=splineKey{x: p.A, y: p.B}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].x<keys[j].x })
	for i:=range keys {
		keys[i].linear= i==0 || i==len(keys)-2
	}
	return &baselineSpline{keys: keys}
}

func (s *baselineSpline) sample(x float64) float64 {
	keys:=s.keys
	// locate segment with keys[i].x <= x < keys[i+1].x
	i:=sort.Search(len(keys), func(n int) bool { return keys[n].x>x })-1
	if i<0 || i>=len(keys)-1 { return 0.0 }
	k0, k1:=keys[i], keys[i+1]
	t:=(x-k0.x)/(k1.x-k0.x)
	if k0.linear {
		return k0.y+(k1.y-k0.y)*t
	}
	// Catmull-Rom needs one further key on each side
	if i<1 || i+2>=len(keys) { return 0.0 }
	km1, k2:=keys[i-1], keys[i+2]
	m0:=(k1.y-km1.y)/(k1.x-km1.x)
	m1:=(k2.y-k0.y)/(k2.x-k0.x)
	t2:=t*t
	t3:=t2*t
	return k0.y*(2*t3-3*t2+1)+m0*(t3-2*t2+t)+k1.y*(3*t2-2*t3)+m1*(t3-t2)
}
