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
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
	"github.com/mlnoga/ramantools/internal/spectral"
)

// An ordered sequence of transformers applied to a dataset
type Pipeline struct {
	Steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{Steps: steps}
}

// Appends one or more transformers to the existing pipeline
func (p *Pipeline) Append(steps ...Transformer) {
	p.Steps=append(p.Steps, steps...)
}

// Applies all steps to the dataset in order, recording each successful step
// in the dataset provenance. Fails fast on the first erroring step,
// leaving the dataset in the state that step produced
func (p *Pipeline) Apply(ds *spectral.Dataset, c *Context) error {
	for _,step:=range p.Steps {
		if err:=step.Transform(ds, c); err!=nil {
			return fmt.Errorf("%s: %s", step.Name(), err.Error())
		}
		segment, err:=SerializeProvenance(step)
		if err!=nil { return fmt.Errorf("%s: %s", step.Name(), err.Error()) }
		ds.Metadata=ds.Metadata+segment
	}
	return nil
}

// Serializes one transformer into a provenance segment, a YAML document
// terminated by an end-of-document marker
func SerializeProvenance(tr Transformer) (string, error) {
	bs, err:=yaml.Marshal(tr)
	if err!=nil { return "", err }
	return string(bs)+"---\n", nil
}

// The record of the invocation that produced a dataset: input file and
// comment/delimiter conventions. Stored as the first provenance segment
// so a later run can re-read the same input
type Invocation struct {
	Filepath  string `yaml:"filepath"`
	Comment   string `yaml:"comment"`
	Delimiter string `yaml:"delimiter"`
}

// Serializes the invocation into a provenance segment tagged
// 'preprocessor: arguments'
func (inv *Invocation) Serialize() (string, error) {
	bs, err:=yaml.Marshal(inv)
	if err!=nil { return "", err }
	return "preprocessor: arguments\n"+string(bs)+"---\n", nil
}

// Recovers the invocation from the provenance comments of a previously
// written dataset
func InvocationFromProvenance(text string) (*Invocation, error) {
	b:=strings.Builder{}
	for _,line:=range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "#") { continue }
		line=strings.TrimPrefix(line, "#")
		line=strings.TrimPrefix(line, " ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _,segment:=range strings.Split(b.String(), "---") {
		if !strings.Contains(segment, "preprocessor: arguments") { continue }
		inv:=&Invocation{}
		if err:=yaml.Unmarshal([]byte(segment), inv); err!=nil {
			return nil, fmt.Errorf("%w: invocation record: %s", ErrConfigParse, err.Error())
		}
		return inv, nil
	}
	return nil, fmt.Errorf("%w: missing 'preprocessor: arguments' segment", ErrConfigParse)
}

var transformationTag=regexp.MustCompile(`(?m)^transformation: ([a-zA-Z]*)$`)

// Reconstructs a pipeline from the provenance comments of a previously
// written dataset. Comment lines are stripped of their prefix, joined
// and split into YAML segments at end-of-document markers. Segments
// without a transformation tag, like the invocation record, are skipped
func PipelineFromProvenance(text string) (*Pipeline, error) {
	b:=strings.Builder{}
	for _,line:=range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "#") { continue }
		line=strings.TrimPrefix(line, "#")
		line=strings.TrimPrefix(line, " ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	p:=NewPipeline()
	for _,segment:=range strings.Split(b.String(), "---") {
		match:=transformationTag.FindStringSubmatch(segment)
		if match==nil { continue }
		factory:=GetTransformerFactory(match[1])
		if factory==nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTransformer, match[1])
		}
		tr:=factory()
		if err:=yaml.Unmarshal([]byte(segment), tr); err!=nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, match[1], err.Error())
		}
		p.Append(tr)
	}
	return p, nil
}
