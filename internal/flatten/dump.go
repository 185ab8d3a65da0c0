// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flatten

import (
	"iter"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// Dumper serializes values the classifier could not place into a
// deterministic sequence of raw lines, terminators included. Inputs are
// assumed to be acyclic.
type Dumper interface {
	Dump(v any) (iter.Seq[string], error)
}

// SpewDumper dumps with go-spew. A nil Config uses DefaultSpewConfig.
type SpewDumper struct {
	Config *spew.ConfigState
}

// DefaultSpewConfig sorts map keys and omits addresses and capacities so that
// two dumps of equal values are byte-identical.
var DefaultSpewConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (d SpewDumper) Dump(v any) (iter.Seq[string], error) {
	cfg := d.Config
	if cfg == nil {
		cfg = &DefaultSpewConfig
	}
	return Lines(cfg.Sdump(v)), nil
}

// YAMLDumper dumps as a YAML document. Map keys are emitted sorted.
type YAMLDumper struct{}

func (YAMLDumper) Dump(v any) (iter.Seq[string], error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Lines(string(out)), nil
}
