// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapers provides access to the available [shaped.Measurer]
// implementations by name.
package shapers

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedcanvas"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedgt"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedmono"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedterm"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedx"
)

// Default is the name of the default measurer.
const Default = "gotext"

// makers are the functions that make each measurer.
var makers = map[string]func() shaped.Measurer{
	"gotext": func() shaped.Measurer { return shapedgt.New() },
	"ximage": func() shaped.Measurer { return shapedx.New() },
	"canvas": func() shaped.Measurer { return shapedcanvas.New() },
	"mono":   func() shaped.Measurer { return shapedmono.New() },
	"term":   func() shaped.Measurer { return shapedterm.New(false) },
}

// Names returns the sorted names of the available measurers.
func Names() []string {
	names := make([]string, 0, len(makers))
	for n := range makers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// New returns a new measurer with the given name, or the [Default]
// one if the name is empty.
func New(name string) (shaped.Measurer, error) {
	if name == "" {
		name = Default
	}
	mk, ok := makers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("shapers: unknown measurer %q, must be one of: %s", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}
