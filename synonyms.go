/*
 * synonyms.go, part of qcin.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * qcin is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package qcin

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/synonyms.yaml
var synonymsRaw []byte

type synonymEntry struct {
	Synonyms []string          `yaml:"synonyms"`
	NWChem   string            `yaml:"nwchem"`
	Other    map[string]string `yaml:",inline"`
}

type synonymTables struct {
	Methods   map[string]synonymEntry `yaml:"methods"`
	Solvents  map[string]synonymEntry `yaml:"solvents"`
	BasisSets map[string]synonymEntry `yaml:"basis_sets"`
}

var loadSynonyms = sync.OnceValue(func() *synonymTables {
	t := new(synonymTables)
	if err := yaml.Unmarshal(synonymsRaw, t); err != nil {
		//The tables are compiled into the binary, so failing to parse
		//them is a build defect, not a runtime condition.
		panic("qcin: embedded synonym tables are malformed: " + err.Error())
	}
	return t
})

func (e synonymEntry) forSoftware(software string) (string, bool) {
	switch software {
	case "nwchem":
		return e.NWChem, e.NWChem != ""
	default:
		s, ok := e.Other[software]
		return s, ok
	}
}

// resolve finds name in a table, either as a canonical name or as one of
// its synonyms, and returns the engine spelling for software. The second
// return is false when either the name or the engine is unknown.
func resolve(table map[string]synonymEntry, name, software string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	if e, ok := table[name]; ok {
		return e.forSoftware(software)
	}
	for _, e := range table {
		for _, syn := range e.Synonyms {
			if name == syn {
				return e.forSoftware(software)
			}
		}
	}
	return "", false
}

// GetMethod translates a method name to the spelling the given engine
// expects. Unknown names are passed through as written; the engine may
// well know them even if this library does not.
func GetMethod(method, software string) string {
	if s, ok := resolve(loadSynonyms().Methods, method, software); ok {
		return s
	}
	return method
}

// GetSolvent translates a solvent name to the engine keyword. Unknown
// solvents pass through as written.
func GetSolvent(solvent, software string) string {
	if s, ok := resolve(loadSynonyms().Solvents, solvent, software); ok {
		return s
	}
	return solvent
}

// GetBasisSet translates a basis-set name to the engine spelling. Unknown
// names pass through as written.
func GetBasisSet(basis, software string) string {
	if s, ok := resolve(loadSynonyms().BasisSets, basis, software); ok {
		return s
	}
	return basis
}
