// SPDX-License-Identifier: MIT
// Package: lvfuzzy/config
//
// yaml_dto.go — on-disk shape of a definitions file.

package config

// YAMLDocument is the on-disk shape of a definitions file.
type YAMLDocument struct {
	Domain YAMLDomain `yaml:"domain"`
	Sets   []YAMLSet  `yaml:"sets"`
}

// YAMLDomain selects one of the domain builders. Pointers distinguish an
// absent bound from an explicit zero.
type YAMLDomain struct {
	Start     *float64  `yaml:"start"`
	Stop      *float64  `yaml:"stop"`
	N         int       `yaml:"n"`
	Step      float64   `yaml:"step"`
	Endpoint  *bool     `yaml:"endpoint"`
	Precision *int      `yaml:"precision"`
	Points    []float64 `yaml:"points"`
}

type YAMLSet struct {
	Title  string    `yaml:"title"`
	Kind   string    `yaml:"kind"`
	Params []float64 `yaml:"params"`
}
