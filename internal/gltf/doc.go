// Package gltf holds a small glTF schema family compiled by schemagen. The
// units live in the schema directory; the generated material, scene and
// texture packages are checked in so that tests build and run them against
// the runtime package.
package gltf

//go:generate go run github.com/syssam/schemagen/cmd/schemagen batch --package github.com/syssam/schemagen/internal/gltf --out . schema/alpha_mode.toml schema/mag_filter.toml schema/material.toml schema/node.toml

// Units lists the schema units of the family, relative to this directory.
var Units = []string{
	"schema/alpha_mode.toml",
	"schema/mag_filter.toml",
	"schema/material.toml",
	"schema/node.toml",
}

// Package is the base import path the units are generated into.
const Package = "github.com/syssam/schemagen/internal/gltf"
