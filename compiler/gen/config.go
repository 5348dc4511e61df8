package gen

import (
	"path"
	"runtime"
	"strings"

	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

const (
	// DefaultPackage is the base import path used when none is configured.
	DefaultPackage = "schema"

	// DefaultHeader is the header comment of generated files.
	DefaultHeader = "Code generated by schemagen. DO NOT EDIT."

	// runtimePkg is the import path of the runtime package used by generated code.
	runtimePkg = "github.com/syssam/schemagen"
)

// Config holds the global codegen configuration shared by all schema units.
type Config struct {
	// Package is the base import path of the generated packages. A unit with
	// module path a::b is generated into the package "<Package>/a/b".
	Package string

	// Header is the comment placed at the top of each generated file.
	Header string

	// Features defines a list of additional features to add to the codegen phase.
	Features []Feature

	// Target is the output directory of the batch writer.
	Target string

	// Workers limits the number of units the batch writer generates in parallel.
	Workers int
}

func (c *Config) basePackage() string {
	if c == nil || c.Package == "" {
		return DefaultPackage
	}
	return c.Package
}

func (c *Config) header() string {
	if c == nil || c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the generator and by the CLI.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	f, ok := FeatureByName(name)
	if !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	if c != nil {
		for _, e := range c.Features {
			if e.Name == name {
				return true, nil
			}
		}
	}
	return f.Default, nil
}

// members returns the boilerplate fields of the enabled features that the
// unit does not declare itself.
func (c *Config) members(u *schema.Unit) []*schema.Field {
	declared := make(map[string]bool, len(u.Fields))
	for _, f := range u.Fields {
		declared[f.StorageKey()] = true
	}
	var members []*schema.Field
	for _, f := range AllFeatures {
		if enabled, _ := c.FeatureEnabled(f.Name); !enabled || f.Member == nil {
			continue
		}
		if declared[f.Member.StorageKey()] {
			continue
		}
		members = append(members, f.Member)
	}
	return members
}

// PkgPath returns the import path of the package generated for a module path.
func (c *Config) PkgPath(module []string) string {
	parts := []string{c.basePackage()}
	for _, m := range module {
		parts = append(parts, pkgName(m))
	}
	return path.Join(parts...)
}

// PkgName returns the package clause name of a module path.
func (c *Config) PkgName(module []string) string {
	if len(module) > 0 {
		return pkgName(module[len(module)-1])
	}
	return pkgName(path.Base(c.basePackage()))
}

// target describes a by-name reference to another unit.
type target struct {
	pkg  string // import path
	name string // Go type name of the accessor wrapper or enumeration
	kind string // document kind, e.g. "scene::Node"
}

// storage returns the name of the storage type of a record target.
func (t target) storage() string {
	return t.name + "JSON"
}

// target resolves the reference held by an Index, Record or Enum type.
func (c *Config) target(info *field.TypeInfo) target {
	module, name := info.Target()
	return target{
		pkg:  c.PkgPath(module),
		name: typeName(name),
		kind: strings.Join(append(append([]string(nil), module...), name), "::"),
	}
}
