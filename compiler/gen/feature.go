package gen

import (
	"github.com/syssam/schemagen/schema"
	"github.com/syssam/schemagen/schema/field"
)

var (
	// FeatureNames provides a feature-flag for the optional user-defined
	// name carried by every record.
	FeatureNames = Feature{
		Name:        "names",
		Stage:       Stable,
		Default:     false,
		Description: "Adds an optional user-defined name member and a Name accessor to every record",
		Member: &schema.Field{
			Name:     "name",
			Docs:     "Optional user-defined name for this object.",
			Type:     &field.TypeInfo{Type: field.TypeString},
			Optional: true,
		},
	}

	// FeatureExtras provides a feature-flag for application specific data
	// kept as an opaque payload on every record.
	FeatureExtras = Feature{
		Name:        "extras",
		Stage:       Stable,
		Default:     false,
		Description: "Adds an opaque extras member and an Extras accessor to every record",
		Member: &schema.Field{
			Name: "extras",
			Docs: "Optional application specific data.",
			Type: &field.TypeInfo{Type: field.TypeAny},
		},
	}

	// FeatureExtensions provides a feature-flag for extension specific data
	// kept as an opaque payload on every record.
	FeatureExtensions = Feature{
		Name:        "extensions",
		Stage:       Stable,
		Default:     false,
		Description: "Adds an opaque extensions member and an Extensions accessor to every record",
		Member: &schema.Field{
			Name: "extensions",
			Docs: "Extension specific data.",
			Type: &field.TypeInfo{Type: field.TypeAny},
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureNames,
		FeatureExtras,
		FeatureExtensions,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their generated APIs.
	Alpha

	// Beta features are Alpha features that were documented, and no
	// breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// String implements the fmt.Stringer interface.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the schemagen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// Member is the boilerplate field added ahead of the declared fields of
	// every record when the feature is enabled. It goes through the same type
	// mapping as declared fields, and is skipped for records that declare a
	// field with the same storage key.
	Member *schema.Field
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
