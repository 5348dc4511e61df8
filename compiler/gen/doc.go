// Package gen turns loaded schema units into Go source files.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema unit (TOML or YAML)
//	        ↓
//	   load.Load (schema.Unit)
//	        ↓
//	   Config.Map (one Mapping per field)
//	        ↓
//	   genEnum | genStruct + genAccessor (jen.Code blocks)
//	        ↓
//	   Config.Assemble + Config.Render (formatted Go file)
//
// Enum units produce a uint32 discriminant type with a decode function, a
// literal method and JSON codecs. Struct units produce a storage struct named
// <Name>JSON that mirrors the serialized form, plus an accessor type <Name>
// that pairs the storage with the document it was read from.
//
// # Error Handling
//
// Load failures are reported by the schema package sentinels. Generation
// failures are wrapped in GenerationError, which records the phase and unit
// and unwraps to the original cause:
//
//	err := gen.Generate(w, unit)
//	if errors.Is(err, schema.ErrUnknownEncoding) {
//	    // handle a bad enum encoding
//	}
//
// Nothing is written to w when generation fails.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithPackage("github.com/org/gltf"),
//	    gen.WithFeatures(gen.FeatureExtras),
//	    gen.WithTarget("./out"),
//	)
//
// # Batch Generation
//
// Writer generates many units concurrently into Config.Target and can watch
// the schema files to regenerate them on change:
//
//	w := gen.NewWriter(gen.NewGenerator(cfg)).WithLogger(logger)
//	err := w.GenerateAll(ctx, paths)
//
// # Features
//
// The generator supports optional features that can be enabled:
//
//   - names: adds an optional user-facing name field to every struct
//   - extras: adds an optional application-specific extras field
//   - extensions: adds an optional extension object field
package gen
