// Package schema holds the in-memory model of a schema unit: one record or
// enumerated type, as produced by the loader and consumed by the generator.
//
// A record unit lists its fields in declaration order:
//
//	[meta]
//	ident = "Camera"
//	module = "camera"
//	kind = "Struct"
//	docs = "A camera's projection."
//
//	[fields.kind]
//	docs = "Specifies if the camera uses a perspective or orthographic projection."
//	ty = "Enum"
//	of = "camera::Type"
//
//	[fields.perspective]
//	docs = "A perspective camera containing properties to create a perspective projection matrix."
//	ty = "Struct"
//	of = "camera::Perspective"
//	optional = true
//
// An enumeration unit lists its variants, also in declaration order, since
// the discriminants of string-encoded enumerations follow that order:
//
//	[meta]
//	ident = "AlphaMode"
//	kind = "Enum"
//	of = "Integer"
//	docs = "The alpha rendering mode of a material."
//
//	[values.OPAQUE]
//	docs = "The alpha value is ignored and the rendered output is fully opaque."
//	value = 1
//
// The loader enforces the structural invariants of the model and reports
// violations as *Error values matching one of the sentinel errors of this
// package, e.g. ErrConflictingOptionalDefault.
package schema
