// Package field defines the closed vocabulary of field type tags that a
// schema unit may use.
//
// Tags are spelled in schema files the way they are printed by [Type.String]:
//
//	[fields.name]
//	docs = "The user-defined name of this object."
//	ty = "String"
//	optional = true
//
//	[fields.children]
//	docs = "The indices of this node's children."
//	ty = "Array"
//	of = { ty = "Index", of = "Node" }
//
//	[fields.matrix]
//	docs = "A floating-point 4x4 transformation matrix stored in column-major order."
//	ty = "FixedSizeArray"
//	of = { ty = "Float", n = 16 }
//
// # Type Tags
//
//	String          string
//	Integer         uint32
//	Float           float32
//	Bool            bool
//	Index           typed index into a document table (of = target)
//	Struct          nested record stored inline (of = target)
//	Enum            checked enumeration (of = target)
//	Array           growable array (of = element type)
//	FixedSizeArray  fixed-size array of scalars (of = { ty, n })
//	Any             opaque JSON payload, always optional
//	Special         literal Go type, output only (of = type text)
//
// "Record", "Enumeration" and "FixedArray" are accepted as aliases.
//
// # References
//
// The target of Index, Struct and Enum types is a by-name reference relative to
// the base package of the generated code. A bare name refers to the base
// package; "camera::Perspective" refers to Perspective in the camera package.
// The referenced schema is never loaded; it only has to exist by the time the
// generated packages are compiled together.
package field
