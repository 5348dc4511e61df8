// Package schemagen is the runtime support package of code generated by
// the schemagen compiler.
//
// Generated storage types reference entities of a document through typed
// indexes (Index) and hold enumeration values as checked values (Checked).
// Generated accessor types read through a Document, resolving indexes with
// Resolve and exposing arrays as lazy sequences (Iter).
//
//	doc := schemagen.NewMemDocument()
//	idx := schemagen.Append(doc, "scene::Node", &scene.NodeJSON{})
//	node := scene.NewNode(doc, schemagen.Resolve(doc, "scene::Node", idx))
//	for child := range node.Children().All() {
//		fmt.Println(child.Name())
//	}
package schemagen
