// Package model provides a concrete object-graph implementation of the
// registry capability interfaces.
//
// An Object is a top-level Identifiable: it owns optional Metadata and a
// composed tree of Elements. Elements are Referables named by a short local
// identifier; they may carry a value, non-referable Annotations, and nested
// child Elements. Descent over an Object or Element is pre-order depth-first
// and deterministic, visiting every nested object exactly once.
//
// Construction is fluent:
//
//	obj := model.NewObject(model.NewID()).
//	    WithIDShort("Robot1").
//	    WithElements(
//	        model.NewElement("Sensors").WithChildren(
//	            model.NewElement("Temperature").WithValue("23.5"),
//	        ),
//	    )
package model
