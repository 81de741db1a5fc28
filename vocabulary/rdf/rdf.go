// Package rdf contains term IRIs from the RDF Concepts Vocabulary.
package rdf

// NS is the base IRI for the RDF vocabulary.
const NS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

const (
	// Type asserts that the subject is an instance of a class.
	Type = NS + "type"

	// Property is the class of RDF properties.
	Property = NS + "Property"

	// List is the class of RDF collections.
	List = NS + "List"

	// First is the first item of the subject collection.
	First = NS + "first"

	// Rest is the remainder of the subject collection after the first item.
	Rest = NS + "rest"

	// Nil is the empty collection, terminating every well-formed list.
	Nil = NS + "nil"
)
