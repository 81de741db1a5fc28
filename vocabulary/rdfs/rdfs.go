// Package rdfs contains term IRIs from the RDF Schema vocabulary.
package rdfs

// NS is the base IRI for the RDFS vocabulary.
const NS = "http://www.w3.org/2000/01/rdf-schema#"

const (
	// Class is the RDFS spelling of "the subject is a class".
	Class = NS + "Class"

	// SubClassOf asserts that the subject class specializes the object class.
	SubClassOf = NS + "subClassOf"

	// Domain links a property to the class its subjects belong to.
	Domain = NS + "domain"

	// Range links a property to the class or datatype its values belong to.
	Range = NS + "range"

	// Label is a human-readable name for the subject.
	Label = NS + "label"

	// Comment is a human-readable description of the subject.
	Comment = NS + "comment"
)
