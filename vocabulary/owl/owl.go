// Package owl contains term IRIs from the OWL 2 vocabulary.
package owl

// NS is the base IRI for the OWL vocabulary.
const NS = "http://www.w3.org/2002/07/owl#"

const (
	// Class is the OWL spelling of "the subject is a class".
	Class = NS + "Class"

	// ObjectProperty declares a property whose values are identifiers.
	ObjectProperty = NS + "ObjectProperty"

	// DatatypeProperty declares a property whose values are literals.
	DatatypeProperty = NS + "DatatypeProperty"

	// AllDisjointClasses types a node grouping pairwise-disjoint classes.
	AllDisjointClasses = NS + "AllDisjointClasses"

	// Members links a disjoint-group node to its member collection.
	Members = NS + "members"

	// DisjointWith asserts that two classes share no instances.
	DisjointWith = NS + "disjointWith"

	// Thing is the universal class containing every individual.
	Thing = NS + "Thing"
)
