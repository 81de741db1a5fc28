// Package store provides the triple store the metric pipeline reads from.
//
// A Store holds an immutable snapshot of (subject, predicate, object)
// triples and answers the pattern queries the extractor and the knowledge
// base metrics need. The in-memory implementation is loaded once per run;
// nothing mutates it afterwards.
package store

// Kind discriminates the shapes an RDF term can take.
type Kind int

// Term kinds. KindAny is the zero value and acts as a wildcard in
// pattern queries.
const (
	KindAny Kind = iota
	KindIRI
	KindLiteral
	KindBlank
)

// Term is a single RDF term: an IRI, a blank node, or a literal value.
// The zero Term matches any term when used in a pattern position.
type Term struct {
	Kind  Kind
	Value string
}

// IRI returns an IRI term.
func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

// Literal returns a literal term holding the lexical value.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Any is the wildcard term for pattern queries.
var Any = Term{}

// IsWildcard reports whether the term matches any term in a pattern.
func (t Term) IsWildcard() bool {
	return t.Kind == KindAny
}

// IsIdentifier reports whether the term names a node (IRI or blank node)
// rather than carrying a literal value.
func (t Term) IsIdentifier() bool {
	return t.Kind == KindIRI || t.Kind == KindBlank
}

// String returns the term's value; blank nodes are prefixed with "_:".
func (t Term) String() string {
	if t.Kind == KindBlank {
		return "_:" + t.Value
	}
	return t.Value
}

// MarshalText lets terms serve as JSON and YAML map keys.
func (t Term) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// PredicateObject is one outgoing (predicate, object) pair of a subject.
type PredicateObject struct {
	Predicate Term
	Object    Term
}

// Store answers pattern queries over an immutable triple snapshot.
type Store interface {
	// Subjects returns every subject appearing in a triple matching
	// (?, predicate, object).
	Subjects(predicate, object Term) []Term

	// Objects returns every object appearing in a triple matching
	// (subject, predicate, ?).
	Objects(subject, predicate Term) []Term

	// PredicateObjects returns every (predicate, object) pair the
	// subject appears with.
	PredicateObjects(subject Term) []PredicateObject

	// Contains reports whether any triple matches the pattern. A
	// wildcard (zero Term) in any position matches every term.
	Contains(subject, predicate, object Term) bool

	// Len returns the number of distinct triples held.
	Len() int
}
