// Package extract classifies a triple snapshot into the schema and
// knowledge base elements the metric computations consume.
package extract

import (
	"github.com/c360studio/ontometrics/store"
	"github.com/c360studio/ontometrics/vocabulary/owl"
	"github.com/c360studio/ontometrics/vocabulary/rdf"
	"github.com/c360studio/ontometrics/vocabulary/rdfs"
)

// classDeclarations lists the accepted spellings of "the subject is a
// class". Schema vocabularies use more than one.
var classDeclarations = []store.Term{
	store.IRI(owl.Class),
	store.IRI(rdfs.Class),
}

// Elements is the classified view of one triple snapshot. It is derived
// once per run and never mutated afterwards.
type Elements struct {
	// Classes holds every identifier declared as a class.
	Classes map[store.Term]bool

	// Instances holds every identifier typed with at least one declared
	// class that is not itself a class. Subjects whose type assertions
	// never name a declared class (property declarations, annotations)
	// stay out entirely. Disjoint from Classes by construction.
	Instances map[store.Term]bool

	// SubclassCount is the number of distinct (child, parent) subclass
	// axioms whose ends are both declared classes.
	SubclassCount int

	// NonInheritanceCount is the number of distinct class-to-class
	// relation triples that are not subclass axioms, including pairs
	// synthesized from disjoint-group declarations.
	NonInheritanceCount int

	// ObjectProperties holds identifiers declared as object properties.
	ObjectProperties map[store.Term]bool

	// DataProperties holds identifiers declared as data properties.
	DataProperties map[store.Term]bool

	// InstanceCounts maps each class to the number of instances typed
	// directly with it. Subclass membership is not inherited here.
	InstanceCounts map[store.Term]int
}

// TotalInstanceCount returns the sum of direct instance counts across all
// classes. An instance typed with two classes contributes twice.
func (e *Elements) TotalInstanceCount() int {
	total := 0
	for _, n := range e.InstanceCounts {
		total += n
	}
	return total
}

// Extract runs the single classification pass over the snapshot.
func Extract(st store.Store) *Elements {
	typePred := store.IRI(rdf.Type)
	subClassOf := store.IRI(rdfs.SubClassOf)

	el := &Elements{
		Classes:          make(map[store.Term]bool),
		Instances:        make(map[store.Term]bool),
		ObjectProperties: make(map[store.Term]bool),
		DataProperties:   make(map[store.Term]bool),
		InstanceCounts:   make(map[store.Term]int),
	}

	for _, decl := range classDeclarations {
		for _, s := range st.Subjects(typePred, decl) {
			el.Classes[s] = true
		}
	}

	for _, s := range st.Subjects(typePred, store.Any) {
		if el.Classes[s] {
			continue
		}
		for _, o := range st.Objects(s, typePred) {
			if el.Classes[o] {
				el.Instances[s] = true
				break
			}
		}
	}

	// Subclass axioms are counted as a set of class pairs, not raw
	// triples, so axioms referencing undeclared terms drop out.
	subclassPairs := make(map[[2]store.Term]bool)
	for _, child := range st.Subjects(subClassOf, store.Any) {
		if !el.Classes[child] {
			continue
		}
		for _, parent := range st.Objects(child, subClassOf) {
			if el.Classes[parent] {
				subclassPairs[[2]store.Term{child, parent}] = true
			}
		}
	}
	el.SubclassCount = len(subclassPairs)

	relations := make(map[store.Triple]bool)
	for c := range el.Classes {
		for _, po := range st.PredicateObjects(c) {
			if po.Predicate == subClassOf {
				continue
			}
			if po.Object.IsIdentifier() && el.Classes[po.Object] {
				relations[store.Triple{Subject: c, Predicate: po.Predicate, Object: po.Object}] = true
			}
		}
	}
	disjointPred := store.IRI(owl.DisjointWith)
	for _, group := range st.Subjects(typePred, store.IRI(owl.AllDisjointClasses)) {
		members := resolveMembers(st, group)
		for _, a := range members {
			if !el.Classes[a] {
				continue
			}
			for _, b := range members {
				if a == b || !el.Classes[b] {
					continue
				}
				relations[store.Triple{Subject: a, Predicate: disjointPred, Object: b}] = true
			}
		}
	}
	el.NonInheritanceCount = len(relations)

	for _, p := range st.Subjects(typePred, store.IRI(owl.ObjectProperty)) {
		el.ObjectProperties[p] = true
	}
	for _, p := range st.Subjects(typePred, store.IRI(owl.DatatypeProperty)) {
		el.DataProperties[p] = true
	}

	for inst := range el.Instances {
		for _, c := range st.Objects(inst, typePred) {
			if el.Classes[c] {
				el.InstanceCounts[c]++
			}
		}
	}

	return el
}

// resolveMembers walks a disjoint-group's member collection into a plain
// ordered sequence. A missing or malformed collection yields nil, which
// skips the group without failing the extraction.
func resolveMembers(st store.Store, group store.Term) []store.Term {
	heads := st.Objects(group, store.IRI(owl.Members))
	if len(heads) == 0 {
		return nil
	}

	first := store.IRI(rdf.First)
	rest := store.IRI(rdf.Rest)
	nilNode := store.IRI(rdf.Nil)

	var members []store.Term
	visited := make(map[store.Term]bool)
	node := heads[0]
	for node != nilNode {
		if visited[node] {
			return nil // cyclic collection, treat as malformed
		}
		visited[node] = true

		firsts := st.Objects(node, first)
		rests := st.Objects(node, rest)
		if len(firsts) == 0 || len(rests) == 0 {
			return nil
		}
		members = append(members, firsts[0])
		node = rests[0]
	}
	return members
}
