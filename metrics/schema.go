// Package metrics computes schema-level and knowledge-base-level quality
// scores from an extracted snapshot. Every function is a pure computation
// over its arguments; ratios with an empty denominator report 0 instead of
// failing.
package metrics

import (
	"github.com/c360studio/ontometrics/extract"
	"github.com/c360studio/ontometrics/store"
	"github.com/c360studio/ontometrics/vocabulary/rdf"
	"github.com/c360studio/ontometrics/vocabulary/rdfs"
)

// Schema holds the schema-level scores.
type Schema struct {
	// RelationshipRichness is the share of class-to-class relations
	// that are not subclass axioms. Values near 1 mean the schema
	// expresses more than a bare taxonomy.
	RelationshipRichness float64 `json:"relationship_richness" yaml:"relationship_richness"`

	// InheritanceRichness is the subclass axiom count per class, a
	// proxy for the hierarchy's average branching factor.
	InheritanceRichness float64 `json:"inheritance_richness" yaml:"inheritance_richness"`

	// AttributeRichness is the data property count per class.
	AttributeRichness float64 `json:"attribute_richness" yaml:"attribute_richness"`
}

// ComputeSchema derives the schema scores from the extracted elements.
func ComputeSchema(el *extract.Elements) Schema {
	var s Schema

	if denom := el.NonInheritanceCount + el.SubclassCount; denom > 0 {
		s.RelationshipRichness = float64(el.NonInheritanceCount) / float64(denom)
	}
	if len(el.Classes) > 0 {
		s.InheritanceRichness = float64(el.SubclassCount) / float64(len(el.Classes))
		s.AttributeRichness = float64(len(el.DataProperties)) / float64(len(el.Classes))
	}
	return s
}

// ClassRelationshipRichness is the fraction of object properties declaring
// class c as their domain that are actually used by instances of c.
//
// A class declaring no domain properties reports 0, the same value as a
// class whose declared properties are all unused. The two situations are
// not distinguishable from the score alone.
func ClassRelationshipRichness(st store.Store, el *extract.Elements, c store.Term) float64 {
	domainPred := store.IRI(rdfs.Domain)

	var declared []store.Term
	for p := range el.ObjectProperties {
		if st.Contains(p, domainPred, c) {
			declared = append(declared, p)
		}
	}
	if len(declared) == 0 {
		return 0
	}

	instances := instancesOf(st, el, c)
	used := 0
	for _, p := range declared {
		for _, inst := range instances {
			if st.Contains(inst, p, store.Any) {
				used++
				break
			}
		}
	}
	return float64(used) / float64(len(declared))
}

// AllClassRelationshipRichness computes the per-class relationship
// richness for every declared class.
func AllClassRelationshipRichness(st store.Store, el *extract.Elements) map[store.Term]float64 {
	out := make(map[store.Term]float64, len(el.Classes))
	for c := range el.Classes {
		out[c] = ClassRelationshipRichness(st, el, c)
	}
	return out
}

// instancesOf returns the instances directly typed with class c.
func instancesOf(st store.Store, el *extract.Elements, c store.Term) []store.Term {
	var out []store.Term
	for _, s := range st.Subjects(store.IRI(rdf.Type), c) {
		if el.Instances[s] {
			out = append(out, s)
		}
	}
	return out
}
