package metrics

import (
	"github.com/c360studio/ontometrics/extract"
	"github.com/c360studio/ontometrics/store"
	"github.com/c360studio/ontometrics/vocabulary/rdf"
	"github.com/c360studio/ontometrics/vocabulary/rdfs"
)

// KB holds the knowledge-base-level scores.
type KB struct {
	// ClassRichness is the fraction of declared classes holding at
	// least one direct instance.
	ClassRichness float64 `json:"class_richness" yaml:"class_richness"`

	// Connectivity maps each populated class to the number of links
	// leaving its instances toward other typed nodes.
	Connectivity map[store.Term]int `json:"connectivity" yaml:"connectivity"`

	// Importance maps each class to the share of the total instance
	// population held by the class and its subclass closure.
	Importance map[store.Term]float64 `json:"importance" yaml:"importance"`

	// Cohesion is the number of connected components of the undirected
	// instance link graph. Lower means less fragmented.
	Cohesion int `json:"cohesion" yaml:"cohesion"`
}

// ComputeKB derives all knowledge base scores from the snapshot and the
// extracted elements.
func ComputeKB(st store.Store, el *extract.Elements) KB {
	kb := KB{
		Connectivity: make(map[store.Term]int, len(el.Classes)),
		Importance:   make(map[store.Term]float64, len(el.Classes)),
	}

	if len(el.Classes) > 0 {
		populated := 0
		for c := range el.Classes {
			if el.InstanceCounts[c] > 0 {
				populated++
			}
		}
		kb.ClassRichness = float64(populated) / float64(len(el.Classes))
	}

	for c := range el.Classes {
		kb.Connectivity[c] = ClassConnectivity(st, el, c)
		kb.Importance[c] = ClassImportance(st, el, c)
	}

	kb.Cohesion = Cohesion(st, el)
	return kb
}

// ClassConnectivity counts the outgoing non-typing links from instances of
// class c whose target is itself a typed node (another instance or a
// class).
func ClassConnectivity(st store.Store, el *extract.Elements, c store.Term) int {
	typePred := store.IRI(rdf.Type)

	count := 0
	for _, inst := range instancesOf(st, el, c) {
		for _, po := range st.PredicateObjects(inst) {
			if po.Predicate == typePred {
				continue
			}
			if po.Object.IsIdentifier() && st.Contains(po.Object, typePred, store.Any) {
				count++
			}
		}
	}
	return count
}

// ClassImportance is the share of the total direct instance population
// held by class c together with its transitive subclasses. A root class
// covering every instance scores 1; a class with an unpopulated subtree
// scores 0.
func ClassImportance(st store.Store, el *extract.Elements, c store.Term) float64 {
	total := el.TotalInstanceCount()
	if total == 0 {
		return 0
	}

	subClassOf := store.IRI(rdfs.SubClassOf)

	// Breadth-first walk down the hierarchy: children are subjects of
	// (child, subClassOf, node). The visited set makes hierarchy cycles
	// terminate.
	visited := map[store.Term]bool{c: true}
	queue := []store.Term{c}
	sum := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		sum += el.InstanceCounts[node]

		for _, child := range st.Subjects(subClassOf, node) {
			if el.Classes[child] && !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}
	return float64(sum) / float64(total)
}

// Cohesion counts the connected components of the undirected graph whose
// nodes are instances and whose edges are object-property links between
// two instances, in either direction. An instance with no links is its own
// component.
func Cohesion(st store.Store, el *extract.Elements) int {
	typePred := store.IRI(rdf.Type)

	adjacency := make(map[store.Term][]store.Term, len(el.Instances))
	for inst := range el.Instances {
		for _, po := range st.PredicateObjects(inst) {
			if po.Predicate == typePred {
				continue
			}
			if el.Instances[po.Object] && po.Object != inst {
				adjacency[inst] = append(adjacency[inst], po.Object)
				adjacency[po.Object] = append(adjacency[po.Object], inst)
			}
		}
	}

	visited := make(map[store.Term]bool, len(el.Instances))
	components := 0
	for inst := range el.Instances {
		if visited[inst] {
			continue
		}
		components++

		queue := []store.Term{inst}
		visited[inst] = true
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			for _, next := range adjacency[node] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return components
}
