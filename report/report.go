// Package report assembles and formats evaluation results. The metric
// packages return plain numbers; everything presentational lives here.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontometrics/extract"
	"github.com/c360studio/ontometrics/metrics"
	"github.com/c360studio/ontometrics/store"
)

// Summary holds the element counts of one evaluated snapshot.
type Summary struct {
	Triples                 int `json:"triples" yaml:"triples"`
	Classes                 int `json:"classes" yaml:"classes"`
	Instances               int `json:"instances" yaml:"instances"`
	ObjectProperties        int `json:"object_properties" yaml:"object_properties"`
	DataProperties          int `json:"data_properties" yaml:"data_properties"`
	SubclassAxioms          int `json:"subclass_axioms" yaml:"subclass_axioms"`
	NonInheritanceRelations int `json:"non_inheritance_relations" yaml:"non_inheritance_relations"`
}

// ClassRank is one class with its score, for top-N listings.
type ClassRank struct {
	Class string  `json:"class" yaml:"class"`
	Score float64 `json:"score" yaml:"score"`
}

// Result is the complete outcome of evaluating one ontology.
type Result struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	DurationMS  int64     `json:"duration_ms" yaml:"duration_ms"`

	Summary Summary        `json:"summary" yaml:"summary"`
	Schema  metrics.Schema `json:"schema" yaml:"schema"`

	ClassRichness float64 `json:"class_richness" yaml:"class_richness"`
	Cohesion      int     `json:"cohesion" yaml:"cohesion"`

	// TopConnectivity, TopImportance, and TopClassRelationship list the
	// highest-scoring classes, ties broken by identifier so output is
	// stable.
	TopConnectivity      []ClassRank `json:"top_connectivity" yaml:"top_connectivity"`
	TopImportance        []ClassRank `json:"top_importance" yaml:"top_importance"`
	TopClassRelationship []ClassRank `json:"top_class_relationship_richness" yaml:"top_class_relationship_richness"`
}

// Build assembles a Result from the pipeline stages' output.
func Build(source string, st store.Store, el *extract.Elements, schema metrics.Schema, classRel map[store.Term]float64, kb metrics.KB, topN int, duration time.Duration) Result {
	conn := make(map[store.Term]float64, len(kb.Connectivity))
	for c, n := range kb.Connectivity {
		conn[c] = float64(n)
	}

	return Result{
		RunID:       uuid.New().String(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		DurationMS:  duration.Milliseconds(),
		Summary: Summary{
			Triples:                 st.Len(),
			Classes:                 len(el.Classes),
			Instances:               len(el.Instances),
			ObjectProperties:        len(el.ObjectProperties),
			DataProperties:          len(el.DataProperties),
			SubclassAxioms:          el.SubclassCount,
			NonInheritanceRelations: el.NonInheritanceCount,
		},
		Schema:               schema,
		ClassRichness:        kb.ClassRichness,
		Cohesion:             kb.Cohesion,
		TopConnectivity:      rank(conn, topN),
		TopImportance:        rank(kb.Importance, topN),
		TopClassRelationship: rank(classRel, topN),
	}
}

// rank sorts a class score map descending and keeps the top n entries.
// Equal scores order by class identifier.
func rank(scores map[store.Term]float64, n int) []ClassRank {
	ranked := make([]ClassRank, 0, len(scores))
	for c, score := range scores {
		ranked = append(ranked, ClassRank{Class: c.String(), Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Class < ranked[j].Class
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
