package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontometrics/extract"
	"github.com/c360studio/ontometrics/store"
)

// dogsFixture is the populated two-instance scenario: rex and spot typed
// Dog, friendOf declared with domain Dog and used once from rex to spot.
func dogsFixture() *store.Memory {
	triples := []store.Triple{
		declareClass("Dog"),
		typeAs("rex", "Dog"),
		typeAs("spot", "Dog"),
		{Subject: iri("rex"), Predicate: iri("friendOf"), Object: iri("spot")},
	}
	triples = append(triples, declareObjectProperty("friendOf", "Dog")...)
	return buildStore(triples...)
}

func TestComputeKB_PopulatedClass(t *testing.T) {
	st := dogsFixture()
	el := extract.Extract(st)

	kb := ComputeKB(st, el)

	assert.Equal(t, 2, el.InstanceCounts[iri("Dog")])
	assert.Equal(t, 1, kb.Connectivity[iri("Dog")])
	assert.Equal(t, 1, kb.Cohesion)
	assert.InDelta(t, 1.0, kb.ClassRichness, 1e-9)
	assert.InDelta(t, 1.0, kb.Importance[iri("Dog")], 1e-9)
}

func TestClassConnectivity_IgnoresLiteralAndUntypedTargets(t *testing.T) {
	st := buildStore(
		declareClass("Dog"),
		typeAs("rex", "Dog"),
		store.Triple{Subject: iri("rex"), Predicate: iri("name"), Object: store.Literal("Rex")},
		store.Triple{Subject: iri("rex"), Predicate: iri("livesAt"), Object: iri("untypedPlace")},
	)
	el := extract.Extract(st)

	assert.Zero(t, ClassConnectivity(st, el, iri("Dog")))
}

func TestClassImportance_RootCoversAllInstances(t *testing.T) {
	st := buildStore(
		declareClass("Animal"),
		declareClass("Dog"),
		declareClass("Cat"),
		subClassOf("Dog", "Animal"),
		subClassOf("Cat", "Animal"),
		typeAs("rex", "Dog"),
		typeAs("whiskers", "Cat"),
	)
	el := extract.Extract(st)

	assert.InDelta(t, 1.0, ClassImportance(st, el, iri("Animal")), 1e-9)
	assert.InDelta(t, 0.5, ClassImportance(st, el, iri("Dog")), 1e-9)
}

func TestClassImportance_UnpopulatedSubtree(t *testing.T) {
	// A class with zero instances anywhere in its subtree scores 0 and
	// stays out of the class richness numerator.
	st := buildStore(
		declareClass("Animal"),
		declareClass("Dog"),
		declareClass("Robot"),
		subClassOf("Dog", "Animal"),
		subClassOf("Robot", "Animal"),
		typeAs("rex", "Dog"),
	)
	el := extract.Extract(st)

	kb := ComputeKB(st, el)

	assert.Zero(t, kb.Importance[iri("Robot")])
	assert.InDelta(t, 1.0/3.0, kb.ClassRichness, 1e-9)
}

func TestClassImportance_HierarchyCycleTerminates(t *testing.T) {
	st := buildStore(
		declareClass("A"),
		declareClass("B"),
		subClassOf("A", "B"),
		subClassOf("B", "A"),
		typeAs("x", "A"),
	)
	el := extract.Extract(st)

	assert.InDelta(t, 1.0, ClassImportance(st, el, iri("A")), 1e-9)
	assert.InDelta(t, 1.0, ClassImportance(st, el, iri("B")), 1e-9)
}

func TestClassImportance_NoInstancesReportsZero(t *testing.T) {
	st := buildStore(declareClass("Dog"))
	el := extract.Extract(st)

	assert.Zero(t, ClassImportance(st, el, iri("Dog")))
}

func TestCohesion_IsolatedInstancesAreSingletons(t *testing.T) {
	st := buildStore(
		declareClass("Dog"),
		typeAs("rex", "Dog"),
		typeAs("spot", "Dog"),
		typeAs("fido", "Dog"),
	)
	el := extract.Extract(st)

	assert.Equal(t, len(el.Instances), Cohesion(st, el))
}

func TestCohesion_LinksMergeComponents(t *testing.T) {
	st := buildStore(
		declareClass("Dog"),
		typeAs("rex", "Dog"),
		typeAs("spot", "Dog"),
		typeAs("fido", "Dog"),
		typeAs("bella", "Dog"),
		store.Triple{Subject: iri("rex"), Predicate: iri("friendOf"), Object: iri("spot")},
		store.Triple{Subject: iri("fido"), Predicate: iri("friendOf"), Object: iri("spot")},
	)
	el := extract.Extract(st)

	// {rex, spot, fido} and {bella}
	assert.Equal(t, 2, Cohesion(st, el))
}

func TestCohesion_EmptyInstanceSet(t *testing.T) {
	st := buildStore(declareClass("Dog"))
	el := extract.Extract(st)

	assert.Zero(t, Cohesion(st, el))
}

func TestComputeKB_EmptySnapshotDegradesToZero(t *testing.T) {
	st := store.NewMemory()
	el := extract.Extract(st)

	kb := ComputeKB(st, el)

	assert.Zero(t, kb.ClassRichness)
	assert.Zero(t, kb.Cohesion)
	assert.Empty(t, kb.Connectivity)
	assert.Empty(t, kb.Importance)
}

func TestPipelineIsIdempotent(t *testing.T) {
	st := dogsFixture()

	first := ComputeKB(st, extract.Extract(st))
	second := ComputeKB(st, extract.Extract(st))

	require.Equal(t, first, second)
	assert.Equal(t, ComputeSchema(extract.Extract(st)), ComputeSchema(extract.Extract(st)))
}

func TestImportanceStaysInUnitInterval(t *testing.T) {
	st := buildStore(
		declareClass("Animal"),
		declareClass("Dog"),
		declareClass("Pet"),
		subClassOf("Dog", "Animal"),
		subClassOf("Dog", "Pet"), // multiple inheritance: subtrees overlap
		typeAs("rex", "Dog"),
		typeAs("generic", "Animal"),
	)
	el := extract.Extract(st)
	kb := ComputeKB(st, el)

	sum := 0.0
	for c, v := range kb.Importance {
		assert.GreaterOrEqual(t, v, 0.0, "class %s", c)
		assert.LessOrEqual(t, v, 1.0, "class %s", c)
		sum += v
	}
	// Overlapping subtrees mean the importance values may exceed 1 in sum.
	assert.Greater(t, sum, 1.0)
}
