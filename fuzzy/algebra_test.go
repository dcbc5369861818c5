package fuzzy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// ageDomain is a fine domain covering every age set used below.
func ageDomain() []float64 {
	out := make([]float64, 0, 101)
	for x := 0; x <= 100; x++ {
		out = append(out, float64(x))
	}

	return out
}

// TestUnion_EndToEnd reproduces the "young ∪ young+" scenario.
func TestUnion_EndToEnd(t *testing.T) {
	young := mustTrapezoidal(t, "young", 0, 0, 10, 15)
	youngPlus := mustTrapezoidal(t, "young+", 10, 15, 25, 30)

	recs, err := fuzzy.Union([]float64{10, 20, 30}, young, youngPlus)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []float64{1, 1, 0}, fuzzy.Degrees(recs))
	for i, r := range recs {
		assert.Equal(t, "young ∪ young+", r.Title)
		assert.Equal(t, []float64{10, 20, 30}[i], r.Value)
	}
}

// TestUnionIntersect_Pointwise checks max/min against per-set degrees and
// commutativity of both operators.
func TestUnionIntersect_Pointwise(t *testing.T) {
	domain := ageDomain()
	a := mustTriangular(t, "a", 10, 30, 50)
	b, err := fuzzy.NewGaussian("b", 45, 12)
	require.NoError(t, err)

	da, db := fuzzy.Degrees(a.Fuzzify(domain)), fuzzy.Degrees(b.Fuzzify(domain))

	ab, err := fuzzy.Union(domain, a, b)
	require.NoError(t, err)
	ba, err := fuzzy.Union(domain, b, a)
	require.NoError(t, err)
	iab, err := fuzzy.Intersect(domain, a, b)
	require.NoError(t, err)
	iba, err := fuzzy.Intersect(domain, b, a)
	require.NoError(t, err)

	for i := range domain {
		assert.Equal(t, math.Max(da[i], db[i]), ab[i].Degree)
		assert.Equal(t, math.Min(da[i], db[i]), iab[i].Degree)
		assert.Equal(t, ab[i].Degree, ba[i].Degree, "union commutes at %v", domain[i])
		assert.Equal(t, iab[i].Degree, iba[i].Degree, "intersection commutes at %v", domain[i])
	}
	assert.Equal(t, "a ∪ b", ab[0].Title)
	assert.Equal(t, "b ∪ a", ba[0].Title)
	assert.Equal(t, "a ∪ b", iab[0].Title, "intersection titles join with ∪ too")
}

// TestUnion_ManySets checks the left fold over three sets.
func TestUnion_ManySets(t *testing.T) {
	domain := []float64{0, 5, 10}
	s1 := mustTriangular(t, "s1", 0, 0, 5)
	s2 := mustTriangular(t, "s2", 0, 5, 10)
	s3 := mustTriangular(t, "s3", 5, 10, 10)

	recs, err := fuzzy.Union(domain, s1, s2, s3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, fuzzy.Degrees(recs))
	assert.Equal(t, "s1 ∪ s2 ∪ s3", recs[0].Title)

	recs, err = fuzzy.Intersect(domain, s1, s2, s3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, fuzzy.Degrees(recs))
	assert.Equal(t, "s1 ∪ s2 ∪ s3", recs[2].Title)
}

// TestUnion_SingleSet degenerates to the set's own fuzzification.
func TestUnion_SingleSet(t *testing.T) {
	s := mustTriangular(t, "only", 1, 2, 3)
	domain := []float64{1, 1.5, 2, 2.5, 3}

	recs, err := fuzzy.Union(domain, s)
	require.NoError(t, err)
	assert.Equal(t, s.Fuzzify(domain), recs)

	recs, err = fuzzy.Intersect(domain, s)
	require.NoError(t, err)
	assert.Equal(t, s.Fuzzify(domain), recs)
}

// TestAlgebra_Errors covers zero sets, nil sets and nil operators.
func TestAlgebra_Errors(t *testing.T) {
	s := mustTriangular(t, "s", 1, 2, 3)

	_, err := fuzzy.Union([]float64{1})
	assert.ErrorIs(t, err, fuzzy.ErrNoSets)
	_, err = fuzzy.Intersect([]float64{1})
	assert.ErrorIs(t, err, fuzzy.ErrNoSets)
	_, err = fuzzy.Union([]float64{1}, s, nil)
	assert.ErrorIs(t, err, fuzzy.ErrNilSet)
	_, err = fuzzy.Complement([]float64{1}, nil)
	assert.ErrorIs(t, err, fuzzy.ErrNilSet)
	_, err = fuzzy.Merge([]float64{1}, fuzzy.Operator{Name: "broken"}, s)
	assert.ErrorIs(t, err, fuzzy.ErrNilOperator)
	_, err = fuzzy.MergeRecords(fuzzy.MaxUnion, s.Fuzzify([]float64{1, 2}), s.Fuzzify([]float64{1}))
	assert.ErrorIs(t, err, fuzzy.ErrLengthMismatch)
}

// TestAlgebra_EmptyDomain verifies empty input yields empty output.
func TestAlgebra_EmptyDomain(t *testing.T) {
	a := mustTriangular(t, "a", 1, 2, 3)
	b := mustTrapezoidal(t, "b", 1, 2, 3, 4)

	recs, err := fuzzy.Union(nil, a, b)
	require.NoError(t, err)
	assert.Empty(t, recs)
	recs, err = fuzzy.Intersect([]float64{}, a, b)
	require.NoError(t, err)
	assert.Empty(t, recs)
	recs, err = fuzzy.Complement(nil, a)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// TestComplement checks 1 − degree, the title prefix and the
// double-negation round trip.
func TestComplement(t *testing.T) {
	domain := ageDomain()
	sets := []fuzzy.Set{
		mustTriangular(t, "t", 10, 30, 50),
		mustTrapezoidal(t, "z", 0, 0, 10, 15),
	}
	g, err := fuzzy.NewGaussian("g", 50, 7)
	require.NoError(t, err)
	sets = append(sets, g)

	for _, s := range sets {
		orig := s.Fuzzify(domain)
		once, err := fuzzy.Complement(domain, s)
		require.NoError(t, err)
		twice := fuzzy.ComplementRecords(once)

		require.Len(t, twice, len(orig))
		assert.Equal(t, "complement "+s.Title(), once[0].Title)
		for i := range orig {
			assert.Equal(t, 1-orig[i].Degree, once[i].Degree)
			assert.InDelta(t, orig[i].Degree, twice[i].Degree, 1e-15, "%s at %v", s.Title(), domain[i])
			assert.Equal(t, orig[i].Value, twice[i].Value)
		}
	}
}

// TestMergeRecords_DoesNotMutateInput guards the seed row.
func TestMergeRecords_DoesNotMutateInput(t *testing.T) {
	s := mustTriangular(t, "s", 0, 1, 2)
	row := s.Fuzzify([]float64{0.5, 1})
	other := s.Fuzzify([]float64{0.5, 1})
	before := append([]fuzzy.Membership(nil), row...)

	out, err := fuzzy.MergeRecords(fuzzy.AlgebraicProduct, row, other)
	require.NoError(t, err)
	assert.Equal(t, before, row)
	assert.Equal(t, "s · s", out[0].Title)
	assert.InDelta(t, 0.25, out[0].Degree, 1e-15)
}

// TestIntersect_TitleJoinsWithUnionSymbol checks merged titles use "∪"
// for both standard operators.
func TestIntersect_TitleJoinsWithUnionSymbol(t *testing.T) {
	a := mustTrapezoidal(t, "a", 0, 1, 2, 3)
	b := mustTrapezoidal(t, "b", 1, 2, 3, 4)

	inter, err := fuzzy.Intersect([]float64{2}, a, b)
	require.NoError(t, err)
	union, err := fuzzy.Union([]float64{2}, a, b)
	require.NoError(t, err)

	assert.Equal(t, "a ∪ b", inter[0].Title)
	assert.Equal(t, union[0].Title, inter[0].Title)
}
