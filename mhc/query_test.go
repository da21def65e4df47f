package mhc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhctools/mhclab/mhc"
	mhctest "github.com/mhctools/mhclab/internal/testing"
)

func writeAmbiguousRegistry(t *testing.T) string {
	t.Helper()
	return mhctest.WriteFile(t, "ambiguous.xml", `<?xml version="1.0"?>
<MhcAlleleNameList>
    <MhcAlleleName>
        <MhcAlleleRestrictionId>10</MhcAlleleRestrictionId>
        <DisplayedRestriction>ALLELE-A</DisplayedRestriction>
        <Synonyms>SHARED</Synonyms>
        <Class>I</Class>
    </MhcAlleleName>
    <MhcAlleleName>
        <MhcAlleleRestrictionId>11</MhcAlleleRestrictionId>
        <DisplayedRestriction>ALLELE-B</DisplayedRestriction>
        <Synonyms>SHARED|OTHER</Synonyms>
        <Class>II</Class>
    </MhcAlleleName>
</MhcAlleleNameList>`)
}

func TestQueryZeroValueMatchesEverything(t *testing.T) {
	q := &mhc.Query{}
	a := &mhc.Allele{Name: "X", Aliases: []string{}}
	assert.True(t, q.Matches(a))
}

func TestQueryNilAttributeNeverMatchesConstraint(t *testing.T) {
	a := &mhc.Allele{Name: "X", Aliases: []string{}}

	assert.False(t, (&mhc.Query{Class: mhc.Ptr("I")}).Matches(a))
	assert.False(t, (&mhc.Query{Chain1: mhc.Ptr("c1")}).Matches(a))
	assert.False(t, (&mhc.Query{ChainAny: mhc.Ptr("c")}).Matches(a))
	assert.False(t, (&mhc.Query{Organism: mhc.Ptr("Human")}).Matches(a))
	assert.False(t, (&mhc.Query{OrganismID: mhc.Ptr("9606")}).Matches(a))
	assert.False(t, (&mhc.Query{RestrictionLevel: mhc.Ptr("complete molecule")}).Matches(a))
}

func TestQueryNameMatchesAliases(t *testing.T) {
	a := &mhc.Allele{Name: "HLA-A*02:01", Aliases: []string{"HLA-A2", "A2"}}

	assert.True(t, (&mhc.Query{Name: mhc.Ptr("HLA-A*02:01")}).Matches(a))
	assert.True(t, (&mhc.Query{Name: mhc.Ptr("A2")}).Matches(a))
	assert.True(t, (&mhc.Query{Name: mhc.Ptr("a2")}).Matches(a))
	assert.False(t, (&mhc.Query{Name: mhc.Ptr("B7")}).Matches(a))
}

func TestQueryAmbiguousAliasAcrossRecords(t *testing.T) {
	catalog, err := mhc.LoadCatalog(writeAmbiguousRegistry(t))
	require.NoError(t, err)

	// FindAll sees both records through the shared alias
	results := catalog.FindAll(&mhc.Query{Name: mhc.Ptr("SHARED")})
	assert.Len(t, results, 2)

	// FindOne never returns a single result here
	_, err = catalog.FindOne(&mhc.Query{Name: mhc.Ptr("SHARED")})
	assert.Error(t, err)

	// The unshared alias is unambiguous
	a, err := catalog.FindOne(&mhc.Query{Name: mhc.Ptr("OTHER")})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "ALLELE-B", a.Name)
}

func TestQueryCombinedConstraints(t *testing.T) {
	catalog := loadTestCatalog(t)

	a, err := catalog.FindOne(&mhc.Query{
		Class:    mhc.Ptr("I"),
		Organism: mhc.Ptr("homo sapiens (HUMAN)"),
	})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "HLA-A*02:01", a.Name)
}
