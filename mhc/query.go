package mhc

import "strings"

// Query is a declarative, partially-specified match over allele attributes.
// Nil fields impose no constraint; a zero-value Query matches every record.
//
// All comparisons are case-insensitive string equality, except OrganismID
// which is compared exactly. Name matches the canonical name or any alias.
// ChainAny matches either chain.
type Query struct {
	Name             *string
	Class            *string
	Chain1           *string
	Chain2           *string
	ChainAny         *string
	RestrictionLevel *string
	Organism         *string
	OrganismID       *string
}

// Matches reports whether the allele satisfies every set constraint.
func (q *Query) Matches(a *Allele) bool {
	if q.Name != nil && !matchesNameOrAlias(a, *q.Name) {
		return false
	}
	if q.Class != nil && !foldEq(a.Class, *q.Class) {
		return false
	}
	if q.Chain1 != nil && !foldEq(a.Chain1, *q.Chain1) {
		return false
	}
	if q.Chain2 != nil && !foldEq(a.Chain2, *q.Chain2) {
		return false
	}
	if q.ChainAny != nil && !foldEq(a.Chain1, *q.ChainAny) && !foldEq(a.Chain2, *q.ChainAny) {
		return false
	}
	if q.RestrictionLevel != nil && !foldEq(a.RestrictionLevel, *q.RestrictionLevel) {
		return false
	}
	if q.Organism != nil && !foldEq(a.Organism, *q.Organism) {
		return false
	}
	if q.OrganismID != nil && (a.OrganismID == nil || *a.OrganismID != *q.OrganismID) {
		return false
	}
	return true
}

func matchesNameOrAlias(a *Allele, name string) bool {
	if strings.EqualFold(a.Name, name) {
		return true
	}
	for _, alias := range a.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// foldEq compares an optional record attribute against a constraint value.
// A nil attribute never matches a set constraint.
func foldEq(attr *string, value string) bool {
	return attr != nil && strings.EqualFold(*attr, value)
}
