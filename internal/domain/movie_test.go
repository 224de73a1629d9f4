package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_Normalize(t *testing.T) {
	p := Person{FirstName: "Testi", LastName: "Testaaja"}
	p.Normalize()
	assert.Equal(t, "Testi Testaaja", p.FullName)
}

func TestPerson_Normalize_TrimsAndHandlesMissingLastName(t *testing.T) {
	p := Person{FirstName: "  Madonna  "}
	p.Normalize()
	assert.Equal(t, "Madonna", p.FullName)
}

func TestPerson_Normalize_OverwritesStaleFullName(t *testing.T) {
	p := Person{FirstName: "Sigourney", LastName: "Weaver", FullName: "Someone Else"}
	p.Normalize()
	assert.Equal(t, "Sigourney Weaver", p.FullName)
}

func TestMovie_Normalize(t *testing.T) {
	m := Movie{
		Name:     "Alien",
		Synopsis: "In space no one can hear you scream",
		Actors: []Person{
			{FirstName: "Sigourney", LastName: "Weaver"},
			{FirstName: "Tom", LastName: "Skerritt"},
		},
		Director: Person{FirstName: "Ridley", LastName: "Scott"},
	}

	m.Normalize()

	assert.Equal(t, "Sigourney Weaver", m.Actors[0].FullName)
	assert.Equal(t, "Tom Skerritt", m.Actors[1].FullName)
	assert.Equal(t, "Ridley Scott", m.Director.FullName)
	assert.Equal(t, "Alien In space no one can hear you scream Sigourney Weaver Tom Skerritt Ridley Scott", m.Aggregate)
}

func TestMovie_Normalize_RecomputesAggregate(t *testing.T) {
	m := Movie{Name: "Alien", Aggregate: "stale"}
	m.Normalize()

	assert.NotContains(t, m.Aggregate, "stale")
	assert.Contains(t, m.Aggregate, "Alien")
}

func TestSearchTerms_IsZero(t *testing.T) {
	assert.True(t, SearchTerms{}.IsZero())

	limit := int64(10)
	assert.True(t, SearchTerms{Limit: &limit}.IsZero(), "pagination alone is not a constraint")

	genre := "Adventure"
	assert.False(t, SearchTerms{Genre: &genre}.IsZero())
}
