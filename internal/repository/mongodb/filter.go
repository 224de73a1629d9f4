package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/screenbase/movie_catalog/internal/domain"
)

// SearchFilter translates search terms into a MongoDB filter document.
// Present terms are combined by conjunction; absent terms add nothing,
// so empty terms yield the match-everything filter.
//
// Free text is matched case-insensitively as a substring of the derived
// aggregate field only. Person matches actor or director full names,
// OR'd together before joining the conjunction. Genre, year and rating
// are exact; ageLimit is a ceiling.
func SearchFilter(t domain.SearchTerms) bson.M {
	filter := bson.M{}

	if t.FreeText != nil {
		filter["aggregate"] = containsPattern(*t.FreeText)
	}
	if t.Person != nil {
		pattern := containsPattern(*t.Person)
		filter["$or"] = []bson.M{
			{"actors.fullname": pattern},
			{"director.fullname": pattern},
		}
	}
	if t.Genre != nil {
		filter["genres"] = *t.Genre
	}
	if t.AgeLimit != nil {
		filter["agelimit"] = bson.M{"$lte": *t.AgeLimit}
	}
	if t.Year != nil {
		filter["year"] = *t.Year
	}
	if t.Rating != nil {
		filter["rating"] = *t.Rating
	}

	return filter
}

// containsPattern builds a case-insensitive substring regex. The input
// is quoted so user text is never interpreted as a pattern.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
