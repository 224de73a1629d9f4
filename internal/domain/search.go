package domain

// SearchTerms describes an optional, conjunctive movie query. A nil
// field imposes no constraint; all-nil terms match every movie.
type SearchTerms struct {
	// FreeText is matched case-insensitively as a substring of the
	// movie's aggregate field.
	FreeText *string

	// Person is matched case-insensitively against actor and director
	// full names.
	Person *string

	// Genre is an exact match against any element of the genre list.
	Genre *string

	// AgeLimit is a ceiling: matches movies with ageLimit <= the value.
	AgeLimit *int

	Year   *int
	Rating *int

	// Skip and Limit paginate the filtered result.
	Skip  *int64
	Limit *int64
}

// IsZero reports whether no search field is set, in which case the
// terms match everything.
func (t SearchTerms) IsZero() bool {
	return t.FreeText == nil && t.Person == nil && t.Genre == nil &&
		t.AgeLimit == nil && t.Year == nil && t.Rating == nil
}
