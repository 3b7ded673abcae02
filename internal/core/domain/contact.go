package domain

// Contact is a resolved CRM contact. Only the identifier is needed to
// associate engagements; when a search returns multiple matches the
// first result in API order wins.
type Contact struct {
	ID string
}
