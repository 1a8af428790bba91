package models

// Page is the limit/offset window applied to list queries.
type Page struct {
	Limit  int
	Offset int
}
