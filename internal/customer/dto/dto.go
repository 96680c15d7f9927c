package dto

type CustomerFilters struct {
	SearchQuery string // name or email
	Skip        int
	Limit       int
}
