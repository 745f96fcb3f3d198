package entity

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &PaginationInput{
		Limit:  min(limit, MaxLimit),
		Offset: max(offset, 0),
	}
}
