package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Pagination is bound from the `page` and `page_size` query params.
type Pagination struct {
	Page     int
	PageSize int
}

func (p *Pagination) Bind(ctx echo.Context, conf core.PaginationConfig) error {
	p.Page, p.PageSize = 1, conf.DefaultPageSize
	err := echo.QueryParamsBinder(ctx).
		Int("page", &p.Page).
		Int("page_size", &p.PageSize).
		BindError()
	if err != nil {
		return err
	}
	if p.Page < 1 {
		return core.NewValidationError(nil, core.FieldError{Field: "page", Error: "page must be 1 or greater"})
	}
	if p.PageSize < 1 || p.PageSize > conf.MaxPageSize {
		p.PageSize = conf.MaxPageSize
	}
	return nil
}

func bindID(ctx echo.Context) (int, error) {
	var id int
	err := echo.PathParamsBinder(ctx).MustInt("id", &id).BindError()
	return id, err
}

// listResponse is the body of every list endpoint.
type listResponse[T any] struct {
	catalog.Page[T]
	Stats   interface{} `json:"stats,omitempty"`
	Options interface{} `json:"options,omitempty"`
}

func newListResponse[T any](items []T, p Pagination, stats, options interface{}) listResponse[T] {
	return listResponse[T]{
		Page:    catalog.Paginate(items, p.Page, p.PageSize),
		Stats:   stats,
		Options: options,
	}
}
