package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/curriculum"
)

// curriculumApi serves both the admin and the teacher curriculum screens.
type curriculumApi struct {
	svc        *curriculum.Service
	pagination core.PaginationConfig
}

type curriculumList struct {
	listResponse[curriculum.Detail]
	Expanded      *int  `json:"expanded"`
	ExpandedUnits []int `json:"expanded_units"`
}

// query lists curriculums. `expanded` picks the open curriculum (the first one by default)
// and `units` the open units.
func (api *curriculumApi) query(ctx echo.Context) error {
	var filter curriculum.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to curriculum.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	var expanded int
	var units []int
	err := echo.QueryParamsBinder(ctx).
		Int("expanded", &expanded).
		Ints("units", &units).
		BindError()
	if err != nil {
		return err
	}

	b := api.svc.Browser(units...)
	if expanded != 0 {
		if id, open := b.Curriculums.Expanded(); !open || id != expanded {
			b.Curriculums.Toggle(expanded)
		}
	}
	b.SetCriteria(filter.Criteria())

	resp := curriculumList{
		listResponse:  newListResponse(curriculum.Details(b.Visible()), p, api.svc.Stats(), api.svc.Options()),
		ExpandedUnits: b.Units.Expanded(),
	}
	if id, open := b.Curriculums.Expanded(); open {
		resp.Expanded = &id
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *curriculumApi) create(ctx echo.Context) error {
	var data curriculum.NewCurriculum
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to curriculum.NewCurriculum")
	}
	c, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c.Detail())
}

func (api *curriculumApi) retrieve(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting curriculum %d", id)
	}
	return ctx.JSON(http.StatusOK, c.Detail())
}
