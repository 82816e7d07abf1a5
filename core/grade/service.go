package grade

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[Grade]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Screen() *view.List[Grade, NewGrade] {
	return view.NewList[Grade, NewGrade](svc.repo, Schema)
}

func (svc *Service) QueryAll() []Grade {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (Grade, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []Grade {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return ComputeOptions(svc.repo.All())
}

func (svc *Service) Create(ng NewGrade) (Grade, error) {
	screen := svc.Screen()
	screen.OpenCreate(ng)
	return screen.Confirm(svc.validate)
}
