package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[Subject]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Screen() *view.List[Subject, NewSubject] {
	return view.NewList[Subject, NewSubject](svc.repo, Schema)
}

func (svc *Service) QueryAll() []Subject {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (Subject, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []Subject {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return Options{Statuses: Statuses}
}

func (svc *Service) Create(ns NewSubject) (Subject, error) {
	screen := svc.Screen()
	screen.OpenCreate(ns)
	return screen.Confirm(svc.validate)
}
