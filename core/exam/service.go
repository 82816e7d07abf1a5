package exam

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[Exam]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Screen() *view.List[Exam, NewExam] {
	return view.NewList[Exam, NewExam](svc.repo, Schema)
}

func (svc *Service) QueryAll() []Exam {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (Exam, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []Exam {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return ComputeOptions(svc.repo.All())
}

func (svc *Service) Create(ne NewExam) (Exam, error) {
	screen := svc.Screen()
	screen.OpenCreate(ne)
	return screen.Confirm(svc.validate)
}

// Details maps exams to their details, keeping the order.
func Details(exams []Exam) []Detail {
	details := make([]Detail, 0, len(exams))
	for _, e := range exams {
		details = append(details, e.Detail())
	}
	return details
}
