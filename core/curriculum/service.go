package curriculum

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[Curriculum]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) QueryAll() []Curriculum {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (Curriculum, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []Curriculum {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return ComputeOptions(svc.repo.All())
}

func (svc *Service) Create(nc NewCurriculum) (Curriculum, error) {
	b := svc.Browser()
	b.OpenCreate(nc)
	return b.Confirm(svc.validate)
}

// Browser is the curriculum screen: a list where one curriculum is expanded at a time
// and any number of its units.
type Browser struct {
	*view.List[Curriculum, NewCurriculum]
	Curriculums *view.Accordion
	Units       *view.ExpandSet
}

// Browser opens a new browser with the first curriculum and the given units expanded.
func (svc *Service) Browser(units ...int) *Browser {
	b := &Browser{
		List:        view.NewList[Curriculum, NewCurriculum](svc.repo, Schema),
		Curriculums: view.NewAccordion(),
		Units:       view.NewExpandSet(units...),
	}
	if all := svc.repo.All(); len(all) > 0 {
		b.Curriculums.Toggle(all[0].ID)
	}
	return b
}
