package task

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[Task]
	}

	StudentRepository interface {
		catalog.Source[StudentTask]
	}

	// Service manages the tasks a teacher assigns.
	Service struct {
		repo     Repository
		validate *validator.Validate
		now      func() time.Time
	}

	// StudentService lists the tasks of a student.
	StudentService struct {
		repo StudentRepository
		now  func() time.Time
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate, now: time.Now}
}

func (svc *Service) Screen() *view.List[Task, NewTask] {
	return view.NewList[Task, NewTask](svc.repo, Schema)
}

func (svc *Service) QueryAll() []Task {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (Task, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []Task {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return ComputeOptions(svc.repo.All())
}

// Create assigns nt, created today.
func (svc *Service) Create(nt NewTask) (Task, error) {
	nt.Created = svc.now().Format(core.DateLayout)
	screen := svc.Screen()
	screen.OpenCreate(nt)
	return screen.Confirm(svc.validate)
}

func NewStudentService(repo StudentRepository) *StudentService {
	return &StudentService{repo: repo, now: time.Now}
}

func (svc *StudentService) QueryAll() []StudentTask {
	return svc.repo.All()
}

func (svc *StudentService) Filter(filter StudentQueryFilter) []StudentTask {
	return StudentSchema.Filter(svc.repo.All(), filter.Criteria())
}

func (svc *StudentService) Details(tasks []StudentTask) []StudentDetail {
	return StudentDetails(tasks, svc.now())
}

func (svc *StudentService) Stats() StudentStats {
	return ComputeStudentStats(svc.repo.All(), svc.now())
}

// Pending returns the tasks not handed in yet, in order.
func (svc *StudentService) Pending() []StudentTask {
	all := svc.repo.All()
	pending := make([]StudentTask, 0, len(all))
	for _, st := range all {
		if !st.HandedIn() {
			pending = append(pending, st)
		}
	}
	return pending
}
