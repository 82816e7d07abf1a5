package user

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/view"
)

type (
	Repository interface {
		catalog.Source[User]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		mailSvc  core.EmailService
		logger   core.Logger
	}
)

// NewService returns the users service. Created users are welcomed by email through mailSvc, if any.
func NewService(repo Repository, validate *validator.Validate, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{repo: repo, validate: validate, mailSvc: mailSvc, logger: logger}
}

// Screen returns a fresh users screen over the repository.
func (svc *Service) Screen() *view.List[User, NewUser] {
	return view.NewList[User, NewUser](svc.repo, Schema)
}

func (svc *Service) QueryAll() []User {
	return svc.repo.All()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.Get(id)
}

func (svc *Service) Filter(filter QueryFilter) []User {
	return Schema.Filter(svc.repo.All(), filter.Criteria())
}

// Stats are computed over every user, whatever is filtered.
func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.All())
}

func (svc *Service) Options() Options {
	return Options{Roles: Roles, Statuses: Statuses}
}

// Create runs nu through the creation form and commits it.
func (svc *Service) Create(nu NewUser) (User, error) {
	screen := svc.Screen()
	screen.OpenCreate(nu)
	usr, err := screen.Confirm(svc.validate)
	if err != nil {
		return User{}, err
	}
	svc.welcome(usr)
	return usr, nil
}

func (svc *Service) welcome(usr User) {
	if svc.mailSvc == nil {
		return
	}
	msg, err := welcomeMessage(usr)
	if err != nil {
		if svc.logger != nil {
			svc.logger.Error(fmt.Sprintf("rendering welcome email: %v", err), err, usr)
		}
		return
	}
	if msg != nil {
		svc.mailSvc.SendMessages(msg)
	}
}
