package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
)

var (
	userRoleTag  = "userrole"
	userRoleText = "{0} must be one of Estudiante, Profesor, Padre or Administrativo"
)

// InitValidators registers the user validation tags and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(userRoleTag, userRoleValidation)
	core.RegisterCustomTranslation(validate, translator, userRoleTag, userRoleText)
}

// userRoleValidation checks that the role is one of Roles.
func userRoleValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
