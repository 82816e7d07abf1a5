// Package nav resolves the portal a path belongs to and the sidebar menu shown for it.
package nav

import "strings"

type Role string

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"

	DefaultRole = RoleAdmin
)

// Item is one sidebar entry.
type Item struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var (
	// checked in order; first match wins
	rolePrefixes = []struct {
		prefix string
		role   Role
	}{
		{"/admin", RoleAdmin},
		{"/teacher", RoleTeacher},
		{"/student", RoleStudent},
		{"/parent", RoleParent},
	}

	roleLabels = map[Role]string{
		RoleAdmin:   "Administrador",
		RoleTeacher: "Profesor",
		RoleStudent: "Estudiante",
		RoleParent:  "Padre de Familia",
	}

	menus = map[Role][]Item{
		RoleAdmin: {
			{Path: "/admin/dashboard", Icon: "layout-dashboard", Label: "Dashboard"},
			{Path: "/admin/usuarios", Icon: "users", Label: "Usuarios"},
			{Path: "/admin/cursos", Icon: "book-open", Label: "Cursos"},
			{Path: "/admin/materias", Icon: "library", Label: "Materias"},
			{Path: "/admin/malla-curricular", Icon: "layers", Label: "Malla Curricular"},
			{Path: "/admin/matriculas", Icon: "file-text", Label: "Matrículas"},
			{Path: "/admin/examenes", Icon: "pen-tool", Label: "Exámenes"},
			{Path: "/admin/pagos", Icon: "credit-card", Label: "Pagos"},
			{Path: "/admin/reportes", Icon: "bar-chart-3", Label: "Reportes"},
		},
		RoleTeacher: {
			{Path: "/teacher/dashboard", Icon: "layout-dashboard", Label: "Dashboard"},
			{Path: "/teacher/cursos", Icon: "book-open", Label: "Mis Cursos"},
			{Path: "/teacher/materias", Icon: "library", Label: "Materias"},
			{Path: "/teacher/horario", Icon: "calendar", Label: "Mi Horario"},
			{Path: "/teacher/asistencia", Icon: "clipboard-check", Label: "Asistencia"},
			{Path: "/teacher/tareas", Icon: "file-text", Label: "Tareas"},
			{Path: "/teacher/examenes", Icon: "pen-tool", Label: "Exámenes"},
			{Path: "/teacher/malla-curricular", Icon: "layers", Label: "Malla Curricular"},
		},
		RoleStudent: {
			{Path: "/student/dashboard", Icon: "layout-dashboard", Label: "Dashboard"},
			{Path: "/student/horario", Icon: "calendar", Label: "Mi Horario"},
			{Path: "/student/materias", Icon: "library", Label: "Mis Materias"},
			{Path: "/student/tareas", Icon: "file-text", Label: "Mis Tareas"},
			{Path: "/student/examenes", Icon: "pen-tool", Label: "Mis Exámenes"},
			{Path: "/student/asistencia", Icon: "clipboard-check", Label: "Asistencia"},
		},
		RoleParent: {
			{Path: "/parent/dashboard", Icon: "layout-dashboard", Label: "Dashboard"},
			{Path: "/parent/hijos", Icon: "users", Label: "Mis Hijos"},
			{Path: "/parent/examenes", Icon: "pen-tool", Label: "Exámenes"},
			{Path: "/parent/asistencia", Icon: "clipboard-check", Label: "Asistencia"},
		},
	}

	// Footer is shown under every menu.
	Footer = []Item{
		{Path: "/settings", Icon: "settings", Label: "Configuración"},
		{Path: "/logout", Icon: "log-out", Label: "Cerrar Sesión"},
	}
)

// ResolveRole returns the role whose portal prefix `path` starts with, or DefaultRole.
func ResolveRole(path string) Role {
	for _, rp := range rolePrefixes {
		if strings.HasPrefix(path, rp.prefix) {
			return rp.role
		}
	}
	return DefaultRole
}

// Roles returns every role, in the order prefixes are checked.
func Roles() []Role {
	roles := make([]Role, 0, len(rolePrefixes))
	for _, rp := range rolePrefixes {
		roles = append(roles, rp.role)
	}
	return roles
}

func Label(role Role) string {
	return roleLabels[role]
}

// MenuFor returns a copy of the static menu of role, none of it active.
func MenuFor(role Role) []Item {
	items := make([]Item, len(menus[role]))
	copy(items, menus[role])
	return items
}

// Menu is what the sidebar renders for the current path.
type Menu struct {
	Role      Role   `json:"role"`
	RoleLabel string `json:"role_label"`
	Items     []Item `json:"items"`
	Footer    []Item `json:"footer"`
}

// MenuAt resolves the role of path and marks the entry whose path equals it exactly as active.
// Sub-pages (e.g. /admin/usuarios/3) do not highlight their parent entry.
func MenuAt(path string) Menu {
	role := ResolveRole(path)
	items := MenuFor(role)
	for i := range items {
		items[i].Active = items[i].Path == path
	}
	footer := make([]Item, len(Footer))
	copy(footer, Footer)
	for i := range footer {
		footer[i].Active = footer[i].Path == path
	}
	return Menu{
		Role:      role,
		RoleLabel: Label(role),
		Items:     items,
		Footer:    footer,
	}
}
