package echoapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/nav"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
)

func TestHome(t *testing.T) {
	app, _ := setup(t)
	rec := serve(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to San José API!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func Test_navApi(t *testing.T) {
	app, _ := setup(t)
	runHTTPTests(t, app, []httpTest{
		{
			name:     "teacher page",
			method:   http.MethodGet,
			path:     "/v1/nav?path=/teacher/asistencia",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, nav.MenuAt("/teacher/asistencia")),
		},
		{
			name:     "no path",
			method:   http.MethodGet,
			path:     "/v1/nav",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, nav.MenuAt("")),
		},
		{
			name:     "trailing slash is dropped",
			method:   http.MethodGet,
			path:     "/v1/nav/?path=/student/tareas",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, nav.MenuAt("/student/tareas")),
		},
	})

	var m nav.Menu
	decode(t, serve(app, http.MethodGet, "/v1/nav?path=/parent/hijos"), &m)
	assert.Equal(t, nav.RoleParent, m.Role)
	assert.True(t, m.Items[1].Active)
}

func Test_adminApi_users(t *testing.T) {
	app, s := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/admin/users/2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, s.Users[1]),
		},
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/admin/users/99",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "retrieve bad id",
			method:   http.MethodGet,
			path:     "/v1/admin/users/dos",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"id": "invalid value"}`),
		},
		{
			name:     "page 0",
			method:   http.MethodGet,
			path:     "/v1/admin/users?page=0",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"page": "page must be 1 or greater"}`),
		},
		{
			name:     "page not a number",
			method:   http.MethodGet,
			path:     "/v1/admin/users?page=uno",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"page": "invalid value"}`),
		},
		{
			name:     "create empty",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name": "this field is required", "role": "this field is required"}`),
		},
		{
			name:     "create with bad email",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			body:     []byte(`{"name": "Ana", "email": "ana@", "role": "Estudiante"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email": "email must be a valid email address"}`),
		},
		{
			name:     "create with unknown role",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			body:     []byte(`{"name": "Ana", "role": "Director"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"role": "role must be one of Estudiante, Profesor, Padre or Administrativo"}`),
		},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			body:     []byte(`{"name": " Ana Lucía ", "email": "Ana.Lucia@Escuela.com", "role": "Estudiante", "grade": "3ro A"}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, user.User{
				ID:     9,
				Name:   "Ana Lucía",
				Email:  "ana.lucia@escuela.com",
				Role:   user.RoleStudent,
				Grade:  "3ro A",
				Status: user.StatusActive,
				Avatar: "AL",
			}),
		},
	})

	tests := []struct {
		name      string
		query     url.Values
		wantTotal int
		wantItems int
		wantPages int
	}{
		{name: "all", query: url.Values{}, wantTotal: 9, wantItems: 9, wantPages: 1},
		{name: "role", query: url.Values{"role": {user.RoleTeacher}}, wantTotal: 2, wantItems: 2, wantPages: 1},
		{name: "role all", query: url.Values{"role": {"all"}}, wantTotal: 9, wantItems: 9, wantPages: 1},
		{name: "search", query: url.Values{"search": {"GARCÍA"}}, wantTotal: 1, wantItems: 1, wantPages: 1},
		{name: "inactive", query: url.Values{"status": {user.StatusInactive}}, wantTotal: 1, wantItems: 1, wantPages: 1},
		{name: "second page", query: url.Values{"page": {"2"}, "page_size": {"4"}}, wantTotal: 9, wantItems: 4, wantPages: 3},
		{name: "past the end", query: url.Values{"page": {"5"}, "page_size": {"4"}}, wantTotal: 9, wantItems: 0, wantPages: 3},
		{name: "huge page", query: url.Values{"page": {"9223372036854775807"}}, wantTotal: 9, wantItems: 0, wantPages: 1},
		{name: "no match", query: url.Values{"search": {"zzz"}}, wantTotal: 0, wantItems: 0, wantPages: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(app, http.MethodGet, "/v1/admin/users?"+tt.query.Encode())
			require.Equal(t, http.StatusOK, rec.Code)

			var p page[user.User]
			decode(t, rec, &p)
			assert.Equal(t, tt.wantTotal, p.Total)
			assert.Len(t, p.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.JSONEq(t, `{"total": 9, "active": 8, "inactive": 1, "by_role": {"Estudiante": 4, "Profesor": 2, "Padre": 2, "Administrativo": 1}}`, string(p.Stats))
		})
	}
}

func Test_adminApi_exams(t *testing.T) {
	app, _ := setup(t)

	rec := serve(app, http.MethodGet, "/v1/admin/exams?status=completed")
	require.Equal(t, http.StatusOK, rec.Code)
	var p page[exam.Detail]
	decode(t, rec, &p)
	require.Len(t, p.Items, 3)
	for _, e := range p.Items {
		assert.Equal(t, 100, e.Progress)
		assert.Equal(t, "Completado", e.StatusLabel)
	}

	runHTTPTests(t, app, []httpTest{
		{
			name:     "create with bad date",
			method:   http.MethodPost,
			path:     "/v1/admin/exams",
			body:     []byte(`{"title": "Quiz", "subject": "Arte", "course": "3ro A", "date": "15/12/2024"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"date": "date must be a date formatted as YYYY-MM-DD"}`),
		},
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/admin/exams/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
	})

	rec = serve(app, http.MethodPost, "/v1/admin/exams", []byte(`{"title": "Quiz", "subject": "Arte", "course": "3ro A", "date": "2024-12-19", "students_total": 20}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created exam.Detail
	decode(t, rec, &created)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, exam.StatusScheduled, created.Status)
	assert.Equal(t, exam.DefaultTotalPoints, created.TotalPoints)
	assert.Nil(t, created.AverageGrade)

	rec = serve(app, http.MethodGet, "/v1/admin/exams/7")
	require.Equal(t, http.StatusOK, rec.Code)
}

func Test_adminApi_subjectsAndGrades(t *testing.T) {
	app, s := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "retrieve subject",
			method:   http.MethodGet,
			path:     "/v1/admin/subjects/1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, s.Subjects[0]),
		},
		{
			name:     "create subject without code",
			method:   http.MethodPost,
			path:     "/v1/admin/subjects",
			body:     []byte(`{"name": "Música"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"code": "this field is required"}`),
		},
		{
			name:     "create grade without sections",
			method:   http.MethodPost,
			path:     "/v1/admin/grades",
			body:     []byte(`{"name": "2do Año", "level": "Secundaria", "sections": []}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"sections": "sections must contain at least 1 item"}`),
		},
		{
			name:     "create grade with repeated sections",
			method:   http.MethodPost,
			path:     "/v1/admin/grades",
			body:     []byte(`{"name": "2do Año", "level": "Secundaria", "sections": [{"name": "A"}, {"name": "a"}]}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"sections": "section names must be unique"}`),
		},
		{
			name:     "create grade with a spaced section",
			method:   http.MethodPost,
			path:     "/v1/admin/grades",
			body:     []byte(`{"name": "2do Año", "level": "Secundaria", "sections": [{"name": "A B"}]}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name": "only alphanumeric characters and underscores are allowed"}`),
		},
	})

	var subjects page[map[string]interface{}]
	decode(t, serve(app, http.MethodGet, "/v1/admin/subjects?status=active"), &subjects)
	assert.Equal(t, 6, subjects.Total)

	rec := serve(app, http.MethodPost, "/v1/admin/grades", []byte(`{"name": "2do Año", "level": "Secundaria"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var g grade.Grade
	decode(t, rec, &g)
	assert.Equal(t, 8, g.ID)
	require.Len(t, g.Sections, 1)
	assert.Equal(t, "8a", g.Sections[0].ID)

	var grades page[grade.Grade]
	decode(t, serve(app, http.MethodGet, "/v1/admin/grades?level=Secundaria"), &grades)
	assert.Equal(t, 2, grades.Total)
}

func Test_curriculumApi(t *testing.T) {
	app, _ := setup(t)

	type curriculums struct {
		page[curriculum.Detail]
		Expanded      *int  `json:"expanded"`
		ExpandedUnits []int `json:"expanded_units"`
	}

	var c curriculums
	decode(t, serve(app, http.MethodGet, "/v1/admin/curriculums"), &c)
	assert.Equal(t, 2, c.Total)
	require.NotNil(t, c.Expanded)
	assert.Equal(t, 1, *c.Expanded)
	assert.Empty(t, c.ExpandedUnits)

	c = curriculums{}
	decode(t, serve(app, http.MethodGet, "/v1/admin/curriculums?expanded=2&units=1&units=3&subject=Español"), &c)
	assert.Equal(t, 1, c.Total)
	require.NotNil(t, c.Expanded)
	assert.Equal(t, 2, *c.Expanded)
	assert.Equal(t, []int{1, 3}, c.ExpandedUnits)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "create with bad year",
			method:   http.MethodPost,
			path:     "/v1/admin/curriculums",
			body:     []byte(`{"subject": "Arte", "grade": "3er Grado", "year": "24", "total_hours": 60}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"year": "year must be 4 characters in length"}`),
		},
		{
			name:     "create with an unnamed unit",
			method:   http.MethodPost,
			path:     "/v1/admin/curriculums",
			body:     []byte(`{"subject": "Arte", "grade": "3er Grado", "year": "2025", "total_hours": 60, "units": [{"name": " "}]}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name": "this field is required"}`),
		},
		{
			name:     "teacher cannot create",
			method:   http.MethodPost,
			path:     "/v1/teacher/curriculums",
			body:     []byte(`{}`),
			wantCode: http.StatusMethodNotAllowed,
		},
	})

	rec := serve(app, http.MethodPost, "/v1/admin/curriculums", []byte(`{"subject": "Arte", "grade": "3er Grado", "year": "2025", "total_hours": 60}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created curriculum.Detail
	decode(t, rec, &created)
	assert.Equal(t, 3, created.ID)
	assert.Empty(t, created.Units)

	rec = serve(app, http.MethodPost, "/v1/admin/curriculums", []byte(`{"subject": "Música", "grade": "3er Grado", "year": "2025", "total_hours": 40,
		"units": [{"name": "Ritmo", "topics": [{"name": "Pulso", "hours": 4}, {"name": "Compás", "hours": 6, "scheduled_date": "2025-04-01"}]}]}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created = curriculum.Detail{}
	decode(t, rec, &created)
	assert.Equal(t, 4, created.ID)
	require.Len(t, created.Units, 1)
	assert.Equal(t, 2, created.Topics)
	assert.Equal(t, "2025-04-01", created.Units[0].Topics[1].ScheduledDate)

	var teacher curriculums
	decode(t, serve(app, http.MethodGet, "/v1/teacher/curriculums"), &teacher)
	assert.Equal(t, 2, teacher.Total)
}

func Test_teacherApi_attendance(t *testing.T) {
	app, _ := setup(t)

	var roll attendance.Roll
	decode(t, serve(app, http.MethodGet, "/v1/teacher/attendance"), &roll)
	assert.Equal(t, "5to A - Matemáticas", roll.Course)
	assert.Len(t, roll.Courses, 4)
	assert.Len(t, roll.Marks, 10)
	assert.Equal(t, attendance.Stats{Total: 10, Present: 7, Absent: 2, Late: 1, Rate: 80}, roll.Stats)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "mark present",
			method:   http.MethodPut,
			path:     "/v1/teacher/attendance/3",
			body:     []byte(`{"status": "present"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"id": 3, "course": "5to A - Matemáticas", "student": "Laura Méndez", "avatar": "LM", "status": "present"}`),
		},
		{
			name:     "mark excused",
			method:   http.MethodPut,
			path:     "/v1/teacher/attendance/3",
			body:     []byte(`{"status": "excused"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"status": "status must be one of present, absent or late"}`),
		},
		{
			name:     "mark unknown",
			method:   http.MethodPut,
			path:     "/v1/teacher/attendance/99",
			body:     []byte(`{"status": "late"}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "unknown course",
			method:   http.MethodGet,
			path:     "/v1/teacher/attendance?course=7mo",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
	})

	roll = attendance.Roll{}
	decode(t, serve(app, http.MethodGet, "/v1/teacher/attendance?"+url.Values{"course": {"5to A - Matemáticas"}, "search": {"méndez"}}.Encode()), &roll)
	require.Len(t, roll.Marks, 1)
	assert.Equal(t, 90, roll.Stats.Rate)

	roll = attendance.Roll{}
	decode(t, serve(app, http.MethodGet, "/v1/teacher/attendance?"+url.Values{"course": {"5to B - Matemáticas"}}.Encode()), &roll)
	assert.Len(t, roll.Marks, 3)
}

func Test_teacherApi_tasks(t *testing.T) {
	app, _ := setup(t)

	var p page[task.Detail]
	decode(t, serve(app, http.MethodGet, "/v1/teacher/tasks?status=active"), &p)
	assert.Equal(t, 3, p.Total)
	assert.JSONEq(t, `{"total": 5, "active": 3, "grading": 1, "completed": 1}`, string(p.Stats))

	runHTTPTests(t, app, []httpTest{
		{
			name:     "create without due date",
			method:   http.MethodPost,
			path:     "/v1/teacher/tasks",
			body:     []byte(`{"title": "Lectura", "course": "5to A - Matemáticas"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"due_date": "this field is required"}`),
		},
	})

	rec := serve(app, http.MethodPost, "/v1/teacher/tasks", []byte(`{"title": "Lectura", "course": "5to A - Matemáticas", "due_date": "2024-12-20", "total": 32}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created task.Detail
	decode(t, rec, &created)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, task.StatusActive, created.Status)
	assert.NotEmpty(t, created.Created)
	assert.Equal(t, 0, created.SubmissionRate)

	p = page[task.Detail]{}
	decode(t, serve(app, http.MethodGet, "/v1/teacher/tasks"), &p)
	assert.Equal(t, 6, p.Total)
}

func Test_studentApi(t *testing.T) {
	app, _ := setup(t)

	var p page[task.StudentDetail]
	decode(t, serve(app, http.MethodGet, "/v1/student/tasks?status=pending"), &p)
	assert.Equal(t, 2, p.Total)
	assert.Equal(t, "Pendiente", p.Items[0].StatusLabel)
	assert.Empty(t, p.Options)

	var d struct {
		Average      float64 `json:"average"`
		Pending      int     `json:"pending"`
		Attendance   int     `json:"attendance"`
		Achievements int     `json:"achievements"`
		Classes      []struct {
			Status string `json:"status"`
		} `json:"classes"`
	}
	decode(t, serve(app, http.MethodGet, "/v1/student/dashboard"), &d)
	assert.Equal(t, 91.8, d.Average)
	assert.Equal(t, 3, d.Pending)
	assert.Equal(t, 98, d.Attendance)
	assert.Equal(t, 12, d.Achievements)
	assert.Len(t, d.Classes, 5)
}

func Test_adminApi_dashboard(t *testing.T) {
	app, _ := setup(t)

	var d struct {
		Cards  []map[string]string `json:"cards"`
		Gender struct {
			Male          int `json:"male"`
			MalePercent   int `json:"male_percent"`
			FemalePercent int `json:"female_percent"`
		} `json:"gender"`
		Events []map[string]interface{} `json:"events"`
	}
	decode(t, serve(app, http.MethodGet, "/v1/admin/dashboard"), &d)
	assert.Len(t, d.Cards, 4)
	assert.Equal(t, 687, d.Gender.Male)
	assert.Equal(t, 54, d.Gender.MalePercent)
	assert.Equal(t, 46, d.Gender.FemalePercent)
	assert.Len(t, d.Events, 3)
}
