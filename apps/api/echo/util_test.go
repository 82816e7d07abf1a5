package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
	"github.com/colegiosanjose/portal/storage/database/inmem"
	"github.com/colegiosanjose/portal/storage/seed"
)

var errNotFound = httpErr{Error: "not found"}

func setup(t *testing.T) (Server, *seed.Seed) {
	t.Helper()

	s, err := seed.Default()
	require.NoError(t, err)
	db, err := inmemdb.Open(s)
	require.NoError(t, err)

	validate, translator := core.NewValidator()
	user.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	studentTasks := task.NewStudentService(db.StudentTasks)

	return NewServer(&Options{
		AppName:        "San José",
		TestMode:       true,
		DisableReqLogs: true,
		Pagination:     core.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Translator:     translator,

		UserSvc:              user.NewService(db.Users, validate, nil, nil),
		ExamSvc:              exam.NewService(db.Exams, validate),
		SubjectSvc:           subject.NewService(db.Subjects, validate),
		GradeSvc:             grade.NewService(db.Grades, validate),
		CurriculumSvc:        curriculum.NewService(db.Curriculums, validate),
		TeacherCurriculumSvc: curriculum.NewService(db.TeacherCurriculums, validate),
		TaskSvc:              task.NewService(db.Tasks, validate),
		StudentTaskSvc:       studentTasks,
		AttendanceSvc:        attendance.NewService(db.Attendance, validate, s.Attendance.Courses),
		DashboardSvc:         dashboard.NewService(s.Admin, s.Student, studentTasks),
	}), s
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

// page is the envelope of list responses, as clients decode it.
type page[T any] struct {
	Items    []T             `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
	Pages    int             `json:"pages"`
	Stats    json.RawMessage `json:"stats"`
	Options  json.RawMessage `json:"options"`
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func serve(app Server, method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	app.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(app, tt.method, tt.path, tt.body))
		})
	}
}
