package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID      int
	Title   string
	Subject string
	Status  string
	Score   *float64
}

func (i item) RecordID() int { return i.ID }

func fPtr(f float64) *float64 { return &f }

var itemSchema = Schema[item]{
	Search: []Accessor[item]{
		func(i item) string { return i.Title },
		func(i item) string { return i.Subject },
	},
	Fields: map[string]Accessor[item]{
		"subject": func(i item) string { return i.Subject },
		"status":  func(i item) string { return i.Status },
	},
}

func sampleItems() []item {
	return []item{
		{ID: 1, Title: "Examen Parcial - Álgebra", Subject: "Math", Status: "scheduled"},
		{ID: 2, Title: "Examen Final - Geometría", Subject: "Math", Status: "scheduled"},
		{ID: 3, Title: "Evaluación Continua", Subject: "Art", Status: "grading"},
		{ID: 4, Title: "Examen de Recuperación", Subject: "Science", Status: "completed", Score: fPtr(15.8)},
		{ID: 5, Title: "Examen Final", Subject: "History", Status: "completed", Score: fPtr(16.2)},
		{ID: 6, Title: "Evaluación Oral", Subject: "Art", Status: "completed", Score: fPtr(17.5)},
	}
}

func ids(items []item) []int {
	out := make([]int, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestNew(t *testing.T) {
	c, err := New(sampleItems()...)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(c.All()))

	_, err = New(item{ID: 1}, item{ID: 2}, item{ID: 1})
	assert.Equal(t, ErrDuplicateID, errors.Cause(err))
}

func TestCatalog_All_isACopy(t *testing.T) {
	c := MustNew(sampleItems()...)
	all := c.All()
	all[0].Title = "changed"

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Examen Parcial - Álgebra", got.Title)
}

func TestCatalog_InsertAndUpdate(t *testing.T) {
	c := MustNew(item{ID: 3}, item{ID: 7}, item{ID: 5})
	assert.Equal(t, 8, c.NextID())

	r, err := c.Insert(func(id int) item { return item{ID: id, Title: "new"} })
	require.NoError(t, err)
	assert.Equal(t, 8, r.ID)
	assert.Equal(t, []int{3, 7, 5, 8}, ids(c.All()), "insertion order is kept")

	r, err = c.Update(7, func(i *item) error {
		i.Status = "completed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", r.Status)

	_, err = c.Update(42, func(i *item) error { return nil })
	assert.Equal(t, ErrNotFound, err)

	_, err = c.Update(7, func(i *item) error {
		i.ID = 9
		return nil
	})
	assert.Error(t, err)
	_, err = c.Get(9)
	assert.Equal(t, ErrNotFound, err)

	_, err = New[item]()
	require.NoError(t, err)
	assert.Equal(t, 1, MustNew[item]().NextID())
}

func TestSchema_Filter(t *testing.T) {
	items := sampleItems()

	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{name: "empty criteria", criteria: Criteria{}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "any constraints", criteria: Criteria{Constraints: []Constraint{{"status", "all"}, {"subject", ""}, {"status", "ANY"}}}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "query is case-insensitive", criteria: Criteria{Query: "EXAMEN FINAL"}, want: []int{2, 5}},
		{name: "query matches any search field", criteria: Criteria{Query: "art"}, want: []int{3, 6}},
		{name: "query with accents", criteria: Criteria{Query: "álgebra"}, want: []int{1}},
		{name: "query is trimmed", criteria: Criteria{Query: "  oral "}, want: []int{6}},
		{name: "unknown query", criteria: Criteria{Query: "lol"}, want: []int{}},
		{name: "status", criteria: Criteria{}.Where("status", "completed"), want: []int{4, 5, 6}},
		{name: "status is exact", criteria: Criteria{}.Where("status", "Completed"), want: []int{}},
		{name: "query AND constraint", criteria: Criteria{Query: "evaluación"}.Where("status", "completed"), want: []int{6}},
		{name: "two constraints", criteria: Criteria{}.Where("subject", "Math").Where("status", "grading"), want: []int{}},
		{name: "unknown field", criteria: Criteria{}.Where("teacher", "Prof. López"), want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemSchema.Filter(items, tt.criteria)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchema_Filter_identity(t *testing.T) {
	items := sampleItems()
	got := itemSchema.Filter(items, Criteria{})
	assert.Equal(t, items, got)
}

// every result must be a subsequence of the input, whatever the criteria
func TestSchema_Filter_subsequence(t *testing.T) {
	items := sampleItems()
	queries := []string{"", "examen", "a", "ó", "zzz"}
	values := []string{"", "Math", "Art", "completed", "scheduled"}

	for _, q := range queries {
		for _, subj := range values {
			for _, status := range values {
				got := itemSchema.Filter(items, Criteria{Query: q}.Where("subject", subj).Where("status", status))
				pos := -1
				for _, g := range got {
					found := false
					for i := pos + 1; i < len(items); i++ {
						if items[i].ID == g.ID {
							pos, found = i, true
							break
						}
					}
					if !found {
						t.Fatalf("Filter(%q, %q, %q) is not an ordered subsequence: %v", q, subj, status, ids(got))
					}
				}
			}
		}
	}
}

func TestCriteria(t *testing.T) {
	c := Criteria{Query: "  hi ", Constraints: []Constraint{{Field: "status", Value: " completed "}}}
	c.Clean()
	assert.Equal(t, "hi", c.Query)
	assert.Equal(t, "completed", c.Value("status"))
	assert.Equal(t, "", c.Value("subject"))
	assert.False(t, c.IsEmpty())

	assert.True(t, Criteria{Query: "   "}.Where("status", "all").IsEmpty())

	base := Criteria{}
	_ = base.Where("status", "x")
	assert.Empty(t, base.Constraints, "Where does not modify the receiver")
}
