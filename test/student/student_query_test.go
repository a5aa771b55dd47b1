package student

import (
	"testing"

	"student-management/src/models"

	"github.com/stretchr/testify/assert"
)

func TestStudentQueryDefaults(t *testing.T) {
	params := models.DefaultStudentQuery()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, "firstName", params.SortField)
	assert.Equal(t, "asc", params.SortOrder)
	assert.Empty(t, params.Name)
	assert.Empty(t, params.ID)
}

func TestGetSkip(t *testing.T) {
	params := models.DefaultStudentQuery()
	assert.Equal(t, int64(0), params.GetSkip())

	params.Page = 3
	assert.Equal(t, int64(10), params.GetSkip())

	params.Limit = 10
	assert.Equal(t, int64(20), params.GetSkip())
}

func TestGetSortOrder(t *testing.T) {
	params := models.DefaultStudentQuery()
	assert.Equal(t, map[string]int{"firstName": 1}, params.GetSortOrder())

	params.SortField = "age"
	params.SortOrder = "desc"
	assert.Equal(t, map[string]int{"age": -1}, params.GetSortOrder())

	// anything other than desc sorts ascending
	params.SortOrder = "sideways"
	assert.Equal(t, map[string]int{"age": 1}, params.GetSortOrder())
}

func TestStudentListResponse(t *testing.T) {
	params := models.DefaultStudentQuery()

	t.Run("TestTotalPagesRoundsUp", func(t *testing.T) {
		resp := models.NewStudentListResponse([]models.Student{}, 12, params)
		assert.Equal(t, 3, resp.TotalPages)

		resp = models.NewStudentListResponse([]models.Student{}, 10, params)
		assert.Equal(t, 2, resp.TotalPages)

		resp = models.NewStudentListResponse([]models.Student{}, 1, params)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("TestEmptySet", func(t *testing.T) {
		resp := models.NewStudentListResponse([]models.Student{}, 0, params)
		assert.Equal(t, 0, resp.TotalPages)
		assert.NotNil(t, resp.Students)
		assert.Empty(t, resp.Students)
	})

	t.Run("TestCurrentPageEchoesRequest", func(t *testing.T) {
		params.Page = 7
		resp := models.NewStudentListResponse([]models.Student{}, 12, params)
		assert.Equal(t, 7, resp.CurrentPage)
	})
}
