package student

import (
	"testing"
	"time"

	"student-management/src/models"
	"student-management/src/utils"
	"student-management/test"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateStudentValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Create Student Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidCreatePayload", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Create Payload")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Valid Create Payload", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Valid Create Payload", duration, 100*time.Millisecond)
		}()

		req := models.CreateStudentRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Age:       30,
			Major:     "Mathematics",
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Empty(t, fieldErrors)
	})

	t.Run("TestMissingLastName", func(t *testing.T) {
		req := models.CreateStudentRequest{
			FirstName: "Ada",
			Age:       30,
			Major:     "Mathematics",
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "lastName", fieldErrors[0].Field)
		assert.Equal(t, "Last name is required", fieldErrors[0].Message)
	})

	t.Run("TestBlankFirstName", func(t *testing.T) {
		req := models.CreateStudentRequest{
			FirstName: "   ",
			LastName:  "Lovelace",
			Age:       30,
			Major:     "Mathematics",
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "firstName", fieldErrors[0].Field)
		assert.Equal(t, "First name is required", fieldErrors[0].Message)
	})

	t.Run("TestZeroAge", func(t *testing.T) {
		req := models.CreateStudentRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Age:       0,
			Major:     "Mathematics",
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "age", fieldErrors[0].Field)
		assert.Equal(t, "Age must be a positive integer", fieldErrors[0].Message)
	})

	t.Run("TestEmptyPayload", func(t *testing.T) {
		req := models.CreateStudentRequest{}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 4)

		fields := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"firstName", "lastName", "age", "major"}, fields)
	})
}

func TestUpdateStudentValidation(t *testing.T) {
	t.Run("TestEmptyUpdateIsValid", func(t *testing.T) {
		req := models.UpdateStudentRequest{}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Empty(t, fieldErrors)
	})

	t.Run("TestPartialUpdateIsValid", func(t *testing.T) {
		req := models.UpdateStudentRequest{
			Age: intPtr(21),
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Empty(t, fieldErrors)
	})

	t.Run("TestSuppliedZeroAgeRejected", func(t *testing.T) {
		req := models.UpdateStudentRequest{
			Age: intPtr(0),
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "age", fieldErrors[0].Field)
		assert.Equal(t, "Age must be a positive integer", fieldErrors[0].Message)
	})

	t.Run("TestSuppliedBlankMajorRejected", func(t *testing.T) {
		req := models.UpdateStudentRequest{
			FirstName: strPtr("Grace"),
			Major:     strPtr("  "),
		}

		fieldErrors := utils.ValidateStudentInput(&req)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "major", fieldErrors[0].Field)
		assert.Equal(t, "Major is required", fieldErrors[0].Message)
	})
}
