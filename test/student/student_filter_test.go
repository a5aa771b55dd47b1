package student

import (
	"testing"

	"student-management/src/models"
	"student-management/src/services/students"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter(t *testing.T) {
	t.Run("TestNoSearchTerms", func(t *testing.T) {
		params := models.DefaultStudentQuery()

		filter := students.BuildListFilter(params)
		assert.Empty(t, filter)
	})

	t.Run("TestNameTerm", func(t *testing.T) {
		params := models.DefaultStudentQuery()
		params.Name = "lov"

		filter := students.BuildListFilter(params)
		assert.NotContains(t, filter, "_id")

		or, ok := filter["$or"].(bson.A)
		assert.True(t, ok)
		assert.Len(t, or, 2)

		first, ok := or[0].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, bson.M{"$regex": "lov", "$options": "i"}, first["firstName"])

		second, ok := or[1].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, bson.M{"$regex": "lov", "$options": "i"}, second["lastName"])
	})

	t.Run("TestIDTerm", func(t *testing.T) {
		objID := primitive.NewObjectID()
		params := models.DefaultStudentQuery()
		params.ID = objID.Hex()

		filter := students.BuildListFilter(params)
		assert.Equal(t, objID, filter["_id"])
		assert.NotContains(t, filter, "$or")
	})

	t.Run("TestNameAndIDCombineAsAnd", func(t *testing.T) {
		objID := primitive.NewObjectID()
		params := models.DefaultStudentQuery()
		params.Name = "lov"
		params.ID = objID.Hex()

		// both constraints live in the same document: id equality AND the
		// name OR-group
		filter := students.BuildListFilter(params)
		assert.Len(t, filter, 2)
		assert.Equal(t, objID, filter["_id"])
		assert.Contains(t, filter, "$or")
	})

	t.Run("TestMalformedIDMatchesNothing", func(t *testing.T) {
		params := models.DefaultStudentQuery()
		params.ID = "not-a-hex-id"

		filter := students.BuildListFilter(params)
		assert.Equal(t, "not-a-hex-id", filter["_id"])
	})
}
