package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"student-management/src/database"
	"student-management/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrStudentNotFound - no record matches the given id
	ErrStudentNotFound = errors.New("student not found")
	// ErrValidation - required fields missing or out of range
	ErrValidation = errors.New("invalid student data")
)

// CreateStudent trims and persists a new student, assigning the id and
// both timestamps.
func CreateStudent(req *models.CreateStudentRequest) (*models.Student, error) {
	student := models.Student{
		ID:        primitive.NewObjectID(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Age:       req.Age,
		Major:     strings.TrimSpace(req.Major),
	}

	if student.FirstName == "" || student.LastName == "" || student.Major == "" || student.Age < 1 {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	if _, err := database.StudentCollection.InsertOne(context.Background(), student); err != nil {
		return nil, err
	}

	return &student, nil
}

// BuildListFilter combines the two optional search terms: a name term
// matches firstName OR lastName as a case-insensitive substring, an id
// term must match _id exactly. With both present a record has to satisfy
// the id equality AND the name OR-group.
func BuildListFilter(params models.StudentQueryParams) bson.M {
	filter := bson.M{}

	if params.Name != "" {
		regex := bson.M{"$regex": params.Name, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
		}
	}

	if params.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(params.ID); err == nil {
			filter["_id"] = objID
		} else {
			// malformed hex can never equal a stored ObjectID
			filter["_id"] = params.ID
		}
	}

	return filter
}

// GetStudents returns one page of students plus the filtered total, which
// counts the whole filtered set before skip/limit are applied.
func GetStudents(params models.StudentQueryParams) ([]models.Student, int64, error) {
	ctx := context.Background()
	filter := BuildListFilter(params)

	total, err := database.StudentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := database.StudentCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetStudentByID fetches a single student by its hex id.
func GetStudentByID(id string) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrStudentNotFound
	}

	var student models.Student
	err = database.StudentCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// BuildUpdate maps the supplied fields into a $set document. updatedAt is
// always refreshed; absent fields stay untouched.
func BuildUpdate(req *models.UpdateStudentRequest, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}

	if req.FirstName != nil {
		set["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		set["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Major != nil {
		set["major"] = strings.TrimSpace(*req.Major)
	}

	return set
}

// UpdateStudent applies a partial update and returns the post-update
// document.
func UpdateStudent(id string, req *models.UpdateStudentRequest) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrStudentNotFound
	}

	update := bson.M{"$set": BuildUpdate(req, time.Now().UTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student models.Student
	err = database.StudentCollection.
		FindOneAndUpdate(context.Background(), bson.M{"_id": objID}, update, opts).
		Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// DeleteStudent permanently removes a student.
func DeleteStudent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrStudentNotFound
	}

	res, err := database.StudentCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrStudentNotFound
	}

	return nil
}
