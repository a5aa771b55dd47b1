package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a record in the students collection. The id and both
// timestamps are assigned by the store, never by the caller.
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Age       int                `bson:"age" json:"age"`
	Major     string             `bson:"major" json:"major"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateStudentRequest is the POST /api/students body. All four fields
// are required; string fields must not be blank after trimming.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" validate:"notblank" example:"Ada"`
	LastName  string `json:"lastName" validate:"notblank" example:"Lovelace"`
	Age       int    `json:"age" validate:"gte=1" example:"30"`
	Major     string `json:"major" validate:"notblank" example:"Mathematics"`
}

// UpdateStudentRequest is the PUT /api/students/:id body. Nil fields are
// left untouched; supplied fields are validated like their create
// counterparts.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,notblank"`
	LastName  *string `json:"lastName" validate:"omitempty,notblank"`
	Age       *int    `json:"age" validate:"omitempty,gte=1"`
	Major     *string `json:"major" validate:"omitempty,notblank"`
}
