package types

import "go.mongodb.org/mongo-driver/bson/primitive"

type DepartmentInfo struct {
	Name         string `bson:"name" json:"name"`
	Acronym      string `bson:"acronym,omitempty" json:"acronym,omitempty"`
	Branch       string `bson:"branch,omitempty" json:"branch,omitempty"`
	ContactName  string `bson:"contactName,omitempty" json:"contactName,omitempty"`
	ContactEmail string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
}

// AssessmentInstance is one running self-assessment of a department.
type AssessmentInstance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AssessmentID string             `bson:"assessmentID" json:"assessmentId"`
	Department   DepartmentInfo     `bson:"department" json:"department"`
	Language     string             `bson:"language" json:"language"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
	ModifiedAt   int64              `bson:"modifiedAt" json:"modifiedAt"`
}
