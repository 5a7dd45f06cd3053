package types

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ASSIGNMENT_STATUS_NOT_STARTED = "not_started"
	ASSIGNMENT_STATUS_IN_PROGRESS = "in_progress"
	ASSIGNMENT_STATUS_COMPLETED   = "completed"
	ASSIGNMENT_STATUS_REVIEWED    = "reviewed"
)

// AssignmentNote entries form an append-only trail; existing notes are
// never modified or removed.
type AssignmentNote struct {
	Author    string `bson:"author" json:"author"`
	Text      string `bson:"text" json:"text"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AssignmentID string             `bson:"assignmentID" json:"assignmentId"`
	AssessmentID string             `bson:"assessmentID" json:"assessmentId"`
	Area         string             `bson:"area" json:"area"`
	Assignee     string             `bson:"assignee" json:"assignee"`
	AssignedBy   string             `bson:"assignedBy" json:"assignedBy"`
	AssignedAt   int64              `bson:"assignedAt" json:"assignedAt"`
	Status       string             `bson:"status" json:"status"`
	// QuestionIDs restricts the assignment to a subset of the area's
	// questions; empty means the whole area.
	QuestionIDs []string         `bson:"questionIDs,omitempty" json:"questionIds,omitempty"`
	Notes       []AssignmentNote `bson:"notes,omitempty" json:"notes,omitempty"`
	ModifiedAt  int64            `bson:"modifiedAt" json:"modifiedAt"`
}

// InScope reports whether the given question belongs to the assignment's
// scope.
func (a Assignment) InScope(q Question) bool {
	if q.Area != a.Area {
		return false
	}
	if len(a.QuestionIDs) == 0 {
		return true
	}
	for _, id := range a.QuestionIDs {
		if id == q.ID {
			return true
		}
	}
	return false
}
