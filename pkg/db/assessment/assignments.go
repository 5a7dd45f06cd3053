package assessment

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForAssignmentsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionAssignments(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assignmentID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "assessmentID", Value: 1},
				{Key: "area", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *AssessmentDBService) CreateAssignment(instanceID string, assignment assessmentTypes.Assignment) (assessmentTypes.Assignment, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	assignment.AssignedAt = now
	assignment.ModifiedAt = now

	ret, err := dbService.collectionAssignments(instanceID).InsertOne(ctx, assignment)
	if err != nil {
		return assignment, err
	}
	assignment.ID = ret.InsertedID.(primitive.ObjectID)
	return assignment, nil
}

func (dbService *AssessmentDBService) GetAssignmentByID(instanceID string, assignmentID string) (assignment assessmentTypes.Assignment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assignmentID": assignmentID}
	err = dbService.collectionAssignments(instanceID).FindOne(ctx, filter).Decode(&assignment)
	return assignment, err
}

func (dbService *AssessmentDBService) GetAssignments(instanceID string, assessmentID string) (assignments []assessmentTypes.Assignment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assessmentID": assessmentID}
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "assignedAt", Value: -1}})

	cursor, err := dbService.collectionAssignments(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return assignments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assignments)
	return assignments, err
}

// GetOpenAssignments returns assignments that may still transition
// automatically, across all assessments of the instance.
func (dbService *AssessmentDBService) GetOpenAssignments(instanceID string) (assignments []assessmentTypes.Assignment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"status": bson.M{"$in": []string{
		assessmentTypes.ASSIGNMENT_STATUS_NOT_STARTED,
		assessmentTypes.ASSIGNMENT_STATUS_IN_PROGRESS,
	}}}

	cursor, err := dbService.collectionAssignments(instanceID).Find(ctx, filter)
	if err != nil {
		return assignments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assignments)
	return assignments, err
}

// UpdateAssignmentStatus sets the new status only when the assignment is
// currently in the expected status, so concurrent writers cannot skip or
// repeat a transition.
func (dbService *AssessmentDBService) UpdateAssignmentStatus(instanceID string, assignmentID string, expectedStatus string, newStatus string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"assignmentID": assignmentID,
		"status":       expectedStatus,
	}
	update := bson.M{"$set": bson.M{
		"status":     newStatus,
		"modifiedAt": time.Now().Unix(),
	}}
	res, err := dbService.collectionAssignments(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("assignment not found or status changed concurrently")
	}
	return nil
}

// AddAssignmentNote appends to the note trail; notes are never updated or
// removed.
func (dbService *AssessmentDBService) AddAssignmentNote(instanceID string, assignmentID string, note assessmentTypes.AssignmentNote) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	note.CreatedAt = time.Now().Unix()

	filter := bson.M{"assignmentID": assignmentID}
	update := bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"modifiedAt": time.Now().Unix()},
	}
	res, err := dbService.collectionAssignments(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("assignment not found")
	}
	return nil
}
