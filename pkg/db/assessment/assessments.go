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

func (dbService *AssessmentDBService) createIndexForAssessmentsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionAssessments(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assessmentID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *AssessmentDBService) CreateAssessment(instanceID string, assessment assessmentTypes.AssessmentInstance) (assessmentTypes.AssessmentInstance, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	assessment.CreatedAt = now
	assessment.ModifiedAt = now

	ret, err := dbService.collectionAssessments(instanceID).InsertOne(ctx, assessment)
	if err != nil {
		return assessment, err
	}
	assessment.ID = ret.InsertedID.(primitive.ObjectID)
	return assessment, nil
}

func (dbService *AssessmentDBService) GetAssessmentByID(instanceID string, assessmentID string) (assessment assessmentTypes.AssessmentInstance, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assessmentID": assessmentID}
	err = dbService.collectionAssessments(instanceID).FindOne(ctx, filter).Decode(&assessment)
	return assessment, err
}

func (dbService *AssessmentDBService) GetAssessments(instanceID string) (assessments []assessmentTypes.AssessmentInstance, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionAssessments(instanceID).Find(ctx, bson.M{}, opts)
	if err != nil {
		return assessments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assessments)
	return assessments, err
}

// GetAssessmentsPaginated returns assessments by query, newest first.
func (dbService *AssessmentDBService) GetAssessmentsPaginated(instanceID string, filter bson.M, sort bson.M, page int64, limit int64) (assessments []assessmentTypes.AssessmentInstance, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	totalCount, err := dbService.GetAssessmentsCount(instanceID, filter)
	if err != nil {
		return assessments, nil, err
	}

	paginationInfo = prepPaginationInfos(
		totalCount,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	if len(sort) == 0 {
		sort = bson.M{"createdAt": -1}
	}
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(paginationInfo.PageSize)
	cursor, err := dbService.collectionAssessments(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return assessments, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assessments)
	if err != nil {
		return assessments, nil, err
	}
	return assessments, paginationInfo, nil
}

func (dbService *AssessmentDBService) GetAssessmentsCount(instanceID string, filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionAssessments(instanceID).CountDocuments(ctx, filter)
}

func (dbService *AssessmentDBService) UpdateDepartmentInfo(instanceID string, assessmentID string, department assessmentTypes.DepartmentInfo) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assessmentID": assessmentID}
	update := bson.M{"$set": bson.M{
		"department": department,
		"modifiedAt": time.Now().Unix(),
	}}
	res, err := dbService.collectionAssessments(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("assessment not found")
	}
	return nil
}

func (dbService *AssessmentDBService) UpdateAssessmentLanguage(instanceID string, assessmentID string, language string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assessmentID": assessmentID}
	update := bson.M{"$set": bson.M{
		"language":   language,
		"modifiedAt": time.Now().Unix(),
	}}
	res, err := dbService.collectionAssessments(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("assessment not found")
	}
	return nil
}

func (dbService *AssessmentDBService) DeleteAssessment(instanceID string, assessmentID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionAssessments(instanceID).DeleteOne(ctx, bson.M{"assessmentID": assessmentID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("no item was deleted")
	}
	return nil
}
