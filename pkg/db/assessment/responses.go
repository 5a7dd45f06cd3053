package assessment

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForResponsesCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionResponses(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "assessmentID", Value: 1},
				{Key: "questionID", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "recordedAt", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// SaveResponse upserts the response for the given question, last write
// wins. The previous value is not retained.
func (dbService *AssessmentDBService) SaveResponse(instanceID string, response assessmentTypes.Response) (assessmentTypes.Response, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	response.RecordedAt = time.Now().Unix()

	filter := bson.M{
		"assessmentID": response.AssessmentID,
		"questionID":   response.QuestionID,
	}
	update := bson.M{"$set": bson.M{
		"value":      response.Value,
		"recordedAt": response.RecordedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := dbService.collectionResponses(instanceID).UpdateOne(ctx, filter, update, opts)
	return response, err
}

func (dbService *AssessmentDBService) GetResponseByQuestionID(instanceID string, assessmentID string, questionID string) (response assessmentTypes.Response, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"assessmentID": assessmentID,
		"questionID":   questionID,
	}
	err = dbService.collectionResponses(instanceID).FindOne(ctx, filter).Decode(&response)
	return response, err
}

func (dbService *AssessmentDBService) GetResponses(instanceID string, assessmentID string) (responses []assessmentTypes.Response, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"assessmentID": assessmentID}
	opts := options.Find().SetSort(bson.M{"questionID": 1})

	cursor, err := dbService.collectionResponses(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return responses, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	return responses, err
}

// GetResponseMap returns the current responses keyed by question ID, the
// shape the engine consumes.
func (dbService *AssessmentDBService) GetResponseMap(instanceID string, assessmentID string) (map[string]assessmentTypes.Response, error) {
	responses, err := dbService.GetResponses(instanceID, assessmentID)
	if err != nil {
		return nil, err
	}
	responseMap := make(map[string]assessmentTypes.Response, len(responses))
	for _, r := range responses {
		responseMap[r.QuestionID] = r
	}
	return responseMap, nil
}

func (dbService *AssessmentDBService) DeleteResponse(instanceID string, assessmentID string, questionID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"assessmentID": assessmentID,
		"questionID":   questionID,
	}
	res, err := dbService.collectionResponses(instanceID).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("no item was deleted")
	}
	return nil
}

func (dbService *AssessmentDBService) GetResponsesCount(instanceID string, assessmentID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionResponses(instanceID).CountDocuments(ctx, bson.M{"assessmentID": assessmentID})
}
