package assessment

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rcsa-framework/rcsa-backend/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_ASSESSMENTS = "assessments"
	COLLECTION_NAME_RESPONSES   = "responses"
	COLLECTION_NAME_ASSIGNMENTS = "assignments"
)

type AssessmentDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewAssessmentDBService(configs db.DBConfig) (*AssessmentDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		return nil, err
	}

	adbService := &AssessmentDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := adbService.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for assessment DB", slog.String("error", err.Error()))
		}
	}

	return adbService, nil
}

func (dbService *AssessmentDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_assessmentDB"
}

func (dbService *AssessmentDBService) collectionAssessments(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_ASSESSMENTS)
}

func (dbService *AssessmentDBService) collectionResponses(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_RESPONSES)
}

func (dbService *AssessmentDBService) collectionAssignments(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_ASSIGNMENTS)
}

func (dbService *AssessmentDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *AssessmentDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for assessment DB")
	for _, instanceID := range dbService.InstanceIDs {
		if err := dbService.createIndexForAssessmentsCollection(instanceID); err != nil {
			slog.Error("Error creating index for assessments", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.createIndexForResponsesCollection(instanceID); err != nil {
			slog.Error("Error creating index for responses", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.createIndexForAssignmentsCollection(instanceID); err != nil {
			slog.Error("Error creating index for assignments", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}

		ctx, cancel := dbService.getContext()
		indexes, err := db.ListCollectionIndexes(ctx, dbService.collectionResponses(instanceID))
		cancel()
		if err != nil {
			slog.Error("Error listing indexes for responses", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
			continue
		}
		slog.Debug("Indexes for responses collection", slog.String("instanceID", instanceID), slog.Int("count", len(indexes)))
	}
	return nil
}
