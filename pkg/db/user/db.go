package user

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rcsa-framework/rcsa-backend/pkg/db"
)

const (
	COLLECTION_NAME_USERS = "users"
)

type UserDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewUserDBService(configs db.DBConfig) (*UserDBService, error) {
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

	udbService := &UserDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := udbService.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for user DB", slog.String("error", err.Error()))
		}
	}

	return udbService, nil
}

func (dbService *UserDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_userDB"
}

func (dbService *UserDBService) collectionUsers(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_USERS)
}

func (dbService *UserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *UserDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for user DB")
	for _, instanceID := range dbService.InstanceIDs {
		if err := dbService.createIndexForUsersCollection(instanceID); err != nil {
			slog.Error("Error creating index for users", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
	}
	return nil
}
