package user

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// user roles
const (
	USER_ROLE_COORDINATOR = "coordinator"
	USER_ROLE_RESPONDENT  = "respondent"
	USER_ROLE_REVIEWER    = "reviewer"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userID" json:"userId"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Language  string             `bson:"language,omitempty" json:"language,omitempty"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

func IsKnownUserRole(role string) bool {
	switch role {
	case USER_ROLE_COORDINATOR, USER_ROLE_RESPONDENT, USER_ROLE_REVIEWER:
		return true
	}
	return false
}

func (dbService *UserDBService) createIndexForUsersCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionUsers(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *UserDBService) CreateUser(instanceID string, user User) (User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	user.CreatedAt = time.Now().Unix()

	ret, err := dbService.collectionUsers(instanceID).InsertOne(ctx, user)
	if err != nil {
		return user, err
	}
	user.ID = ret.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (dbService *UserDBService) GetUserByID(instanceID string, userID string) (user User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionUsers(instanceID).FindOne(ctx, bson.M{"userID": userID}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByEmail(instanceID string, email string) (user User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionUsers(instanceID).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUsers(instanceID string) (users []User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionUsers(instanceID).Find(ctx, bson.M{}, opts)
	if err != nil {
		return users, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &users)
	return users, err
}

func (dbService *UserDBService) DeleteUser(instanceID string, userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionUsers(instanceID).DeleteOne(ctx, bson.M{"userID": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("no item was deleted")
	}
	return nil
}
