package repository

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stockboard/internal/database"
	"stockboard/internal/models"
	"stockboard/internal/util"
)

type userRepository struct {
	client        database.DynamoDBAPI
	table         string
	usernameIndex string
	now           func() time.Time
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// passwordDigest fits passwords of any length into bcrypt's 72-byte input.
// The digest is base64 encoded so it never contains a NUL byte.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func NewUserRepository(client database.DynamoDBAPI, table, usernameIndex string) UserRepository {
	return &userRepository{
		client:        client,
		table:         table,
		usernameIndex: usernameIndex,
		now:           time.Now,
	}
}

// CreateUser hashes the password, assigns a new UserId and writes the record.
// The write is conditional on the UserId being unused; Username uniqueness is
// the caller's read-before-write check.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = r.now().UTC()

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}

	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("UserId"))).
		Build()
	if err != nil {
		return fmt.Errorf("error building condition: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.table),
		Item:                      item,
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("user with ID %s: %w", userID, util.ErrUserNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("error decoding user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername queries the username index and returns the first match.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	keyCond := expression.Key("Username").Equal(expression.Value(username))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("error building key condition: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.usernameIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("user %s: %w", username, util.ErrUserNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &user); err != nil {
		return nil, fmt.Errorf("error decoding user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordDigest(password))
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return user, nil
}
