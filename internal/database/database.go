package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"stockboard/internal/config"
)

// DynamoDBAPI is the subset of the DynamoDB client used by this service.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

type DB struct {
	Client DynamoDBAPI
	cfg    config.DynamoDB
}

// ConnectDB builds the DynamoDB client from the default AWS credential chain
// (an IAM role on EKS) and optionally bootstraps the tables.
func ConnectDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.DynamoDB.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	})

	slog.Info("connecting to DynamoDB",
		"region", cfg.DynamoDB.Region,
		"endpoint", cfg.DynamoDB.Endpoint,
		"users_table", cfg.DynamoDB.UsersTable,
		"posts_table", cfg.DynamoDB.PostsTable,
	)

	db := NewDB(client, cfg.DynamoDB)

	if cfg.DynamoDB.CreateTables {
		if err := db.EnsureTables(ctx); err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	if err := db.HealthCheck(ctx); err != nil {
		slog.Warn("DynamoDB health check failed at startup", "error", err)
	}

	return db, nil
}

func NewDB(client DynamoDBAPI, cfg config.DynamoDB) *DB {
	return &DB{Client: client, cfg: cfg}
}

// HealthCheck verifies that both tables are reachable.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return errors.New("DynamoDB client is not initialized")
	}

	for _, table := range []string{db.cfg.UsersTable, db.cfg.PostsTable} {
		_, err := db.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(table),
		})
		if err != nil {
			return fmt.Errorf("describe table %s: %w", table, err)
		}
	}

	return nil
}

// EnsureTables creates the users table (with the username GSI) and the posts
// table when they do not exist yet.
func (db *DB) EnsureTables(ctx context.Context) error {
	for _, input := range db.tableDefinitions() {
		name := aws.ToString(input.TableName)

		_, err := db.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: input.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		slog.Info("creating DynamoDB table", "table", name)
		if _, err := db.Client.CreateTable(ctx, input); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}

	return nil
}

func (db *DB) tableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(db.cfg.UsersTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("UserId"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("Username"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("UserId"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(db.cfg.UsernameIdx),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("Username"), KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
		{
			TableName:   aws.String(db.cfg.PostsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("StockCode"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("PostId"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("StockCode"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("PostId"), KeyType: types.KeyTypeRange},
			},
		},
	}
}
