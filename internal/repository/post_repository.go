package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"stockboard/internal/database"
	"stockboard/internal/models"
	"stockboard/internal/util"
)

type PostRepositoryImpl struct {
	client database.DynamoDBAPI
	table  string
}

type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"authorId"`
	StockCode string `json:"stockCode"`
}

func NewPostRepository(client database.DynamoDBAPI, table string) *PostRepositoryImpl {
	return &PostRepositoryImpl{client: client, table: table}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return fmt.Errorf("error encoding post: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, stockCode, postID string) (*models.Post, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"StockCode": &types.AttributeValueMemberS{Value: stockCode},
			"PostId":    &types.AttributeValueMemberS{Value: postID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("post %s/%s: %w", stockCode, postID, util.ErrPostNotFound)
	}

	var post models.Post
	if err := attributevalue.UnmarshalMap(out.Item, &post); err != nil {
		return nil, fmt.Errorf("error decoding post: %w", err)
	}

	return &post, nil
}

// ListByStockCode returns every post of one board partition.
func (r *PostRepositoryImpl) ListByStockCode(ctx context.Context, stockCode string) ([]*models.Post, error) {
	keyCond := expression.Key("StockCode").Equal(expression.Value(stockCode))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("error building key condition: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	posts := make([]*models.Post, 0)
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing posts: %w", err)
		}

		var batch []*models.Post
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("error decoding posts: %w", err)
		}
		posts = append(posts, batch...)
	}

	return posts, nil
}
