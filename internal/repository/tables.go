package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type tablesRepository struct {
	client dynamodb.ListTablesAPIClient
}

func NewTablesRepository(client dynamodb.ListTablesAPIClient) TablesRepository {
	return &tablesRepository{client: client}
}

// CountTablesDB counts the tables visible to the configured credentials.
func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	count := 0

	paginator := dynamodb.NewListTablesPaginator(r.client, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting tables: %w", err)
		}
		count += len(page.TableNames)
	}

	return count, nil
}
