package repository

import (
	"context"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	QuoteNumber    string `dynamodbav:"quote_number"`
	CustomerID     string `dynamodbav:"customer_id"`
	TotalAmount    string `dynamodbav:"total_amount"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository reads Quote entities from DynamoDB.
type QuoteDynamoRepository struct {
	ddb       dynamodb.QueryAPIClient
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamodb.QueryAPIClient, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) ListByOrganization(ctx context.Context, organizationID string) ([]entities.Quote, error) {
	return queryByOrganization(ctx, r.ddb, r.tableName, organizationID, func(raw map[string]types.AttributeValue) (entities.Quote, error) {
		it, err := unmarshalItem[quoteItem](raw)
		if err != nil {
			return entities.Quote{}, err
		}
		return fromQuoteItem(it), nil
	})
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		QuoteNumber:    it.QuoteNumber,
		CustomerID:     it.CustomerID,
		TotalAmount:    parseAmount(it.TotalAmount),
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      parseTimestamp(it.CreatedAt),
	}
}
