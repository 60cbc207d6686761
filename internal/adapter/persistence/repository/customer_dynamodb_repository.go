package repository

import (
	"context"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
}

// CustomerDynamoRepository reads Customer entities from DynamoDB.
type CustomerDynamoRepository struct {
	ddb       dynamodb.QueryAPIClient
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb dynamodb.QueryAPIClient, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) ListByOrganization(ctx context.Context, organizationID string) ([]entities.Customer, error) {
	return queryByOrganization(ctx, r.ddb, r.tableName, organizationID, func(raw map[string]types.AttributeValue) (entities.Customer, error) {
		it, err := unmarshalItem[customerItem](raw)
		if err != nil {
			return entities.Customer{}, err
		}
		return entities.Customer{
			ID:             it.ID,
			OrganizationID: it.OrganizationID,
			Name:           it.Name,
			Email:          it.Email,
		}, nil
	})
}
