package repository

import (
	"context"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id"`
	InvoiceNumber  string `dynamodbav:"invoice_number"`
	CustomerID     string `dynamodbav:"customer_id"`
	QuoteID        string `dynamodbav:"quote_id,omitempty"`
	TotalAmount    string `dynamodbav:"total_amount"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository reads Invoice entities from DynamoDB.
type InvoiceDynamoRepository struct {
	ddb       dynamodb.QueryAPIClient
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb dynamodb.QueryAPIClient, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) ListByOrganization(ctx context.Context, organizationID string) ([]entities.Invoice, error) {
	return queryByOrganization(ctx, r.ddb, r.tableName, organizationID, func(raw map[string]types.AttributeValue) (entities.Invoice, error) {
		it, err := unmarshalItem[invoiceItem](raw)
		if err != nil {
			return entities.Invoice{}, err
		}
		return fromInvoiceItem(it), nil
	})
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		InvoiceNumber:  it.InvoiceNumber,
		CustomerID:     it.CustomerID,
		QuoteID:        it.QuoteID,
		TotalAmount:    parseAmount(it.TotalAmount),
		Status:         entities.InvoiceStatus(it.Status),
		CreatedAt:      parseTimestamp(it.CreatedAt),
	}
}
