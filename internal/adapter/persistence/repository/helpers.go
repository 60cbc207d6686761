package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// organizationIndex is the GSI every source table exposes.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organization_id-index (PK: organization_id)
const organizationIndex = "organization_id-index"

// queryByOrganization reads every item of an organization from table,
// following LastEvaluatedKey until the last page.
func queryByOrganization[T any](
	ctx context.Context,
	ddb dynamodb.QueryAPIClient,
	tableName string,
	organizationID string,
	decode func(map[string]types.AttributeValue) (T, error),
) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		IndexName:              aws.String(organizationIndex),
		KeyConditionExpression: aws.String("#org = :org"),
		ExpressionAttributeNames: map[string]string{
			"#org": "organization_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": &types.AttributeValueMemberS{Value: organizationID},
		},
	})

	out := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", tableName, err)
		}
		for _, raw := range page.Items {
			v, err := decode(raw)
			if err != nil {
				return nil, fmt.Errorf("decode %s item: %w", tableName, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func unmarshalItem[T any](raw map[string]types.AttributeValue) (T, error) {
	var it T
	err := attributevalue.UnmarshalMap(raw, &it)
	return it, err
}

// parseAmount reads an amount stored as a numeric string. Blank or
// malformed amounts count as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func tableOrDefault(name, def string) string {
	if strings.TrimSpace(name) == "" {
		return def
	}
	return name
}
