package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps BatchWriteItem at 25 requests.
const batchWriteLimit = 25

const maxUnprocessedRetries = 5

var errUnprocessedItems = errors.New("dynamodb left items unprocessed")

func scanAll(ctx context.Context, ddb dynamoAPI, table string, projection *string, names map[string]string) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
		}
		if projection != nil {
			in.ProjectionExpression = projection
			in.ExpressionAttributeNames = names
		}
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

// batchWrite sends reqs in chunks, resubmitting unprocessed requests a bounded
// number of times.
func batchWrite(ctx context.Context, ddb dynamoAPI, table string, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(reqs) {
			end = len(reqs)
		}
		pending := map[string][]types.WriteRequest{table: reqs[start:end]}
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return fmt.Errorf("%w: %d requests", errUnprocessedItems, len(pending[table]))
			}
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
