package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	defaultInvoicesTableName  = "invoices"
)

// DocumentDynamoRepository persists estimates and invoices in DynamoDB, one
// table per kind.
//
// Table requirements:
//   - PK: id (number, creation time in unix millis)
type DocumentDynamoRepository struct {
	ddb    dynamoAPI
	tables map[entities.DocumentKind]string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

// NewDocumentDynamoRepository uses the given table names, falling back to
// ESTIMATES_TABLE and INVOICES_TABLE when blank.
func NewDocumentDynamoRepository(ddb dynamoAPI, estimatesTable, invoicesTable string) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb: ddb,
		tables: map[entities.DocumentKind]string{
			entities.DocumentKindEstimate: tableOrEnv(estimatesTable, "ESTIMATES_TABLE", defaultEstimatesTableName),
			entities.DocumentKindInvoice:  tableOrEnv(invoicesTable, "INVOICES_TABLE", defaultInvoicesTableName),
		},
	}
}

func (r *DocumentDynamoRepository) table(kind entities.DocumentKind) (string, error) {
	t, ok := r.tables[kind]
	if !ok {
		return "", fmt.Errorf("no table for document kind %q", kind)
	}
	return t, nil
}

// Save overwrites the whole item. ReturnValues ALL_OLD tells an update apart
// from an insert in a single call.
func (r *DocumentDynamoRepository) Save(ctx context.Context, doc entities.Document) (bool, error) {
	table, err := r.table(doc.Kind)
	if err != nil {
		return false, err
	}
	av, err := attributevalue.MarshalMap(toDocumentRecord(doc))
	if err != nil {
		return false, err
	}
	out, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(table),
		Item:         av,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, kind entities.DocumentKind, id int64) (entities.Document, error) {
	table, err := r.table(kind)
	if err != nil {
		return entities.Document{}, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            documentKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var rec documentRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Document{}, err
	}
	return normalizeDocument(kind, rec), nil
}

func (r *DocumentDynamoRepository) List(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	raw, err := scanAll(ctx, r.ddb, table, nil, nil)
	if err != nil {
		return nil, err
	}
	var recs []documentRecord
	if err := attributevalue.UnmarshalListOfMaps(raw, &recs); err != nil {
		return nil, err
	}
	docs := make([]entities.Document, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, normalizeDocument(kind, rec))
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, kind entities.DocumentKind, id int64) (bool, error) {
	table, err := r.table(kind)
	if err != nil {
		return false, err
	}
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 documentKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func documentKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}
