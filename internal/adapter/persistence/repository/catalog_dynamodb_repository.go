package repository

import (
	"context"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "prices"

type catalogItem struct {
	PanelID string `dynamodbav:"panel_id"`
	Name    string `dynamodbav:"name"`
	Normal  int64  `dynamodbav:"normal"`
	Medium  int64  `dynamodbav:"medium"`
	Premium int64  `dynamodbav:"premium"`
}

// CatalogDynamoRepository persists the price list in DynamoDB.
//
// Table requirements:
//   - PK: panel_id (string)
type CatalogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

// NewCatalogDynamoRepository uses tableName, or PRICES_TABLE when blank.
func NewCatalogDynamoRepository(ddb dynamoAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrEnv(tableName, "PRICES_TABLE", defaultPricesTableName),
	}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) (entities.Catalog, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName, nil, nil)
	if err != nil {
		return nil, err
	}
	var rows []catalogItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &rows); err != nil {
		return nil, err
	}

	catalog := make(entities.Catalog, len(rows))
	for _, it := range rows {
		if it.PanelID == "" {
			continue
		}
		catalog[it.PanelID] = fromCatalogItem(it)
	}
	return catalog, nil
}

// ReplaceAll writes every entry, then deletes stored keys that are not in
// catalog. A failure part way leaves a superset of the new catalog.
func (r *CatalogDynamoRepository) ReplaceAll(ctx context.Context, catalog entities.Catalog) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName, aws.String("#pk"), map[string]string{"#pk": "panel_id"})
	if err != nil {
		return err
	}

	reqs := make([]types.WriteRequest, 0, len(catalog)+len(existing))
	for _, e := range catalog {
		av, err := attributevalue.MarshalMap(toCatalogItem(e))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, key := range existing {
		var k catalogItem
		if err := attributevalue.UnmarshalMap(key, &k); err != nil {
			return err
		}
		if _, keep := catalog[k.PanelID]; keep {
			continue
		}
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{
				"panel_id": &types.AttributeValueMemberS{Value: k.PanelID},
			},
		}})
	}
	return batchWrite(ctx, r.ddb, r.tableName, reqs)
}

func toCatalogItem(e entities.CatalogEntry) catalogItem {
	return catalogItem{
		PanelID: e.ID,
		Name:    e.Name,
		Normal:  e.NormalPrice,
		Medium:  e.MediumPrice,
		Premium: e.PremiumPrice,
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:           it.PanelID,
		Name:         it.Name,
		NormalPrice:  it.Normal,
		MediumPrice:  it.Medium,
		PremiumPrice: it.Premium,
	}
}
