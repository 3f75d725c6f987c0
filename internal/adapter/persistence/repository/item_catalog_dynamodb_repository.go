package repository

import (
	"context"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultItemsTableName = "items"

type catalogItem struct {
	ID                     string `dynamodbav:"id"`
	Kind                   string `dynamodbav:"kind"`
	RequiresDesignApproval bool   `dynamodbav:"requires_design_approval"`
	RequiresQuote          bool   `dynamodbav:"requires_quote"`
	ListPrice              string `dynamodbav:"list_price"`
}

// ItemCatalogDynamoRepository reads the workflow-relevant slice of listings.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog service owns writes; this repository is read-only. A record
// whose kind doesn't match the requested kind resolves to not-found.

type ItemCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemCatalog = (*ItemCatalogDynamoRepository)(nil)

func NewItemCatalogDynamoRepository(ddb *dynamodb.Client) *ItemCatalogDynamoRepository {
	return &ItemCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemCatalogDynamoRepository) GetItem(ctx context.Context, itemID string, kind entities.ItemKind) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	if entities.ItemKind(it.Kind) != kind {
		return entities.Item{}, nil
	}

	price, _ := decimal.NewFromString(it.ListPrice)
	return entities.Item{
		ID:                     it.ID,
		Kind:                   kind,
		RequiresDesignApproval: it.RequiresDesignApproval,
		RequiresQuote:          it.RequiresQuote,
		ListPrice:              price,
	}, nil
}
