package repository

import (
	"context"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPurchasesTableName  = "purchases"
	purchasesConversationIndex = "conversation_id-index"
)

type purchaseItem struct {
	ID                 string                 `dynamodbav:"id"`
	ConversationID     string                 `dynamodbav:"conversation_id"`
	ItemID             string                 `dynamodbav:"item_id"`
	ItemKind           string                 `dynamodbav:"item_kind"`
	ScopeKey           string                 `dynamodbav:"scope_key"`
	QuoteID            string                 `dynamodbav:"quote_id,omitempty"`
	ChargedPrice       string                 `dynamodbav:"charged_price"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PurchaseDynamoRepository persists Purchase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
//   - GSI: conversation_id-index (PK: conversation_id)

type PurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb *dynamodb.Client) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *PurchaseDynamoRepository) Create(ctx context.Context, p entities.Purchase) (entities.Purchase, error) {
	it := toPurchaseItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Purchase{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Purchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.Purchase{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) ListByConversationID(ctx context.Context, conversationID string) ([]entities.Purchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesConversationIndex),
		KeyConditionExpression: aws.String("conversation_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: conversationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Purchase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPurchaseItem(it))
	}
	return items, nil
}

func toPurchaseItem(p entities.Purchase) purchaseItem {
	return purchaseItem{
		ID:                 p.ID,
		ConversationID:     p.ConversationID,
		ItemID:             p.ItemID,
		ItemKind:           string(p.ItemKind),
		ScopeKey:           p.ScopeKey,
		QuoteID:            p.QuoteID,
		ChargedPrice:       p.ChargedPrice.String(),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPurchaseItem(it purchaseItem) entities.Purchase {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	price, _ := decimal.NewFromString(it.ChargedPrice)
	return entities.Purchase{
		ID:                 it.ID,
		ConversationID:     it.ConversationID,
		ItemID:             it.ItemID,
		ItemKind:           entities.ItemKind(it.ItemKind),
		ScopeKey:           it.ScopeKey,
		QuoteID:            it.QuoteID,
		ChargedPrice:       price,
		Date:               dt,
		Status:             entities.PurchaseStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
