package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
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
	defaultQuotesTableName  = "quotes"
	quotesConversationIndex = "conversation_id-index"
)

type quoteItem struct {
	ID                     string `dynamodbav:"id"`
	ConversationID         string `dynamodbav:"conversation_id"`
	ItemID                 string `dynamodbav:"item_id"`
	ItemKind               string `dynamodbav:"item_kind"`
	ScopeKey               string `dynamodbav:"scope_key"`
	QuotedPrice            string `dynamodbav:"quoted_price"`
	Quantity               int    `dynamodbav:"quantity"`
	Status                 string `dynamodbav:"status"`
	ExpiresAt              string `dynamodbav:"expires_at,omitempty"`
	Notes                  string `dynamodbav:"notes,omitempty"`
	BuyerReason            string `dynamodbav:"buyer_reason,omitempty"`
	LinkedDesignApprovalID string `dynamodbav:"linked_design_approval_id,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: conversation_id-index (PK: conversation_id)
//
// Prices are stored as exact decimal strings. The expired status is never
// written; it is derived at read time from expires_at.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByConversationID(ctx context.Context, conversationID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesConversationIndex),
		KeyConditionExpression: aws.String("conversation_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: conversationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) UpdateSent(ctx context.Context, id string, price decimal.Decimal, quantity int, expiresAt *time.Time, notes, linkedDesignApprovalID string) (entities.Quote, error) {
	return r.update(ctx, id, entities.QuoteStatusSent, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#quoted_price = :price", "#quantity = :quantity", "#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberS{Value: price.String()},
			":quantity":   &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quoted_price": "quoted_price",
			"#quantity":     "quantity",
			"#updated_at":   "updated_at",
			"#expires_at":   "expires_at",
		}
		if notes != "" {
			sets = append(sets, "#notes = :notes")
			vals[":notes"] = &types.AttributeValueMemberS{Value: notes}
			names["#notes"] = "notes"
		}
		if linkedDesignApprovalID != "" {
			sets = append(sets, "#linked = :linked")
			vals[":linked"] = &types.AttributeValueMemberS{Value: linkedDesignApprovalID}
			names["#linked"] = "linked_design_approval_id"
		}

		expr := "SET " + strings.Join(sets, ", ")
		if expiresAt != nil {
			expr += ", #expires_at = :expires_at"
			vals[":expires_at"] = &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)}
		} else {
			expr += " REMOVE #expires_at"
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.QuoteStatus, buyerReason string) (entities.Quote, error) {
	return r.update(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :next, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if buyerReason != "" {
			expr += ", #buyer_reason = :buyer_reason"
			vals[":buyer_reason"] = &types.AttributeValueMemberS{Value: buyerReason}
			names["#buyer_reason"] = "buyer_reason"
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.QuoteStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                     q.ID,
		ConversationID:         q.ConversationID,
		ItemID:                 q.ItemID,
		ItemKind:               string(q.ItemKind),
		ScopeKey:               q.ScopeKey,
		QuotedPrice:            q.QuotedPrice.String(),
		Quantity:               q.Quantity,
		Status:                 string(q.Status),
		Notes:                  q.Notes,
		BuyerReason:            q.BuyerReason,
		LinkedDesignApprovalID: q.LinkedDesignApprovalID,
		CreatedAt:              q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.ExpiresAt != nil {
		it.ExpiresAt = q.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := decimal.NewFromString(it.QuotedPrice)
	q := entities.Quote{
		ID:                     it.ID,
		ConversationID:         it.ConversationID,
		ItemID:                 it.ItemID,
		ItemKind:               entities.ItemKind(it.ItemKind),
		ScopeKey:               it.ScopeKey,
		QuotedPrice:            price,
		Quantity:               it.Quantity,
		Status:                 entities.QuoteStatus(it.Status),
		Notes:                  it.Notes,
		BuyerReason:            it.BuyerReason,
		LinkedDesignApprovalID: it.LinkedDesignApprovalID,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
	if it.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			q.ExpiresAt = &t
		}
	}
	return q
}
