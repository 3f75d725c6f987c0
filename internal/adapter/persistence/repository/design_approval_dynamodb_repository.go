package repository

import (
	"context"
	"errors"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDesignApprovalsTableName = "design_approvals"
	designApprovalsConversationIndex = "conversation_id-index"
)

type fileRefItem struct {
	Key         string `dynamodbav:"key"`
	Name        string `dynamodbav:"name"`
	ContentType string `dynamodbav:"content_type,omitempty"`
	SizeBytes   int64  `dynamodbav:"size_bytes,omitempty"`
}

type designApprovalItem struct {
	ID             string        `dynamodbav:"id"`
	ConversationID string        `dynamodbav:"conversation_id"`
	ItemID         string        `dynamodbav:"item_id"`
	ItemKind       string        `dynamodbav:"item_kind"`
	ScopeKey       string        `dynamodbav:"scope_key"`
	Files          []fileRefItem `dynamodbav:"files"`
	ArchivedFiles  []fileRefItem `dynamodbav:"archived_files,omitempty"`
	Status         string        `dynamodbav:"status"`
	SellerNotes    string        `dynamodbav:"seller_notes,omitempty"`
	CreatedAt      string        `dynamodbav:"created_at"`
	UpdatedAt      string        `dynamodbav:"updated_at"`
	ApprovedAt     string        `dynamodbav:"approved_at,omitempty"`
}

// DesignApprovalDynamoRepository persists DesignApproval entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: conversation_id-index (PK: conversation_id)
//
// Status mutations use conditional updates keyed on the expected current
// status; a lost race returns a zero-value entity, never an overwrite.

type DesignApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDesignApprovalRepository = (*DesignApprovalDynamoRepository)(nil)

func NewDesignApprovalDynamoRepository(ddb *dynamodb.Client) *DesignApprovalDynamoRepository {
	return &DesignApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESIGN_APPROVALS_TABLE", defaultDesignApprovalsTableName),
	}
}

func (r *DesignApprovalDynamoRepository) Create(ctx context.Context, a entities.DesignApproval) (entities.DesignApproval, error) {
	it := toDesignApprovalItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignApproval{}, err
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
		return entities.DesignApproval{}, err
	}
	return a, nil
}

func (r *DesignApprovalDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignApproval, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignApproval{}, nil
	}

	var it designApprovalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignApproval{}, err
	}
	return fromDesignApprovalItem(it), nil
}

func (r *DesignApprovalDynamoRepository) ListByConversationID(ctx context.Context, conversationID string) ([]entities.DesignApproval, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(designApprovalsConversationIndex),
		KeyConditionExpression: aws.String("conversation_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: conversationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DesignApproval, 0, len(out.Items))
	for _, raw := range out.Items {
		var it designApprovalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDesignApprovalItem(it))
	}
	return items, nil
}

func (r *DesignApprovalDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.DesignApprovalStatus, sellerNotes string, approvedAt *time.Time) (entities.DesignApproval, error) {
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
		if sellerNotes != "" {
			expr += ", #seller_notes = :seller_notes"
			vals[":seller_notes"] = &types.AttributeValueMemberS{Value: sellerNotes}
			names["#seller_notes"] = "seller_notes"
		}
		if approvedAt != nil {
			expr += ", #approved_at = :approved_at"
			vals[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
			names["#approved_at"] = "approved_at"
		}
		return expr, vals, names
	})
}

func (r *DesignApprovalDynamoRepository) Resubmit(ctx context.Context, id string, expected entities.DesignApprovalStatus, files []entities.FileRef) (entities.DesignApproval, error) {
	fs := toFileRefItems(files)
	filesAV, err := attributevalue.MarshalList(fs)
	if err != nil {
		return entities.DesignApproval{}, err
	}

	return r.update(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		// The outgoing file set moves into archived_files; nothing is deleted.
		expr := "SET #archived = list_append(if_not_exists(#archived, :empty), #files), " +
			"#files = :files, #status = :next, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":files":      &types.AttributeValueMemberL{Value: filesAV},
			":next":       &types.AttributeValueMemberS{Value: string(entities.DesignStatusResubmitted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#archived":   "archived_files",
			"#files":      "files",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DesignApprovalDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.DesignApprovalStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.DesignApproval, error) {
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
			return entities.DesignApproval{}, nil
		}
		return entities.DesignApproval{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DesignApproval{}, nil
	}
	var it designApprovalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DesignApproval{}, err
	}
	return fromDesignApprovalItem(it), nil
}

func toFileRefItems(files []entities.FileRef) []fileRefItem {
	out := make([]fileRefItem, 0, len(files))
	for _, f := range files {
		out = append(out, fileRefItem{Key: f.Key, Name: f.Name, ContentType: f.ContentType, SizeBytes: f.SizeBytes})
	}
	return out
}

func fromFileRefItems(items []fileRefItem) []entities.FileRef {
	out := make([]entities.FileRef, 0, len(items))
	for _, it := range items {
		out = append(out, entities.FileRef{Key: it.Key, Name: it.Name, ContentType: it.ContentType, SizeBytes: it.SizeBytes})
	}
	return out
}

func toDesignApprovalItem(a entities.DesignApproval) designApprovalItem {
	it := designApprovalItem{
		ID:             a.ID,
		ConversationID: a.ConversationID,
		ItemID:         a.ItemID,
		ItemKind:       string(a.ItemKind),
		ScopeKey:       a.ScopeKey,
		Files:          toFileRefItems(a.Files),
		ArchivedFiles:  toFileRefItems(a.ArchivedFiles),
		Status:         string(a.Status),
		SellerNotes:    a.SellerNotes,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.ApprovedAt != nil {
		it.ApprovedAt = a.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDesignApprovalItem(it designApprovalItem) entities.DesignApproval {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	a := entities.DesignApproval{
		ID:             it.ID,
		ConversationID: it.ConversationID,
		ItemID:         it.ItemID,
		ItemKind:       entities.ItemKind(it.ItemKind),
		ScopeKey:       it.ScopeKey,
		Files:          fromFileRefItems(it.Files),
		ArchivedFiles:  fromFileRefItems(it.ArchivedFiles),
		Status:         entities.DesignApprovalStatus(it.Status),
		SellerNotes:    it.SellerNotes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.ApprovedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			a.ApprovedAt = &t
		}
	}
	return a
}
