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
)

const defaultPreferencesTableName = "conversation_preferences"

type preferenceItem struct {
	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	ConversationID string `dynamodbav:"conversation_id"`
	PanelCollapsed bool   `dynamodbav:"panel_collapsed"`
	IntroDismissed bool   `dynamodbav:"intro_dismissed"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PreferenceDynamoRepository persists per-user conversation UI preferences.
//
// Table requirements:
//   - PK: id = "<user_id>#<conversation_id>"
//
// Presentation-only state; last write wins, no conditions.

type PreferenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversationPreferenceRepository = (*PreferenceDynamoRepository)(nil)

func NewPreferenceDynamoRepository(ddb *dynamodb.Client) *PreferenceDynamoRepository {
	return &PreferenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PREFERENCES_TABLE", defaultPreferencesTableName),
	}
}

func (r *PreferenceDynamoRepository) Put(ctx context.Context, p entities.ConversationPreference) (entities.ConversationPreference, error) {
	it := preferenceItem{
		ID:             p.Key(),
		UserID:         p.UserID,
		ConversationID: p.ConversationID,
		PanelCollapsed: p.PanelCollapsed,
		IntroDismissed: p.IntroDismissed,
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConversationPreference{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ConversationPreference{}, err
	}
	return p, nil
}

func (r *PreferenceDynamoRepository) Get(ctx context.Context, userID, conversationID string) (entities.ConversationPreference, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.PreferenceKey(userID, conversationID)},
		},
	})
	if err != nil {
		return entities.ConversationPreference{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConversationPreference{}, nil
	}

	var it preferenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversationPreference{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ConversationPreference{
		UserID:         it.UserID,
		ConversationID: it.ConversationID,
		PanelCollapsed: it.PanelCollapsed,
		IntroDismissed: it.IntroDismissed,
		UpdatedAt:      updatedAt,
	}, nil
}
