package repository

import (
	"context"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChatSessionsTableName = "chat_sessions"

type chatMessageItem struct {
	Role      string `dynamodbav:"role"`
	Content   string `dynamodbav:"content"`
	Timestamp string `dynamodbav:"timestamp"`
}

type chatSessionItem struct {
	SessionID string            `dynamodbav:"session_id"`
	UserID    string            `dynamodbav:"user_id"`
	Messages  []chatMessageItem `dynamodbav:"messages"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// ChatSessionDynamoRepository persists conversation history in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// Append uses list_append with if_not_exists so concurrent appends to the
// same session never overwrite each other and the document is created on
// first use.

type ChatSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChatSessionRepository = (*ChatSessionDynamoRepository)(nil)

func NewChatSessionDynamoRepository(ddb *dynamodb.Client) *ChatSessionDynamoRepository {
	return &ChatSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHAT_SESSIONS_TABLE", defaultChatSessionsTableName),
	}
}

func (r *ChatSessionDynamoRepository) GetRecent(ctx context.Context, sessionID string, limit int) ([]entities.ChatMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it chatSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	messages := make([]entities.ChatMessage, 0, len(it.Messages))
	for _, m := range it.Messages {
		messages = append(messages, entities.ChatMessage{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: parseTime(m.Timestamp),
		})
	}
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (r *ChatSessionDynamoRepository) Append(ctx context.Context, sessionID, userID string, messages ...entities.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	items := make([]chatMessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, chatMessageItem{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: formatTime(m.Timestamp),
		})
	}
	newMessages, err := attributevalue.MarshalList(items)
	if err != nil {
		return err
	}

	now := formatTime(time.Now())
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		UpdateExpression: aws.String(
			"SET #messages = list_append(if_not_exists(#messages, :empty), :new), " +
				"#user_id = :uid, " +
				"#created_at = if_not_exists(#created_at, :now), " +
				"#updated_at = :now",
		),
		ExpressionAttributeNames: map[string]string{
			"#messages":   "messages",
			"#user_id":    "user_id",
			"#created_at": "created_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":new":   &types.AttributeValueMemberL{Value: newMessages},
			":uid":   &types.AttributeValueMemberS{Value: userID},
			":now":   &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func (r *ChatSessionDynamoRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}
