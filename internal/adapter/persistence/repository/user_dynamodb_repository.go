package repository

import (
	"context"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	Username     string `dynamodbav:"username"`
	Name         string `dynamodbav:"name"`
	Role         string `dynamodbav:"role"`
	PasswordHash string `dynamodbav:"password_hash"`
}

// UserDynamoRepository stores login users.
//
// Table requirements:
//   - PK: username (string)
type UserDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb dynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableOrEnv(tableName, "USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(userItem{
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
	})
	if err != nil {
		return entities.User{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.User{}, err
	}
	u.ID = u.Username
	return u, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.Username,
		Username:     it.Username,
		Name:         it.Name,
		Role:         it.Role,
		PasswordHash: it.PasswordHash,
	}
}
