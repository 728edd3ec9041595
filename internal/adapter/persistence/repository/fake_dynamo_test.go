package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// repositories make. Each table is keyed by a single partition key.
type fakeDynamo struct {
	mu       sync.Mutex
	pk       map[string]string
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	// unprocessedOnce makes the first BatchWriteItem call return its last
	// request as unprocessed.
	unprocessedOnce bool
	batchCalls      int
	scanErr         error
}

func newFakeDynamo(pk map[string]string) *fakeDynamo {
	return &fakeDynamo{pk: pk, tables: map[string]map[string]map[string]types.AttributeValue{}}
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func keyString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value
	case *types.AttributeValueMemberN:
		return "N:" + v.Value
	}
	return "?"
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) put(table string, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	k := keyString(item[f.pk[table]])
	old := f.table(table)[k]
	f.table(table)[k] = item
	return old
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.table(table)[keyString(in.Key[f.pk[table]])]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	old := f.put(aws.ToString(in.TableName), in.Item)
	out := &dynamodb.PutItemOutput{}
	if in.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := aws.ToString(in.TableName)
	k := keyString(in.Key[f.pk[table]])
	if _, ok := f.table(table)[k]; !ok && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional check failed")}
	}
	delete(f.table(table), k)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	table := aws.ToString(in.TableName)
	keys := make([]string, 0, len(f.table(table)))
	for k := range f.table(table) {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := keyString(in.ExclusiveStartKey[f.pk[table]])
		start = sort.SearchStrings(keys, after) + 1
	}
	end := len(keys)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, f.table(table)[k])
	}
	if end < len(keys) {
		last := f.table(table)[keys[end-1]]
		out.LastEvaluatedKey = map[string]types.AttributeValue{f.pk[table]: last[f.pk[table]]}
	}
	return out, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for table, reqs := range in.RequestItems {
		if len(reqs) > batchWriteLimit {
			return nil, errors.New("too many items in batch")
		}
		if f.unprocessedOnce && len(reqs) > 0 {
			f.unprocessedOnce = false
			out.UnprocessedItems[table] = reqs[len(reqs)-1:]
			reqs = reqs[:len(reqs)-1]
		}
		for _, r := range reqs {
			switch {
			case r.PutRequest != nil:
				f.put(table, r.PutRequest.Item)
			case r.DeleteRequest != nil:
				delete(f.table(table), keyString(r.DeleteRequest.Key[f.pk[table]]))
			}
		}
	}
	return out, nil
}
