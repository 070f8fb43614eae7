package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoTableStore.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoTableStore persists every table in DynamoDB.
//
// Table requirements:
//   - PK: id (number; string for form_fields)
//   - physical name: prefix + table name
//
// Nested values (items, history, customFields, offers) are stored as
// DynamoDB maps and lists.
type DynamoTableStore struct {
	ddb    DynamoAPI
	prefix string
}

var _ interfaces.ITableStore = (*DynamoTableStore)(nil)

func NewDynamoTableStore(ddb DynamoAPI, tablePrefix string) *DynamoTableStore {
	return &DynamoTableStore{ddb: ddb, prefix: tablePrefix}
}

func (s *DynamoTableStore) Select(ctx context.Context, table string, filter entities.Row) ([]entities.Row, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(physicalName(s.prefix, table)),
		ConsistentRead: aws.Bool(true),
	}
	if len(filter) > 0 {
		expr, names, values, err := equalityFilter(filter)
		if err != nil {
			return nil, interfaces.NewStoreError(table, "", err)
		}
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var rows []entities.Row
	p := dynamodb.NewScanPaginator(s.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, s.wrap(table, err)
		}
		var batch []map[string]any
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, interfaces.NewStoreError(table, "", err)
		}
		for _, b := range batch {
			rows = append(rows, entities.Row(b))
		}
	}
	if rows == nil {
		rows = []entities.Row{}
	}
	return rows, nil
}

func (s *DynamoTableStore) Insert(ctx context.Context, table string, row entities.Row) error {
	av, err := attributevalue.MarshalMap(dropNil(row))
	if err != nil {
		return interfaces.NewStoreError(table, "", err)
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(physicalName(s.prefix, table)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.NewStoreError(table, CodeUniqueViolation, fmt.Errorf("duplicate id %s", idKey(row["id"])))
		}
		return s.wrap(table, err)
	}
	return nil
}

func (s *DynamoTableStore) Update(ctx context.Context, table string, id any, patch entities.Row) error {
	patch = interfaces.SanitizePatch(patch)
	if len(patch) == 0 {
		return nil
	}
	key, err := dynamoKey(id)
	if err != nil {
		return interfaces.NewStoreError(table, "", err)
	}

	cols := sortedKeys(patch)
	names := map[string]string{"#id": "id"}
	values := make(map[string]types.AttributeValue, len(cols))
	sets := make([]string, 0, len(cols))
	for i, col := range cols {
		n, v := fmt.Sprintf("#c%d", i), fmt.Sprintf(":v%d", i)
		av, err := attributevalue.Marshal(patch[col])
		if err != nil {
			return interfaces.NewStoreError(table, "", err)
		}
		names[n] = col
		values[v] = av
		sets = append(sets, n+" = "+v)
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(physicalName(s.prefix, table)),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return s.wrap(table, err)
	}
	return nil
}

func (s *DynamoTableStore) Delete(ctx context.Context, table string, id any) error {
	key, err := dynamoKey(id)
	if err != nil {
		return interfaces.NewStoreError(table, "", err)
	}
	_, err = s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(physicalName(s.prefix, table)),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return s.wrap(table, err)
	}
	return nil
}

func (s *DynamoTableStore) wrap(table string, err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return interfaces.NewStoreError(table, interfaces.CodeUndefinedTable, err)
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.NewStoreError(table, "", interfaces.ErrNoRows)
	}
	return interfaces.NewStoreError(table, "", err)
}

func dynamoKey(id any) (map[string]types.AttributeValue, error) {
	if idKey(id) == "" {
		return nil, errors.New("empty id")
	}
	av, err := attributevalue.Marshal(id)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"id": av}, nil
}

func equalityFilter(filter entities.Row) (string, map[string]string, map[string]types.AttributeValue, error) {
	cols := sortedKeys(filter)
	names := make(map[string]string, len(cols))
	values := make(map[string]types.AttributeValue, len(cols))
	parts := make([]string, 0, len(cols))
	for i, col := range cols {
		n, v := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		av, err := attributevalue.Marshal(filter[col])
		if err != nil {
			return "", nil, nil, err
		}
		names[n] = col
		values[v] = av
		parts = append(parts, n+" = "+v)
	}
	return strings.Join(parts, " AND "), names, values, nil
}

// dropNil removes nil values; DynamoDB rejects NULL-typed attributes in
// some local emulators and an absent attribute reads back the same way.
func dropNil(row entities.Row) entities.Row {
	out := make(entities.Row, len(row))
	for k, v := range row {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func sortedKeys(row entities.Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
