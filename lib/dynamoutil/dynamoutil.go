// Package dynamoutil converts between DynamoDB's type-tagged attribute values
// and plain Go values: stream-event images (events.DynamoDBAttributeValue) to
// native maps, stream images to SDK v2 attribute values, and struct
// marshalling via the attributevalue feature package.
package dynamoutil

import (
	"sort"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

// AttributeToValue converts a type-tagged stream attribute into a plain Go
// value: strings, numbers (int64 when integral, else float64, else the raw
// numeric string), booleans, byte slices, nil for NULL, and nested slices and
// maps for lists and maps.
func AttributeToValue(av events.DynamoDBAttributeValue) interface{} {
	switch av.DataType() {
	case events.DataTypeString:
		return av.String()
	case events.DataTypeNumber:
		return numberToValue(av.Number())
	case events.DataTypeBoolean:
		return av.Boolean()
	case events.DataTypeBinary:
		return av.Binary()
	case events.DataTypeNull:
		return nil
	case events.DataTypeList:
		list := make([]interface{}, 0, len(av.List()))
		for _, item := range av.List() {
			list = append(list, AttributeToValue(item))
		}
		return list
	case events.DataTypeMap:
		return ImageToMap(av.Map())
	case events.DataTypeStringSet:
		return av.StringSet()
	case events.DataTypeNumberSet:
		set := make([]interface{}, 0, len(av.NumberSet()))
		for _, n := range av.NumberSet() {
			set = append(set, numberToValue(n))
		}
		return set
	case events.DataTypeBinarySet:
		return av.BinarySet()
	default:
		return nil
	}
}

// ImageToMap converts a stream image (e.g. NewImage/OldImage/Keys of a
// DynamoDB stream record) into a plain map.
func ImageToMap(image map[string]events.DynamoDBAttributeValue) map[string]interface{} {
	result := make(map[string]interface{}, len(image))
	for key, av := range image {
		result[key] = AttributeToValue(av)
	}
	return result
}

// AttributeToSDK converts a type-tagged stream attribute into its SDK v2
// equivalent, so stream images can be written back through the DynamoDB
// client.
func AttributeToSDK(av events.DynamoDBAttributeValue) types.AttributeValue {
	switch av.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: av.String()}
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: av.Number()}
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: av.Boolean()}
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: av.Binary()}
	case events.DataTypeNull:
		return &types.AttributeValueMemberNULL{Value: true}
	case events.DataTypeList:
		list := make([]types.AttributeValue, 0, len(av.List()))
		for _, item := range av.List() {
			list = append(list, AttributeToSDK(item))
		}
		return &types.AttributeValueMemberL{Value: list}
	case events.DataTypeMap:
		return &types.AttributeValueMemberM{Value: ImageToSDK(av.Map())}
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: av.StringSet()}
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: av.NumberSet()}
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: av.BinarySet()}
	default:
		return &types.AttributeValueMemberNULL{Value: true}
	}
}

// ImageToSDK converts a stream image into an SDK v2 item.
func ImageToSDK(image map[string]events.DynamoDBAttributeValue) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue, len(image))
	for key, av := range image {
		item[key] = AttributeToSDK(av)
	}
	return item
}

// MarshalItem marshals a struct or map into a DynamoDB item.
func MarshalItem(v interface{}) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal DynamoDB item")
	}
	return item, nil
}

// UnmarshalItem unmarshals a DynamoDB item into the given destination.
func UnmarshalItem(item map[string]types.AttributeValue, out interface{}) error {
	if err := attributevalue.UnmarshalMap(item, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal DynamoDB item")
	}
	return nil
}

// KeyValueStrings renders a stream image as sorted "key:value" strings,
// which is handy for building compound identifiers from record keys.
func KeyValueStrings(image map[string]events.DynamoDBAttributeValue) []string {
	keys := make([]string, 0, len(image))
	for key := range image {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+":"+valueToString(image[key]))
	}
	return pairs
}

func numberToValue(n string) interface{} {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f
	}
	return n
}

func valueToString(av events.DynamoDBAttributeValue) string {
	switch av.DataType() {
	case events.DataTypeString:
		return av.String()
	case events.DataTypeNumber:
		return av.Number()
	case events.DataTypeBoolean:
		return strconv.FormatBool(av.Boolean())
	case events.DataTypeNull:
		return ""
	default:
		return ""
	}
}
