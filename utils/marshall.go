// Package utils provide marshalling helpers shared by configuration loaders.
package utils

import (
	"fmt"
	"reflect"

	"gopkg.in/mgo.v2/bson"
)

// ErrUnknownType is returned by TypeBasedUnmarshallBSON when the document's
// "type" field matches no entry in the mapping.
var ErrUnknownType = fmt.Errorf("unknown type")

// TypeBasedUnmarshallBSON decodes raw into the concrete type selected by the
// document's "type" field. It returns a pointer to a freshly allocated value,
// so the result holds no references into raw.
func TypeBasedUnmarshallBSON(
	raw bson.Raw, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var head struct {
		Type string `bson:"type"`
	}
	if err := raw.Unmarshal(&head); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[head.Type]
	if !knownType {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, head.Type)
	}
	value := create()
	if err := raw.Unmarshal(value); err != nil {
		return nil, err
	}
	if reflect.ValueOf(value).Kind() != reflect.Ptr {
		return nil, fmt.Errorf("invalid mapping target type")
	}
	return value, nil
}
