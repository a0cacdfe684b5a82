/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is an opaque record identity. It is stored as the native store value
// (usually an ObjectID) and always leaves the service as a string.
type Identity struct {
	value interface{}
}

// NewIdentity wraps a store-native identity value.
func NewIdentity(value interface{}) Identity {
	if id, ok := value.(Identity); ok {
		return id
	}
	return Identity{value: value}
}

// ParseIdentity interprets an identity received from a caller. A 24-digit hex string is
// an ObjectID, anything else is kept as a string identity.
func ParseIdentity(s string) Identity {
	if oid, err := primitive.ObjectIDFromHex(s); err == nil {
		return Identity{value: oid}
	}
	return Identity{value: s}
}

// Value returns the store-native value, for use in filters.
func (i Identity) Value() interface{} {
	return i.value
}

func (i Identity) IsZero() bool {
	return i.value == nil
}

func (i Identity) String() string {
	switch v := i.value.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (i Identity) MarshalJSON() ([]byte, error) {
	if i.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(i.String())
}

func (i Identity) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if i.value == nil {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(i.value)
}

func (i *Identity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		i.value = nil
		return nil
	}
	var v interface{}
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&v); err != nil {
		return fmt.Errorf("decode identity: %w", err)
	}
	i.value = v
	return nil
}

// IdentityValues extracts the store-native values of ids.
func IdentityValues(ids []Identity) []interface{} {
	values := make([]interface{}, len(ids))
	for idx, id := range ids {
		values[idx] = id.value
	}
	return values
}
