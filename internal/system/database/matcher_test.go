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

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMatches(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":      oid,
		"name":     "Ada Lovelace",
		"position": "Analyst",
		"age":      int32(36),
		"address":  bson.M{"city": "London"},
		"open":     true,
	}

	tests := []struct {
		name   string
		filter interface{}
		want   bool
	}{
		{name: "nil filter", filter: nil, want: true},
		{name: "empty filter", filter: bson.M{}, want: true},
		{name: "equality", filter: bson.M{"position": "Analyst"}, want: true},
		{name: "equality mismatch", filter: bson.M{"position": "Engineer"}, want: false},
		{name: "numeric across widths", filter: bson.M{"age": 36}, want: true},
		{name: "object id", filter: bson.M{"_id": oid}, want: true},
		{name: "dotted path", filter: bson.M{"address.city": "London"}, want: true},
		{name: "bson.D filter", filter: bson.D{{Key: "open", Value: true}}, want: true},
		{name: "in", filter: bson.M{"_id": bson.M{"$in": bson.A{"x", oid}}}, want: true},
		{name: "in miss", filter: bson.M{"_id": bson.M{"$in": []interface{}{"x"}}}, want: false},
		{name: "ne", filter: bson.M{"open": bson.M{"$ne": false}}, want: true},
		{name: "lt gt", filter: bson.M{"age": bson.M{"$gt": 30, "$lt": 40}}, want: true},
		{name: "regex case insensitive",
			filter: bson.M{"name": bson.M{"$regex": "love", "$options": "i"}}, want: true},
		{name: "regex case sensitive", filter: bson.M{"name": bson.M{"$regex": "love"}}, want: false},
		{name: "primitive regex", filter: bson.M{"name": primitive.Regex{Pattern: "^Ada", Options: ""}}, want: true},
		{name: "regex on missing field", filter: bson.M{"about": bson.M{"$regex": "x"}}, want: false},
		{name: "or", filter: bson.M{"$or": bson.A{bson.M{"name": "x"}, bson.M{"position": "Analyst"}}}, want: true},
		{name: "and", filter: bson.M{"$and": bson.A{bson.M{"open": true}, bson.M{"position": "x"}}}, want: false},
		{name: "missing equals nil", filter: bson.M{"about": nil}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matches(doc, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches_Errors(t *testing.T) {
	doc := bson.M{"name": "Ada"}

	tests := []struct {
		name   string
		filter interface{}
	}{
		{name: "unsupported filter type", filter: "name"},
		{name: "unsupported operator", filter: bson.M{"name": bson.M{"$exists": true}}},
		{name: "or without array", filter: bson.M{"$or": bson.M{"name": "Ada"}}},
		{name: "invalid regex", filter: bson.M{"name": bson.M{"$regex": "("}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matches(doc, tt.filter)
			assert.Error(t, err)
		})
	}
}
