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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIdentity(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed := ParseIdentity(oid.Hex())
	assert.Equal(t, oid, parsed.Value())
	assert.Equal(t, oid.Hex(), parsed.String())

	plain := ParseIdentity("ada-lovelace")
	assert.Equal(t, "ada-lovelace", plain.Value())
}

func TestIdentity_JSON(t *testing.T) {
	oid := primitive.NewObjectID()

	out, err := json.Marshal(Profile{ID: NewIdentity(oid)})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"_id":"`+oid.Hex()+`"`)

	out, err = json.Marshal(NewIdentity(int32(7)))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(out))

	out, err = json.Marshal(Identity{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestIdentity_BSONKeepsNativeValue(t *testing.T) {
	oid := primitive.NewObjectID()

	raw, err := bson.Marshal(Experience{Profile: NewIdentity(oid)})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, oid, doc["profile"])
	_, hasID := doc["_id"]
	assert.False(t, hasID)

	var decoded Experience
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, oid, decoded.Profile.Value())
	assert.True(t, decoded.ID.IsZero())
}

func TestEducation_ReservedFieldsStoredAsNull(t *testing.T) {
	raw, err := bson.Marshal(Education{Profile: NewIdentity("p1")})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "grade")
	assert.Nil(t, doc["grade"])
	assert.Contains(t, doc, "skills")

	out, err := json.Marshal(Education{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "grade")
	assert.NotContains(t, string(out), "skills")
}
