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

package transformer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wso2/professional-profile-service/internal/system/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Text returns the trimmed text form of a source scalar. Absent, null, empty and
// whitespace-only values, as well as documents and arrays, yield nil.
func Text(v interface{}) *string {
	var s string
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		s = value
	case int32:
		s = strconv.FormatInt(int64(value), 10)
	case int64:
		s = strconv.FormatInt(value, 10)
	case int:
		s = strconv.Itoa(value)
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(value)
	case primitive.ObjectID:
		s = value.Hex()
	default:
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ComposeLocation joins two location parts as "a, b". Both parts must be present.
func ComposeLocation(a, b *string) *string {
	if a == nil || b == nil {
		return nil
	}
	location := *a + ", " + *b
	return &location
}

// ProfileURL builds the public profile URL for a handle.
func ProfileURL(handle *string) *string {
	if handle == nil {
		return nil
	}
	url := fmt.Sprintf(constants.LinkedInProfileURLFormat, *handle)
	return &url
}

// JoinMajors joins the non-empty entries of a majors list with ", ".
func JoinMajors(v interface{}) *string {
	items, ok := asList(v)
	if !ok {
		return Text(v)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s := Text(item); s != nil {
			parts = append(parts, *s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// firstText returns the first non-null text among the given keys of doc.
func firstText(doc bson.M, keys ...string) *string {
	for _, key := range keys {
		if s := Text(doc[key]); s != nil {
			return s
		}
	}
	return nil
}

// lookup walks a path of nested documents, returning nil when any step is missing.
func lookup(doc bson.M, path ...string) interface{} {
	var current interface{} = doc
	for _, key := range path {
		sub, ok := asDoc(current)
		if !ok {
			return nil
		}
		current = sub[key]
	}
	return current
}

func asDoc(v interface{}) (bson.M, bool) {
	switch doc := v.(type) {
	case bson.M:
		return doc, true
	case map[string]interface{}:
		return doc, true
	case bson.D:
		m := make(bson.M, len(doc))
		for _, e := range doc {
			m[e.Key] = e.Value
		}
		return m, true
	default:
		return nil, false
	}
}

func isDoc(v interface{}) bool {
	_, ok := asDoc(v)
	return ok
}

func asList(v interface{}) ([]interface{}, bool) {
	switch list := v.(type) {
	case bson.A:
		return list, true
	case []interface{}:
		return list, true
	case []bson.M:
		items := make([]interface{}, len(list))
		for i, item := range list {
			items[i] = item
		}
		return items, true
	case []string:
		items := make([]interface{}, len(list))
		for i, item := range list {
			items[i] = item
		}
		return items, true
	default:
		return nil, false
	}
}

// asInt reads a date component. Integral numbers of any BSON width and numeric strings are accepted.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
