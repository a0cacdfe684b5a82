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
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matches evaluates a query document against doc.
func matches(doc bson.M, filter interface{}) (bool, error) {
	if filter == nil {
		return true, nil
	}
	query, ok := asDocument(filter)
	if !ok {
		return false, fmt.Errorf("unsupported filter type %T", filter)
	}

	for key, cond := range query {
		var (
			ok  bool
			err error
		)
		switch key {
		case "$or":
			ok, err = matchAny(doc, cond)
		case "$and":
			ok, err = matchAll(doc, cond)
		default:
			ok, err = matchField(lookup(doc, key), cond)
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchAny(doc bson.M, cond interface{}) (bool, error) {
	clauses, ok := asArray(cond)
	if !ok {
		return false, fmt.Errorf("$or expects an array, got %T", cond)
	}
	for _, clause := range clauses {
		ok, err := matches(doc, clause)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func matchAll(doc bson.M, cond interface{}) (bool, error) {
	clauses, ok := asArray(cond)
	if !ok {
		return false, fmt.Errorf("$and expects an array, got %T", cond)
	}
	for _, clause := range clauses {
		ok, err := matches(doc, clause)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchField(value interface{}, cond interface{}) (bool, error) {
	if re, ok := cond.(primitive.Regex); ok {
		return matchRegex(value, re.Pattern, re.Options)
	}
	operators, ok := asDocument(cond)
	if !ok || !isOperatorDocument(operators) {
		return valuesEqual(value, cond), nil
	}

	for op, operand := range operators {
		switch op {
		case "$eq":
			if !valuesEqual(value, operand) {
				return false, nil
			}
		case "$ne":
			if valuesEqual(value, operand) {
				return false, nil
			}
		case "$in":
			candidates, ok := asArray(operand)
			if !ok {
				return false, fmt.Errorf("$in expects an array, got %T", operand)
			}
			found := false
			for _, candidate := range candidates {
				if valuesEqual(value, candidate) {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		case "$lt", "$gt":
			ok, err := compareOrdered(value, operand, op)
			if err != nil || !ok {
				return false, err
			}
		case "$regex":
			pattern, options := "", ""
			switch p := operand.(type) {
			case string:
				pattern = p
			case primitive.Regex:
				pattern, options = p.Pattern, p.Options
			default:
				return false, fmt.Errorf("$regex expects a string, got %T", operand)
			}
			if o, ok := operators["$options"].(string); ok {
				options = o
			}
			ok, err := matchRegex(value, pattern, options)
			if err != nil || !ok {
				return false, err
			}
		case "$options":
			// consumed by $regex
		default:
			return false, fmt.Errorf("unsupported query operator %s", op)
		}
	}
	return true, nil
}

func matchRegex(value interface{}, pattern, options string) (bool, error) {
	text, ok := value.(string)
	if !ok {
		return false, nil
	}
	if strings.Contains(options, "i") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid $regex %q: %w", pattern, err)
	}
	return re.MatchString(text), nil
}

func compareOrdered(value, operand interface{}, op string) (bool, error) {
	if a, ok := asTime(value); ok {
		b, ok := asTime(operand)
		if !ok {
			return false, nil
		}
		if op == "$lt" {
			return a.Before(b), nil
		}
		return a.After(b), nil
	}
	a, okA := toFloat(value)
	b, okB := toFloat(operand)
	if !okA || !okB {
		return false, nil
	}
	if op == "$lt" {
		return a < b, nil
	}
	return a > b, nil
}

func isOperatorDocument(doc bson.M) bool {
	if len(doc) == 0 {
		return false
	}
	for key := range doc {
		if !strings.HasPrefix(key, "$") {
			return false
		}
	}
	return true
}

// lookup resolves a dotted path through embedded documents.
func lookup(doc bson.M, path string) interface{} {
	var current interface{} = doc
	for _, part := range strings.Split(path, ".") {
		sub, ok := asDocument(current)
		if !ok {
			return nil
		}
		current = sub[part]
	}
	return current
}

func valuesEqual(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	if ta, ok := asTime(a); ok {
		if tb, ok := asTime(b); ok {
			return ta.Equal(tb)
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	default:
		return time.Time{}, false
	}
}

func asDocument(v interface{}) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]interface{}:
		return d, true
	case bson.D:
		out := make(bson.M, len(d))
		for _, e := range d {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return nil, false
	}
}

func asArray(v interface{}) ([]interface{}, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []interface{}:
		return a, true
	case []bson.M:
		out := make([]interface{}, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true
	default:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Kind() != reflect.Slice {
			return nil, false
		}
		out := make([]interface{}, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
}
