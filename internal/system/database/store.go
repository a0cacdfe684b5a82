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
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned by FindOne when no record matches the filter.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyBatch is returned by InsertMany when called without records.
	ErrEmptyBatch = errors.New("insert many called with an empty batch")
	// ErrDuplicateKey is returned when an insert collides with an existing _id.
	ErrDuplicateKey = errors.New("duplicate key")
)

// FindOptions narrows a Find call. Zero Skip or Limit means no skip or no limit.
type FindOptions struct {
	Projection interface{}
	Skip       int64
	Limit      int64
}

// RecordStore is the narrow capability surface over the document database. Every
// operation is scoped to a named collection. Filters and projections use the bson
// query document form.
type RecordStore interface {
	// Find decodes all matching records into results, which must be a pointer to a slice.
	Find(ctx context.Context, collection string, filter interface{}, opts *FindOptions, results interface{}) error
	// FindOne decodes the first matching record into result or returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter interface{}, projection interface{}, result interface{}) error
	// ForEach streams matching records in store order, stopping at the first error returned by fn.
	ForEach(ctx context.Context, collection string, filter interface{}, fn func(doc bson.M) error) error
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)
	InsertOne(ctx context.Context, collection string, record interface{}) (interface{}, error)
	// InsertMany requires a non-empty batch and returns ErrEmptyBatch otherwise.
	InsertMany(ctx context.Context, collection string, records []interface{}) ([]interface{}, error)
	Close(ctx context.Context) error
}

// IndexManager is implemented by stores that support secondary indexes.
type IndexManager interface {
	EnsureIndex(ctx context.Context, collection string, field string) error
}
