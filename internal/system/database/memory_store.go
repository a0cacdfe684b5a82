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
	"sync"

	"github.com/pkg/errors"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process RecordStore. Records keep insertion order, which stands
// in for the natural order of a document store. It understands the subset of the query
// language this service issues: equality, $or, $and, $in and $regex with $options.
type MemoryStore struct {
	collections map[string][]bson.M
	mu          sync.RWMutex
}

func NewMemoryStore() *MemoryStore {

	return &MemoryStore{
		collections: make(map[string][]bson.M),
	}
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter interface{}, opts *FindOptions,
	results interface{}) error {

	s.mu.RLock()
	matched, err := s.match(collection, filter)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	var projection interface{}
	if opts != nil {
		projection = opts.Projection
		matched = window(matched, opts.Skip, opts.Limit)
	}
	projected := make([]bson.M, len(matched))
	for i, doc := range matched {
		projected[i] = project(doc, projection)
	}
	return decodeAll(projected, results)
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter interface{}, projection interface{},
	result interface{}) error {

	s.mu.RLock()
	matched, err := s.match(collection, filter)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return ErrNotFound
	}
	return decodeOne(project(matched[0], projection), result)
}

func (s *MemoryStore) ForEach(ctx context.Context, collection string, filter interface{},
	fn func(doc bson.M) error) error {

	s.mu.RLock()
	matched, err := s.match(collection, filter)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	for _, doc := range matched {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(copyDocument(doc)); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Count(_ context.Context, collection string, filter interface{}) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, record interface{}) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(collection, record)
}

func (s *MemoryStore) InsertMany(_ context.Context, collection string, records []interface{}) ([]interface{}, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]interface{}, 0, len(records))
	for _, record := range records {
		id, err := s.insert(collection, record)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteOne removes the first record matching filter and reports whether one was removed.
func (s *MemoryStore) DeleteOne(_ context.Context, collection string, filter interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		ok, err := matches(doc, filter)
		if err != nil {
			return false, err
		}
		if ok {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}

// insert must be called with the write lock held.
func (s *MemoryStore) insert(collection string, record interface{}) (interface{}, error) {
	doc, err := toDocument(record)
	if err != nil {
		return nil, errors.Wrapf(err, "encode record for %s", collection)
	}
	id, ok := doc[constants.IdField]
	if !ok || id == nil {
		id = primitive.NewObjectID()
		doc[constants.IdField] = id
	}
	for _, existing := range s.collections[collection] {
		if valuesEqual(existing[constants.IdField], id) {
			return nil, errors.Wrapf(ErrDuplicateKey, "insert into %s", collection)
		}
	}
	s.collections[collection] = append(s.collections[collection], doc)
	return id, nil
}

// match must be called with the read lock held.
func (s *MemoryStore) match(collection string, filter interface{}) ([]bson.M, error) {
	var matched []bson.M
	for _, doc := range s.collections[collection] {
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluate filter on %s", collection)
		}
		if ok {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func window(docs []bson.M, skip, limit int64) []bson.M {
	if skip > 0 {
		if skip >= int64(len(docs)) {
			return nil
		}
		docs = docs[skip:]
	}
	if limit > 0 && limit < int64(len(docs)) {
		docs = docs[:limit]
	}
	return docs
}

// project keeps the fields set to a truthy value in projection, plus _id unless excluded.
func project(doc bson.M, projection interface{}) bson.M {
	fields, ok := asDocument(projection)
	if !ok || len(fields) == 0 {
		return copyDocument(doc)
	}
	out := bson.M{}
	if include, set := fields[constants.IdField]; !set || truthy(include) {
		if id, present := doc[constants.IdField]; present {
			out[constants.IdField] = id
		}
	}
	for field, include := range fields {
		if field == constants.IdField || !truthy(include) {
			continue
		}
		if value, present := doc[field]; present {
			out[field] = value
		}
	}
	return out
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	default:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return v != nil
	}
}

func copyDocument(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func toDocument(record interface{}) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type itemsHolder struct {
	Items bson.RawValue `bson:"items"`
}

// decodeAll runs docs through the bson codec so callers get the same decoding
// semantics as a driver cursor.
func decodeAll(docs []bson.M, results interface{}) error {
	if docs == nil {
		docs = []bson.M{}
	}
	raw, err := bson.Marshal(bson.M{"items": docs})
	if err != nil {
		return errors.Wrap(err, "encode records")
	}
	var holder itemsHolder
	if err := bson.Unmarshal(raw, &holder); err != nil {
		return errors.Wrap(err, "decode records")
	}
	if err := holder.Items.Unmarshal(results); err != nil {
		return errors.Wrap(err, "decode records")
	}
	return nil
}

func decodeOne(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}
	if err := bson.Unmarshal(raw, result); err != nil {
		return errors.Wrap(err, "decode record")
	}
	return nil
}
