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
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"github.com/wso2/professional-profile-service/internal/system/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements RecordStore on a MongoDB database.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
	logger   *log.Logger
}

// ConnectMongoStore connects to uri, pings the server and scopes the store to dbName.
func ConnectMongoStore(ctx context.Context, uri, dbName string, timeout time.Duration,
	logger *log.Logger) (*MongoStore, error) {

	if timeout <= 0 {
		timeout = constants.DefaultOperationTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongodb client creation failed")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongodb ping failed")
	}

	logger.Info("Connected to MongoDB", log.String("database", dbName))
	return &MongoStore{
		client:   client,
		database: client.Database(dbName),
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Database exposes the underlying database handle.
func (s *MongoStore) Database() *mongo.Database {
	return s.database
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter interface{}, opts *FindOptions,
	results interface{}) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	findOpts := options.Find()
	if opts != nil {
		if opts.Projection != nil {
			findOpts.SetProjection(opts.Projection)
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
	}

	cursor, err := s.database.Collection(collection).Find(ctx, normalizeFilter(filter), findOpts)
	if err != nil {
		return errors.Wrapf(err, "find in %s", collection)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return errors.Wrapf(err, "decode records from %s", collection)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter interface{}, projection interface{},
	result interface{}) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	findOpts := options.FindOne()
	if projection != nil {
		findOpts.SetProjection(projection)
	}
	err := s.database.Collection(collection).FindOne(ctx, normalizeFilter(filter), findOpts).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return errors.Wrapf(err, "find one in %s", collection)
	}
	return nil
}

// ForEach streams with the caller's context only; a full collection scan outlives the
// per-operation timeout.
func (s *MongoStore) ForEach(ctx context.Context, collection string, filter interface{},
	fn func(doc bson.M) error) error {

	cursor, err := s.database.Collection(collection).Find(ctx, normalizeFilter(filter))
	if err != nil {
		return errors.Wrapf(err, "find in %s", collection)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return errors.Wrapf(err, "decode record from %s", collection)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return errors.Wrapf(err, "iterate %s", collection)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := s.database.Collection(collection).CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, errors.Wrapf(err, "count in %s", collection)
	}
	return count, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, record interface{}) (interface{}, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.database.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrapf(ErrDuplicateKey, "insert into %s", collection)
		}
		return nil, errors.Wrapf(err, "insert into %s", collection)
	}
	return result.InsertedID, nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, records []interface{}) ([]interface{}, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.database.Collection(collection).InsertMany(ctx, records)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrapf(ErrDuplicateKey, "insert %d records into %s", len(records), collection)
		}
		return nil, errors.Wrapf(err, "insert %d records into %s", len(records), collection)
	}
	return result.InsertedIDs, nil
}

func (s *MongoStore) EnsureIndex(ctx context.Context, collection string, field string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(fmt.Sprintf("%s_%s_idx", collection, field)),
	}
	if _, err := s.database.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return errors.Wrapf(err, "create index on %s.%s", collection, field)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "mongodb disconnect failed")
	}
	s.logger.Debug("Disconnected from MongoDB")
	return nil
}

// normalizeFilter turns a nil filter into the empty document the driver expects.
func normalizeFilter(filter interface{}) interface{} {
	switch f := filter.(type) {
	case nil:
		return bson.M{}
	case bson.M:
		if f == nil {
			return bson.M{}
		}
	}
	return filter
}
