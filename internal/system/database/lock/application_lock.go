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

package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const lockCollection = "locks"

// DistributedLock is a named lease shared by every process using the same store.
type DistributedLock interface {
	// Acquire takes the lock for ttl. It returns false without error when another holder has it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	// IsHeld reports whether an unexpired holder exists.
	IsHeld(ctx context.Context, key string) (bool, error)
}

// MongoLock keeps one document per held lock in the locks collection, keyed by _id.
type MongoLock struct {
	Collection *mongo.Collection
	now        func() time.Time
}

func NewMongoLock(db *mongo.Database) *MongoLock {
	return &MongoLock{
		Collection: db.Collection(lockCollection),
		now:        time.Now,
	}
}

func (l *MongoLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	now := l.now()

	// Clear a lease left behind by a crashed holder.
	_, err := l.Collection.DeleteOne(ctx, bson.M{"_id": key, "expires_at": bson.M{"$lt": now}})
	if err != nil {
		return false, errors.Wrapf(err, "clear expired lock %s", key)
	}

	lock := bson.M{
		"_id":        key,
		"created_at": now,
		"expires_at": now.Add(ttl),
	}
	if _, err := l.Collection.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "acquire lock %s", key)
	}
	return true, nil
}

func (l *MongoLock) Release(ctx context.Context, key string) error {
	if _, err := l.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Wrapf(err, "release lock %s", key)
	}
	return nil
}

func (l *MongoLock) IsHeld(ctx context.Context, key string) (bool, error) {
	count, err := l.Collection.CountDocuments(ctx, bson.M{"_id": key, "expires_at": bson.M{"$gte": l.now()}})
	if err != nil {
		return false, errors.Wrapf(err, "check lock %s", key)
	}
	return count > 0, nil
}

// MemoryLock is a process-local DistributedLock for single-process deployments and tests.
type MemoryLock struct {
	mu     sync.Mutex
	leases map[string]time.Time
	now    func() time.Time
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{
		leases: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (l *MemoryLock) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expiresAt, held := l.leases[key]; held && expiresAt.After(now) {
		return false, nil
	}
	l.leases[key] = now.Add(ttl)
	return true, nil
}

func (l *MemoryLock) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.leases, key)
	return nil
}

func (l *MemoryLock) IsHeld(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiresAt, held := l.leases[key]
	return held && expiresAt.After(l.now()), nil
}
