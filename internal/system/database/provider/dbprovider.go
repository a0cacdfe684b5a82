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

package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/wso2/professional-profile-service/internal/system/config"
	"github.com/wso2/professional-profile-service/internal/system/database"
	"github.com/wso2/professional-profile-service/internal/system/database/lock"
	"github.com/wso2/professional-profile-service/internal/system/log"
)

// StoreConfig is the connection information for one logical database.
type StoreConfig struct {
	Driver  string
	URI     string
	Name    string
	Timeout time.Duration
}

// Store bundles an open record store with the lock living next to it.
type Store struct {
	Records database.RecordStore
	Lock    lock.DistributedLock
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	return s.Records.Close(ctx)
}

// DBProviderInterface defines the interface for opening record stores.
type DBProviderInterface interface {
	OpenStore(ctx context.Context, cfg StoreConfig) (*Store, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	logger *log.Logger
}

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider(logger *log.Logger) DBProviderInterface {

	return &DBProvider{logger: logger}
}

// OpenStore connects to the configured driver.
func (d *DBProvider) OpenStore(ctx context.Context, cfg StoreConfig) (*Store, error) {

	switch cfg.Driver {
	case config.DriverMemory:
		d.logger.Warn("Using the in-memory record store; data is lost on exit")
		return &Store{Records: database.NewMemoryStore(), Lock: lock.NewMemoryLock()}, nil
	case config.DriverMongoDB:
		mongoStore, err := database.ConnectMongoStore(ctx, cfg.URI, cfg.Name, cfg.Timeout, d.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Name, err)
		}
		return &Store{Records: mongoStore, Lock: lock.NewMongoLock(mongoStore.Database())}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// TargetStoreConfig returns the connection information of the serving database.
func TargetStoreConfig(cfg *config.Config) StoreConfig {

	return StoreConfig{
		Driver:  cfg.Database.Driver,
		URI:     cfg.Database.URI,
		Name:    cfg.Database.Name,
		Timeout: cfg.Database.OperationTimeout,
	}
}

// SourceStoreConfig returns the connection information of the raw export database.
func SourceStoreConfig(cfg *config.Config) StoreConfig {

	return StoreConfig{
		Driver:  cfg.Database.Driver,
		URI:     cfg.Source.URI,
		Name:    cfg.Source.Name,
		Timeout: cfg.Database.OperationTimeout,
	}
}
