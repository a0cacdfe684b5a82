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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wso2/professional-profile-service/internal/system/constants"
	"github.com/wso2/professional-profile-service/internal/system/database"
	"github.com/wso2/professional-profile-service/internal/system/database/lock"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrMigrationRunning reports that the profile collections are being written by a migration.
var ErrMigrationRunning = errors.New("profile migration in progress")

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	records database.RecordStore
	lock    lock.DistributedLock
}

// NewHealthCheckService returns a new instance.
func NewHealthCheckService(records database.RecordStore, migrationLock lock.DistributedLock) *HealthCheckService {
	return &HealthCheckService{
		records: records,
		lock:    migrationLock,
	}
}

// CheckReadiness verifies the store answers and no migration holds the run lock.
func (h *HealthCheckService) CheckReadiness(ctx context.Context) error {
	// Lightweight keyed lookup to ensure store connectivity.
	if _, err := h.records.Count(ctx, constants.ProfileCollection, bson.M{constants.IdField: ""}); err != nil {
		return fmt.Errorf("database connectivity check failed: %w", err)
	}

	if h.lock == nil {
		return nil
	}
	held, err := h.lock.IsHeld(ctx, constants.MigrationLockName)
	if err != nil {
		return fmt.Errorf("migration lock check failed: %w", err)
	}
	if held {
		return ErrMigrationRunning
	}
	return nil
}
