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

package config

import "time"

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// DatabaseConfig describes the target store holding profiles, experiences and educations.
type DatabaseConfig struct {
	// Driver is "mongodb" or "memory".
	Driver           string        `yaml:"driver"`
	URI              string        `yaml:"uri"`
	Name             string        `yaml:"name"`
	OperationTimeout time.Duration `yaml:"operation_timeout"`
}

// SourceConfig describes the raw export read by the migration.
type SourceConfig struct {
	URI        string `yaml:"uri"`
	Name       string `yaml:"name"`
	Collection string `yaml:"collection"`
}

type SearchConfig struct {
	PaginationMode string        `yaml:"pagination_mode"`
	DefaultPerPage int           `yaml:"default_per_page"`
	MaxPerPage     int           `yaml:"max_per_page"`
	CountCacheTTL  time.Duration `yaml:"count_cache_ttl"`
}

type MigrationConfig struct {
	DryRun        bool `yaml:"dry_run"`
	Limit         int  `yaml:"limit"`
	EnsureIndexes bool `yaml:"ensure_indexes"`
}

type Config struct {
	Addr      AddrConfig      `yaml:"addr"`
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Source    SourceConfig    `yaml:"source"`
	Search    SearchConfig    `yaml:"search"`
	Migration MigrationConfig `yaml:"migration"`
}
