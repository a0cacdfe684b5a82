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

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"gopkg.in/yaml.v2"
)

const (
	DriverMongoDB = "mongodb"
	DriverMemory  = "memory"
)

// LoadEnvFiles loads every config/*.env file under home into the process environment.
// Variables already set in the environment win. It returns the files it loaded.
func LoadEnvFiles(home string) ([]string, error) {
	envFiles, err := filepath.Glob(filepath.Join(home, "config", "*.env"))
	if err != nil {
		return nil, err
	}
	if len(envFiles) == 0 {
		return nil, nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	return envFiles, nil
}

// LoadConfig reads the deployment file under home, expands environment references,
// applies defaults and validates the result.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}
	return ParseConfig(file)
}

// ParseConfig parses deployment YAML content.
func ParseConfig(content []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(content))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Addr.Host == "" {
		c.Addr.Host = "0.0.0.0"
	}
	if c.Addr.Port == 0 {
		c.Addr.Port = 5000
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "INFO"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMongoDB
	}
	if c.Database.OperationTimeout == 0 {
		c.Database.OperationTimeout = constants.DefaultOperationTimeout
	}
	if c.Source.URI == "" {
		c.Source.URI = c.Database.URI
	}
	if c.Source.Name == "" {
		c.Source.Name = c.Database.Name
	}
	if c.Source.Collection == "" {
		c.Source.Collection = constants.SourceProfileCollection
	}
	if c.Search.PaginationMode == "" {
		c.Search.PaginationMode = constants.PaginationModeUnion
	}
	if c.Search.DefaultPerPage == 0 {
		c.Search.DefaultPerPage = constants.DefaultPerPage
	}
	if c.Search.MaxPerPage == 0 {
		c.Search.MaxPerPage = constants.MaxPerPage
	}
}

// Validate reports the first missing or inconsistent value.
func (c *Config) Validate() error {
	var missing []string
	switch c.Database.Driver {
	case DriverMongoDB:
		if c.Database.URI == "" {
			missing = append(missing, "database.uri")
		}
		if c.Database.Name == "" {
			missing = append(missing, "database.name")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration values: %s", strings.Join(missing, ", "))
	}

	switch c.Search.PaginationMode {
	case constants.PaginationModeUnion, constants.PaginationModeLegacy:
	default:
		return fmt.Errorf("unsupported search pagination mode %q", c.Search.PaginationMode)
	}
	if c.Search.DefaultPerPage < 1 || c.Search.MaxPerPage < c.Search.DefaultPerPage {
		return fmt.Errorf("search.default_per_page must be between 1 and search.max_per_page")
	}
	if c.Migration.Limit < 0 {
		return fmt.Errorf("migration.limit must not be negative")
	}
	return nil
}
