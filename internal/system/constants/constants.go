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

package constants

import "time"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"

const TraceIDHeader = "X-Trace-Id"

const ApiBasePath = "/api"

// Collection names
const (
	ProfileCollection       = "profiles"
	ExperienceCollection    = "experiences"
	EducationCollection     = "educations"
	SourceProfileCollection = "profiles_complete"
)

// Profile and child record fields
const (
	IdField         = "_id"
	ProfileRefField = "profile"
	OpenToWorkField = "open_to_work"
)

// Pagination query parameters and defaults
const (
	PageParam      = "page"
	PerPageParam   = "per_page"
	QueryParam     = "query"
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Search pagination modes
const (
	PaginationModeUnion  = "union"
	PaginationModeLegacy = "legacy"
)

// MigrationLockName is the run lock held by the migration runner.
const MigrationLockName = "migration"

const MigrationLockTTL = 6 * time.Hour

const DefaultOperationTimeout = 10 * time.Second

const LinkedInProfileURLFormat = "https://www.linkedin.com/in/%s/"

// MCPEndpointPath is where the Model Context Protocol tools are served.
const MCPEndpointPath = "/mcp"
