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

package managers

import (
	"net/http"

	healthprovider "github.com/wso2/professional-profile-service/internal/health_check/provider"
	profileprovider "github.com/wso2/professional-profile-service/internal/profile/provider"
	"github.com/wso2/professional-profile-service/internal/system/config"
	dbprovider "github.com/wso2/professional-profile-service/internal/system/database/provider"
	"github.com/wso2/professional-profile-service/internal/system/mcp"
	"github.com/wso2/professional-profile-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux    *http.ServeMux
	store  *dbprovider.Store
	config *config.Config
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, store *dbprovider.Store, cfg *config.Config) ServiceManagerInterface {

	return &ServiceManager{
		mux:    mux,
		store:  store,
		config: cfg,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	// Register the profile read and search service.
	profilesProvider := profileprovider.NewProfilesProvider(sm.store.Records, sm.config.Search)
	services.NewProfileService(sm.mux, apiBasePath, profilesProvider, sm.config.Search)

	// Expose the same read paths as MCP tools.
	mcp.Initialize(sm.mux, profilesProvider, sm.config.Search)

	// Register the health, readiness and metrics endpoints.
	services.NewHealthService(sm.mux, healthprovider.NewHealthCheckProvider(sm.store))
	return nil
}
