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
	"github.com/wso2/professional-profile-service/internal/profile/service"
	"github.com/wso2/professional-profile-service/internal/profile/store"
	"github.com/wso2/professional-profile-service/internal/system/config"
	"github.com/wso2/professional-profile-service/internal/system/database"
)

// ProfilesProviderInterface defines the interface for the profiles provider.
type ProfilesProviderInterface interface {
	GetProfilesService() service.ProfilesServiceInterface
	GetSearchService() service.SearchServiceInterface
}

// ProfilesProvider builds the profile services once over a shared record store, so the
// listing count cache lives as long as the provider.
type ProfilesProvider struct {
	profilesService *service.ProfilesService
	searchService   *service.SearchService
}

// NewProfilesProvider creates a new instance of ProfilesProvider.
func NewProfilesProvider(records database.RecordStore, searchConfig config.SearchConfig) ProfilesProviderInterface {

	profileStore := store.NewProfileStore(records)
	return &ProfilesProvider{
		profilesService: service.NewProfilesService(profileStore, searchConfig.CountCacheTTL),
		searchService:   service.NewSearchService(profileStore, searchConfig.PaginationMode),
	}
}

// GetProfilesService returns the profile listing and detail service.
func (pp *ProfilesProvider) GetProfilesService() service.ProfilesServiceInterface {

	return pp.profilesService
}

// GetSearchService returns the profile search service.
func (pp *ProfilesProvider) GetSearchService() service.SearchServiceInterface {

	return pp.searchService
}
