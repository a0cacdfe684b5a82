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

package handler

import (
	"net/http"

	"github.com/wso2/professional-profile-service/internal/profile/service"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
	"github.com/wso2/professional-profile-service/internal/system/utils"
)

type ProfileHandler struct {
	profilesService service.ProfilesServiceInterface
	searchService   service.SearchServiceInterface
	defaultPerPage  int
	maxPerPage      int
}

func NewProfileHandler(profilesService service.ProfilesServiceInterface, searchService service.SearchServiceInterface,
	defaultPerPage, maxPerPage int) *ProfileHandler {

	return &ProfileHandler{
		profilesService: profilesService,
		searchService:   searchService,
		defaultPerPage:  defaultPerPage,
		maxPerPage:      maxPerPage,
	}
}

// GetAllProfiles handles paginated profile listing
func (ph *ProfileHandler) GetAllProfiles(w http.ResponseWriter, r *http.Request) {

	page, ok := ph.parsePage(w, r)
	if !ok {
		return
	}
	profiles, err := ph.profilesService.GetProfiles(r.Context(), page)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profiles)
}

// SearchProfiles handles free-text profile search
func (ph *ProfileHandler) SearchProfiles(w http.ResponseWriter, r *http.Request) {

	page, ok := ph.parsePage(w, r)
	if !ok {
		return
	}
	result, err := ph.searchService.SearchProfiles(r.Context(), r.URL.Query().Get(constants.QueryParam), page)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetProfile handles profile retrieval requests
func (ph *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {

	profileId := r.PathValue("id")
	detail, err := ph.profilesService.GetProfile(r.Context(), profileId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, detail)
}

func (ph *ProfileHandler) parsePage(w http.ResponseWriter, r *http.Request) (pagination.Page, bool) {
	page, err := pagination.ParsePage(r, ph.defaultPerPage, ph.maxPerPage)
	if err != nil {
		clientError := errors2.NewClientError(errors2.ErrInvalidPagination, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return pagination.Page{}, false
	}
	return page, true
}
