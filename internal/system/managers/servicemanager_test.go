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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/config"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"github.com/wso2/professional-profile-service/internal/system/database"
	"github.com/wso2/professional-profile-service/internal/system/database/lock"
	dbprovider "github.com/wso2/professional-profile-service/internal/system/database/provider"
	"github.com/wso2/professional-profile-service/internal/system/log"
)

func TestRegisterServices_Routes(t *testing.T) {
	log.SetLogger(log.Discard())
	records := database.NewMemoryStore()
	_, err := records.InsertOne(context.Background(), constants.ProfileCollection,
		model.Profile{ID: model.NewIdentity("p1")})
	require.NoError(t, err)

	cfg, err := config.ParseConfig([]byte("database:\n  driver: memory\n"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	store := &dbprovider.Store{Records: records, Lock: lock.NewMemoryLock()}
	require.NoError(t, NewServiceManager(mux, store, cfg).RegisterServices(constants.ApiBasePath))

	tests := []struct {
		method string
		target string
		status int
	}{
		{method: http.MethodGet, target: "/api/profiles", status: http.StatusOK},
		{method: http.MethodGet, target: "/api/profiles/p1", status: http.StatusOK},
		{method: http.MethodGet, target: "/api/profiles/search?query=p", status: http.StatusOK},
		{method: http.MethodGet, target: "/api/profiles/search", status: http.StatusBadRequest},
		{method: http.MethodGet, target: "/health", status: http.StatusOK},
		{method: http.MethodGet, target: "/ready", status: http.StatusOK},
		{method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{method: http.MethodDelete, target: "/api/profiles/p1", status: http.StatusMethodNotAllowed},
		{method: http.MethodGet, target: "/api/unknown", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, http.NoBody))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestRegisterServices_ListingTotal(t *testing.T) {
	log.SetLogger(log.Discard())
	records := database.NewMemoryStore()
	for _, id := range []string{"a", "b", "c"} {
		_, err := records.InsertOne(context.Background(), constants.ProfileCollection,
			model.Profile{ID: model.NewIdentity(id)})
		require.NoError(t, err)
	}
	cfg, err := config.ParseConfig([]byte("database:\n  driver: memory\n"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	store := &dbprovider.Store{Records: records, Lock: lock.NewMemoryLock()}
	require.NoError(t, NewServiceManager(mux, store, cfg).RegisterServices(constants.ApiBasePath))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profiles?per_page=2", http.NoBody))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data    []map[string]interface{} `json:"data"`
		PerPage int                      `json:"per_page"`
		Total   int64                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Total)
	assert.Equal(t, 2, body.PerPage)
	assert.Len(t, body.Data, 2)
}
