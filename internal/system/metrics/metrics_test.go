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

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return Middleware()(mux)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	handler := newTestMux()
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/profiles/{id}", "200"))

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profiles/"+id, http.NoBody))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/profiles/{id}", "200"))
	assert.Equal(t, 2.0, after-before)
	assert.NotZero(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := newTestMux()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profiles/missing", http.NoBody))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.GreaterOrEqual(t,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/profiles/{id}", "404")), 1.0)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))
	assert.GreaterOrEqual(t,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404")), 1.0)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unknown", normalizePath(""))
	assert.Equal(t, "GET /health", normalizePath("GET /health"))
}

func TestHandler_ExposesMigrationMetrics(t *testing.T) {
	MigrationRecordsTotal.WithLabelValues("profiles").Add(0)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "profile_service_migration_records_total"))
}
