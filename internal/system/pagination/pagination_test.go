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

package pagination

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: Page{Number: 1, PerPage: 10}},
		{name: "explicit", query: "?page=3&per_page=20", want: Page{Number: 3, PerPage: 20}},
		{name: "clamped to max", query: "?per_page=1000", want: Page{Number: 1, PerPage: 100}},
		{name: "zero page", query: "?page=0", wantErr: true},
		{name: "negative per_page", query: "?per_page=-5", wantErr: true},
		{name: "non numeric", query: "?page=two", wantErr: true},
		{name: "offset overflows", query: "?page=9223372036854775807&per_page=10", wantErr: true},
		{name: "largest page at per_page 1", query: "?page=9223372036854775807&per_page=1",
			want: Page{Number: math.MaxInt, PerPage: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/profiles"+tt.query, http.NoBody)
			page, err := ParsePage(r, 10, 100)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestPage_SkipLimitAndSlice(t *testing.T) {
	page := Page{Number: 3, PerPage: 4}
	assert.Equal(t, int64(8), page.Skip())
	assert.Equal(t, int64(4), page.Limit())

	start, end := page.Slice(10)
	assert.Equal(t, 8, start)
	assert.Equal(t, 10, end)

	start, end = page.Slice(20)
	assert.Equal(t, 8, start)
	assert.Equal(t, 12, end)

	start, end = page.Slice(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end = Page{Number: math.MaxInt, PerPage: 10}.Slice(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestNewPage(t *testing.T) {
	page, err := NewPage(0, 0, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, PerPage: 10}, page)

	page, err = NewPage(2, 500, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 2, PerPage: 100}, page)

	_, err = NewPage(-1, 10, 10, 100)
	assert.Error(t, err)

	_, err = NewPage(math.MaxInt, 10, 10, 100)
	assert.Error(t, err)
}
