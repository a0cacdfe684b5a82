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
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchProfiles_UnionsAllClauses(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), "  engineer ", pagination.Page{Number: 1, PerPage: 10})
	require.NoError(t, err)

	// Direct hits first, then owners of matching experiences and educations in store order.
	assert.Equal(t, []string{f.hex(0), f.hex(1), f.hex(2), f.hex(3)}, profileIDs(result.Data))
	assert.Equal(t, int64(4), result.Total)
	assert.Equal(t, "engineer", result.Query)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PerPage)
}

func TestSearchProfiles_OpenToWorkLiteral(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	tests := []struct {
		query    string
		expected []string
	}{
		{query: "true", expected: []string{f.hex(0), f.hex(2)}},
		{query: "TRUE", expected: []string{f.hex(0), f.hex(2)}},
		{query: "False", expected: []string{f.hex(1), f.hex(3), f.hex(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result, err := svc.SearchProfiles(context.Background(), tt.query, pagination.Page{Number: 1, PerPage: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, profileIDs(result.Data))
			assert.Equal(t, int64(len(tt.expected)), result.Total)
			for _, p := range result.Data {
				assert.Equal(t, tt.query == "true" || tt.query == "TRUE", p.OpenToWork)
			}
		})
	}
}

func TestSearchProfiles_DeduplicatesAcrossClauses(t *testing.T) {
	f := newFixture(t)
	f.insert(t, constants.ExperienceCollection, model.Experience{
		Profile: model.NewIdentity(f.ids[0]), WorkAt: str("Acme"), Role: str("Lead Engineer")})
	f.insert(t, constants.EducationCollection, model.Education{
		Profile: model.NewIdentity(f.ids[0]), UniversityName: str("TU Berlin"), FieldOfStudy: str("Engineering")})
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: 1, PerPage: 10})
	require.NoError(t, err)

	ids := profileIDs(result.Data)
	assert.Equal(t, []string{f.hex(0), f.hex(1), f.hex(2), f.hex(3)}, ids)
	assert.Equal(t, int64(4), result.Total)
}

func TestSearchProfiles_QueryIsMatchedLiterally(t *testing.T) {
	f := newFixture(t)
	f.insert(t, constants.ProfileCollection, model.Profile{
		ID: model.NewIdentity("cpp"), Position: str("C++ Developer (Senior)")})
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), ".*", pagination.Page{Number: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)

	result, err = svc.SearchProfiles(context.Background(), "c++ developer (", pagination.Page{Number: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"cpp"}, profileIDs(result.Data))
}

func TestSearchProfiles_EmptyQueryIsClientError(t *testing.T) {
	mockStore := new(MockProfileStore)
	svc := NewSearchService(mockStore, constants.PaginationModeUnion)

	for _, query := range []string{"", "   ", "\t\n"} {
		result, err := svc.SearchProfiles(context.Background(), query, pagination.Page{Number: 1, PerPage: 10})
		assert.Nil(t, result)

		var clientErr *errors2.ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
		assert.Equal(t, errors2.ErrQueryRequired.Code, clientErr.Code)
		assert.Equal(t, "Query parameter is required", clientErr.Message)
	}
	// No scan is issued for an empty query.
	mockStore.AssertNotCalled(t, "FindProfiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchProfiles_UnionPagesConcatenateWithoutGaps(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	var all []string
	var total int64
	for page := 1; page <= 3; page++ {
		result, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: page, PerPage: 2})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Data), 2)
		all = append(all, profileIDs(result.Data)...)
		total = result.Total
	}
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{f.hex(0), f.hex(1), f.hex(2), f.hex(3)}, all)
}

func TestSearchProfiles_PageBeyondAnyOffsetIsEmpty(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(f.store, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: math.MaxInt, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(4), result.Total)
}

func TestSearchProfiles_LegacyModePaginatesTwice(t *testing.T) {
	f := newFixture(t)
	svc := NewSearchService(f.store, constants.PaginationModeLegacy)

	first, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: 1, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{f.hex(0)}, profileIDs(first.Data))
	assert.Equal(t, int64(4), first.Total)

	// The direct query is already skipped past Alice, so the union slice skips Bob as well.
	second, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: 2, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{f.hex(2)}, profileIDs(second.Data))
	assert.Equal(t, int64(3), second.Total)
}

func TestSearchProfiles_StoreFailureIsServerError(t *testing.T) {
	mockStore := new(MockProfileStore)
	mockStore.On("FindProfiles", mock.Anything, mock.Anything, int64(0), int64(0)).
		Return([]model.Profile{}, nil)
	mockStore.On("FindExperienceOwners", mock.Anything, mock.Anything).
		Return([]model.Identity(nil), errors.New("socket closed"))
	mockStore.On("FindEducationOwners", mock.Anything, mock.Anything).
		Return([]model.Identity{}, nil)
	svc := NewSearchService(mockStore, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), "engineer", pagination.Page{Number: 1, PerPage: 10})
	assert.Nil(t, result)

	var serverErr *errors2.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, errors2.ErrWhileSearchingProfiles.Code, serverErr.Code)
	mockStore.AssertNotCalled(t, "GetProfilesByIDs", mock.Anything, mock.Anything)
}

func TestSearchProfiles_FilterShape(t *testing.T) {
	mockStore := new(MockProfileStore)
	expectedProfileFilter := bson.M{"$or": bson.A{
		bson.M{"location": bson.M{"$regex": `a\.b`, "$options": "i"}},
		bson.M{"position": bson.M{"$regex": `a\.b`, "$options": "i"}},
	}}
	expectedExperienceFilter := bson.M{"$or": bson.A{
		bson.M{"work_at": bson.M{"$regex": `a\.b`, "$options": "i"}},
		bson.M{"role": bson.M{"$regex": `a\.b`, "$options": "i"}},
	}}
	mockStore.On("FindProfiles", mock.Anything, expectedProfileFilter, int64(0), int64(0)).
		Return([]model.Profile{}, nil)
	mockStore.On("FindExperienceOwners", mock.Anything, expectedExperienceFilter).
		Return([]model.Identity{model.NewIdentity("x")}, nil)
	mockStore.On("FindEducationOwners", mock.Anything, mock.Anything).
		Return([]model.Identity{model.NewIdentity("x")}, nil)
	mockStore.On("GetProfilesByIDs", mock.Anything, []model.Identity{model.NewIdentity("x")}).
		Return([]model.Profile{{ID: model.NewIdentity("x")}}, nil)
	svc := NewSearchService(mockStore, constants.PaginationModeUnion)

	result, err := svc.SearchProfiles(context.Background(), "a.b", pagination.Page{Number: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, profileIDs(result.Data))
	mockStore.AssertExpectations(t)
}

func TestMergeProfiles_LastWriteKeepsFirstPosition(t *testing.T) {
	first := []model.Profile{
		{ID: model.NewIdentity("a"), Name: str("old")},
		{ID: model.NewIdentity("b")},
	}
	second := []model.Profile{
		{ID: model.NewIdentity("c")},
		{ID: model.NewIdentity("a"), Name: str("new")},
	}

	merged := mergeProfiles(first, second)
	assert.Equal(t, []string{"a", "b", "c"}, profileIDs(merged))
	assert.Equal(t, "new", *merged[0].Name)
}
