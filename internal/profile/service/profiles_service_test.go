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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	syscontext "github.com/wso2/professional-profile-service/internal/system/context"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
)

func TestGetProfiles_PagesCoverTotalWithoutGaps(t *testing.T) {
	f := newFixture(t)
	svc := NewProfilesService(f.store, 0)

	for _, perPage := range []int{1, 2, 3, 5, 10} {
		var seen []string
		first, err := svc.GetProfiles(context.Background(), pagination.Page{Number: 1, PerPage: perPage})
		require.NoError(t, err)
		total := first.Total

		for page := 1; len(seen) < int(total); page++ {
			result, err := svc.GetProfiles(context.Background(), pagination.Page{Number: page, PerPage: perPage})
			require.NoError(t, err)
			require.NotEmpty(t, result.Data)
			assert.LessOrEqual(t, len(result.Data), perPage)
			assert.Equal(t, page, result.Page)
			assert.Equal(t, perPage, result.PerPage)
			seen = append(seen, profileIDs(result.Data)...)
		}
		assert.Equal(t, []string{f.hex(0), f.hex(1), f.hex(2), f.hex(3), f.hex(4)}, seen)
	}
}

func TestGetProfiles_PageBeyondEndIsEmpty(t *testing.T) {
	f := newFixture(t)
	svc := NewProfilesService(f.store, 0)

	result, err := svc.GetProfiles(context.Background(), pagination.Page{Number: 4, PerPage: 2})
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(5), result.Total)
}

func TestGetProfiles_CachesTotal(t *testing.T) {
	f := newFixture(t)
	cached := NewProfilesService(f.store, time.Minute)
	uncached := NewProfilesService(f.store, 0)
	page := pagination.Page{Number: 1, PerPage: 10}

	result, err := cached.GetProfiles(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)

	f.insert(t, constants.ProfileCollection, model.Profile{ID: model.NewIdentity("late")})

	result, err = cached.GetProfiles(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	assert.Len(t, result.Data, 6)

	result, err = uncached.GetProfiles(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Total)
}

func TestGetProfiles_CountFailure(t *testing.T) {
	mockStore := new(MockProfileStore)
	mockStore.On("CountProfiles", mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))
	svc := NewProfilesService(mockStore, 0)

	ctx := syscontext.WithTraceID(context.Background(), "trace-1")
	_, err := svc.GetProfiles(ctx, pagination.Page{Number: 1, PerPage: 10})

	var serverErr *errors2.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, errors2.ErrWhileCountingProfiles.Code, serverErr.Code)
	assert.Equal(t, "trace-1", serverErr.TraceID)
	mockStore.AssertNotCalled(t, "FindProfiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile_AssemblesChildren(t *testing.T) {
	f := newFixture(t)
	svc := NewProfilesService(f.store, 0)

	tests := []struct {
		index       int
		experiences int
		educations  int
	}{
		{index: 0, experiences: 0, educations: 0},
		{index: 1, experiences: 2, educations: 0},
		{index: 2, experiences: 0, educations: 2},
		{index: 3, experiences: 1, educations: 0},
	}

	for _, tt := range tests {
		t.Run(f.hex(tt.index), func(t *testing.T) {
			detail, err := svc.GetProfile(context.Background(), f.hex(tt.index))
			require.NoError(t, err)

			assert.Equal(t, f.hex(tt.index), detail.Profile.ID.String())
			require.Len(t, detail.Experiences, tt.experiences)
			require.Len(t, detail.Educations, tt.educations)
			assert.NotNil(t, detail.Experiences)
			assert.NotNil(t, detail.Educations)
			for _, exp := range detail.Experiences {
				assert.Equal(t, f.hex(tt.index), exp.Profile.String())
				assert.False(t, exp.ID.IsZero())
			}
			for _, edu := range detail.Educations {
				assert.Equal(t, f.hex(tt.index), edu.Profile.String())
			}
		})
	}
}

func TestGetProfile_StringIdentity(t *testing.T) {
	f := newFixture(t)
	f.insert(t, constants.ProfileCollection, model.Profile{ID: model.NewIdentity("ada-lovelace"), Name: str("Ada")})
	f.insert(t, constants.ExperienceCollection, model.Experience{
		Profile: model.NewIdentity("ada-lovelace"), Role: str("Programmer")})
	svc := NewProfilesService(f.store, 0)

	detail, err := svc.GetProfile(context.Background(), "ada-lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada", *detail.Profile.Name)
	require.Len(t, detail.Experiences, 1)
	assert.Equal(t, "ada-lovelace", detail.Experiences[0].Profile.String())
}

func TestGetProfile_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewProfilesService(f.store, 0)

	for _, id := range []string{"000000000000000000000000", "no-such-profile"} {
		detail, err := svc.GetProfile(context.Background(), id)
		assert.Nil(t, detail)

		var clientErr *errors2.ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
		assert.Equal(t, "Profile not found", clientErr.Message)
	}
}

func TestGetProfile_ChildFailureIsServerError(t *testing.T) {
	mockStore := new(MockProfileStore)
	profile := &model.Profile{ID: model.NewIdentity("p")}
	mockStore.On("GetProfile", mock.Anything, model.NewIdentity("p")).Return(profile, nil)
	mockStore.On("GetExperiences", mock.Anything, profile.ID).Return([]model.Experience{}, nil)
	mockStore.On("GetEducations", mock.Anything, profile.ID).
		Return([]model.Education(nil), errors.New("cursor killed"))
	svc := NewProfilesService(mockStore, 0)

	_, err := svc.GetProfile(context.Background(), "p")

	var serverErr *errors2.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, errors2.ErrWhileFetchingEducations.Code, serverErr.Code)
	mockStore.AssertExpectations(t)
}
