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
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/profile/store"
	"github.com/wso2/professional-profile-service/internal/system/cache"
	syscontext "github.com/wso2/professional-profile-service/internal/system/context"
	"github.com/wso2/professional-profile-service/internal/system/database"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
	"go.mongodb.org/mongo-driver/bson"
)

const profileTotalCacheKey = "profiles:total"

// ProfilesServiceInterface defines the profile listing and detail operations.
type ProfilesServiceInterface interface {
	GetProfiles(ctx context.Context, page pagination.Page) (*model.ProfileListResponse, error)
	GetProfile(ctx context.Context, profileId string) (*model.ProfileDetailResponse, error)
}

// ProfilesService serves paginated listings and profile details.
type ProfilesService struct {
	store      store.ProfileStoreInterface
	countCache *cache.Cache
}

// NewProfilesService creates a ProfilesService. A positive countCacheTTL caches the
// unfiltered profile total for that long.
func NewProfilesService(profileStore store.ProfileStoreInterface, countCacheTTL time.Duration) *ProfilesService {

	return &ProfilesService{
		store:      profileStore,
		countCache: cache.NewCache(countCacheTTL),
	}
}

// GetProfiles returns one page of profiles in store order together with the total count.
func (ps *ProfilesService) GetProfiles(ctx context.Context, page pagination.Page) (*model.ProfileListResponse, error) {

	total, err := ps.totalProfiles(ctx)
	if err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileCountingProfiles, err, syscontext.GetTraceID(ctx))
	}

	profiles, err := ps.store.FindProfiles(ctx, bson.M{}, page.Skip(), page.Limit())
	if err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileFetchingProfiles, err, syscontext.GetTraceID(ctx))
	}

	return &model.ProfileListResponse{
		Data:    profiles,
		Page:    page.Number,
		PerPage: page.PerPage,
		Total:   total,
	}, nil
}

// GetProfile assembles a profile with all of its experiences and educations.
func (ps *ProfilesService) GetProfile(ctx context.Context, profileId string) (*model.ProfileDetailResponse, error) {

	traceID := syscontext.GetTraceID(ctx)
	id := model.ParseIdentity(profileId)

	profile, err := ps.store.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errors2.NewClientError(errors2.ErrProfileNotFound, http.StatusNotFound)
		}
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileFetchingProfile, err, traceID)
	}

	experiences, err := ps.store.GetExperiences(ctx, profile.ID)
	if err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileFetchingExperiences, err, traceID)
	}

	educations, err := ps.store.GetEducations(ctx, profile.ID)
	if err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileFetchingEducations, err, traceID)
	}

	return &model.ProfileDetailResponse{
		Profile:     *profile,
		Experiences: experiences,
		Educations:  educations,
	}, nil
}

func (ps *ProfilesService) totalProfiles(ctx context.Context) (int64, error) {
	if cached, found := ps.countCache.Get(profileTotalCacheKey); found {
		return cached.(int64), nil
	}
	total, err := ps.store.CountProfiles(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	ps.countCache.Set(profileTotalCacheKey, total)
	return total, nil
}
