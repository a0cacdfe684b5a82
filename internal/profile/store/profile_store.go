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

package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"github.com/wso2/professional-profile-service/internal/system/database"
	"go.mongodb.org/mongo-driver/bson"
)

// ProfileStoreInterface is the read access the profile services need.
type ProfileStoreInterface interface {
	FindProfiles(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Profile, error)
	CountProfiles(ctx context.Context, filter bson.M) (int64, error)
	GetProfile(ctx context.Context, id model.Identity) (*model.Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []model.Identity) ([]model.Profile, error)
	GetExperiences(ctx context.Context, owner model.Identity) ([]model.Experience, error)
	GetEducations(ctx context.Context, owner model.Identity) ([]model.Education, error)
	FindExperienceOwners(ctx context.Context, filter bson.M) ([]model.Identity, error)
	FindEducationOwners(ctx context.Context, filter bson.M) ([]model.Identity, error)
}

// ProfileStore reads profiles and their child records through a RecordStore.
type ProfileStore struct {
	records database.RecordStore
}

func NewProfileStore(records database.RecordStore) *ProfileStore {
	return &ProfileStore{records: records}
}

// FindProfiles returns matching profiles in store order. Zero skip or limit disables it.
func (s *ProfileStore) FindProfiles(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Profile, error) {
	profiles := []model.Profile{}
	opts := &database.FindOptions{Projection: ProfileProjection, Skip: skip, Limit: limit}
	if err := s.records.Find(ctx, constants.ProfileCollection, filter, opts, &profiles); err != nil {
		return nil, errors.Wrap(err, "find profiles")
	}
	return nonNil(profiles), nil
}

func (s *ProfileStore) CountProfiles(ctx context.Context, filter bson.M) (int64, error) {
	total, err := s.records.Count(ctx, constants.ProfileCollection, filter)
	if err != nil {
		return 0, errors.Wrap(err, "count profiles")
	}
	return total, nil
}

// GetProfile returns database.ErrNotFound when no profile has the identity.
func (s *ProfileStore) GetProfile(ctx context.Context, id model.Identity) (*model.Profile, error) {
	var profile model.Profile
	filter := bson.M{constants.IdField: id.Value()}
	if err := s.records.FindOne(ctx, constants.ProfileCollection, filter, ProfileProjection, &profile); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "get profile %s", id)
	}
	return &profile, nil
}

func (s *ProfileStore) GetProfilesByIDs(ctx context.Context, ids []model.Identity) ([]model.Profile, error) {
	if len(ids) == 0 {
		return []model.Profile{}, nil
	}
	filter := bson.M{constants.IdField: bson.M{"$in": model.IdentityValues(ids)}}
	return s.FindProfiles(ctx, filter, 0, 0)
}

func (s *ProfileStore) GetExperiences(ctx context.Context, owner model.Identity) ([]model.Experience, error) {
	experiences := []model.Experience{}
	opts := &database.FindOptions{Projection: ExperienceProjection}
	filter := bson.M{constants.ProfileRefField: owner.Value()}
	if err := s.records.Find(ctx, constants.ExperienceCollection, filter, opts, &experiences); err != nil {
		return nil, errors.Wrapf(err, "find experiences of %s", owner)
	}
	return nonNil(experiences), nil
}

func (s *ProfileStore) GetEducations(ctx context.Context, owner model.Identity) ([]model.Education, error) {
	educations := []model.Education{}
	opts := &database.FindOptions{Projection: EducationProjection}
	filter := bson.M{constants.ProfileRefField: owner.Value()}
	if err := s.records.Find(ctx, constants.EducationCollection, filter, opts, &educations); err != nil {
		return nil, errors.Wrapf(err, "find educations of %s", owner)
	}
	return nonNil(educations), nil
}

// FindExperienceOwners returns the owning profile of every matching experience, in store order.
func (s *ProfileStore) FindExperienceOwners(ctx context.Context, filter bson.M) ([]model.Identity, error) {
	return s.findOwners(ctx, constants.ExperienceCollection, filter)
}

// FindEducationOwners returns the owning profile of every matching education, in store order.
func (s *ProfileStore) FindEducationOwners(ctx context.Context, filter bson.M) ([]model.Identity, error) {
	return s.findOwners(ctx, constants.EducationCollection, filter)
}

func (s *ProfileStore) findOwners(ctx context.Context, collection string, filter bson.M) ([]model.Identity, error) {
	var refs []struct {
		Profile model.Identity `bson:"profile"`
	}
	opts := &database.FindOptions{Projection: ownerProjection}
	if err := s.records.Find(ctx, collection, filter, opts, &refs); err != nil {
		return nil, errors.Wrapf(err, "find %s owners", collection)
	}
	owners := make([]model.Identity, 0, len(refs))
	for _, ref := range refs {
		if !ref.Profile.IsZero() {
			owners = append(owners, ref.Profile)
		}
	}
	return owners, nil
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
