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
	"regexp"
	"strings"

	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/profile/store"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	syscontext "github.com/wso2/professional-profile-service/internal/system/context"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// SearchServiceInterface defines free-text profile search.
type SearchServiceInterface interface {
	SearchProfiles(ctx context.Context, query string, page pagination.Page) (*model.ProfileSearchResponse, error)
}

// SearchService matches profiles directly and through their experiences and educations.
type SearchService struct {
	store          store.ProfileStoreInterface
	paginationMode string
}

// NewSearchService creates a SearchService. paginationMode is PaginationModeUnion or
// PaginationModeLegacy; anything else behaves as union.
func NewSearchService(profileStore store.ProfileStoreInterface, paginationMode string) *SearchService {

	return &SearchService{
		store:          profileStore,
		paginationMode: paginationMode,
	}
}

// SearchProfiles returns the deduplicated union of direct profile matches and the owners
// of matching experiences and educations. Direct matches come first.
func (ss *SearchService) SearchProfiles(ctx context.Context, query string,
	page pagination.Page) (*model.ProfileSearchResponse, error) {

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors2.NewClientError(errors2.ErrQueryRequired, http.StatusBadRequest)
	}
	pattern := regexp.QuoteMeta(query)

	var (
		direct            []model.Profile
		experienceOwners  []model.Identity
		educationOwners   []model.Identity
		directSkip, limit int64
	)
	if ss.paginationMode == constants.PaginationModeLegacy {
		directSkip, limit = page.Skip(), page.Limit()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		direct, err = ss.store.FindProfiles(gctx, profileFilter(query, pattern), directSkip, limit)
		return err
	})
	g.Go(func() error {
		var err error
		experienceOwners, err = ss.store.FindExperienceOwners(gctx, anyFieldMatches(pattern, "work_at", "role"))
		return err
	})
	g.Go(func() error {
		var err error
		educationOwners, err = ss.store.FindEducationOwners(gctx,
			anyFieldMatches(pattern, "university_name", "field_of_study"))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileSearchingProfiles, err, syscontext.GetTraceID(ctx))
	}

	resolved, err := ss.store.GetProfilesByIDs(ctx, uniqueIdentities(experienceOwners, educationOwners))
	if err != nil {
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrWhileSearchingProfiles, err, syscontext.GetTraceID(ctx))
	}

	merged := mergeProfiles(direct, resolved)
	start, end := page.Slice(len(merged))
	return &model.ProfileSearchResponse{
		Data:    merged[start:end],
		Page:    page.Number,
		PerPage: page.PerPage,
		Total:   int64(len(merged)),
		Query:   query,
	}, nil
}

// profileFilter matches location or position, and open_to_work when the query is a boolean literal.
func profileFilter(query, pattern string) bson.M {
	clauses := bson.A{
		regexMatch("location", pattern),
		regexMatch("position", pattern),
	}
	switch strings.ToLower(query) {
	case "true":
		clauses = append(clauses, bson.M{constants.OpenToWorkField: true})
	case "false":
		clauses = append(clauses, bson.M{constants.OpenToWorkField: false})
	}
	return bson.M{"$or": clauses}
}

func anyFieldMatches(pattern string, fields ...string) bson.M {
	clauses := make(bson.A, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, regexMatch(field, pattern))
	}
	return bson.M{"$or": clauses}
}

func regexMatch(field, pattern string) bson.M {
	return bson.M{field: bson.M{"$regex": pattern, "$options": "i"}}
}

// uniqueIdentities concatenates identity lists, dropping repeats and keeping first-seen order.
func uniqueIdentities(lists ...[]model.Identity) []model.Identity {
	seen := make(map[string]struct{})
	var unique []model.Identity
	for _, ids := range lists {
		for _, id := range ids {
			key := id.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, id)
		}
	}
	return unique
}

// mergeProfiles unions profile lists keyed by identity. A repeated profile keeps the
// position it was first seen at and takes the value seen last.
func mergeProfiles(lists ...[]model.Profile) []model.Profile {
	index := make(map[string]int)
	merged := []model.Profile{}
	for _, profiles := range lists {
		for _, profile := range profiles {
			key := profile.ID.String()
			if i, ok := index[key]; ok {
				merged[i] = profile
				continue
			}
			index[key] = len(merged)
			merged = append(merged, profile)
		}
	}
	return merged
}
