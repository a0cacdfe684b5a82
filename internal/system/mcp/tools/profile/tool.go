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

package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wso2/professional-profile-service/internal/profile/service"
	errors2 "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/log"
	"github.com/wso2/professional-profile-service/internal/system/pagination"
)

type Tools struct {
	profiles       service.ProfilesServiceInterface
	search         service.SearchServiceInterface
	defaultPerPage int
	maxPerPage     int
}

func NewTools(profiles service.ProfilesServiceInterface, search service.SearchServiceInterface,
	defaultPerPage, maxPerPage int) *Tools {
	return &Tools{
		profiles:       profiles,
		search:         search,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
	}
}

func (t *Tools) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_profiles",
		Description: "Search professional profiles by free text with page based pagination.",
		Annotations: &mcp.ToolAnnotations{
			Title:        "Search Profiles",
			ReadOnlyHint: true,
		},
	}, t.searchProfiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Retrieve a professional profile with its experiences and educations.",
		Annotations: &mcp.ToolAnnotations{
			Title:        "Get Profile",
			ReadOnlyHint: true,
		},
	}, t.getProfile)
}

func (t *Tools) searchProfiles(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input SearchProfilesInput,
) (*mcp.CallToolResult, SearchProfilesOutput, error) {

	if strings.TrimSpace(input.Query) == "" {
		return nil, SearchProfilesOutput{}, fmt.Errorf("query is required")
	}
	page, err := pagination.NewPage(input.Page, input.PerPage, t.defaultPerPage, t.maxPerPage)
	if err != nil {
		return nil, SearchProfilesOutput{}, err
	}

	result, err := t.search.SearchProfiles(ctx, input.Query, page)
	if err != nil {
		return nil, SearchProfilesOutput{}, toolError("search profiles", err)
	}

	return nil, SearchProfilesOutput{
		Profiles: toProfileSummaries(result.Data),
		Page:     result.Page,
		PerPage:  result.PerPage,
		Total:    result.Total,
	}, nil
}

func (t *Tools) getProfile(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input GetProfileInput,
) (*mcp.CallToolResult, GetProfileOutput, error) {

	if strings.TrimSpace(input.ProfileID) == "" {
		return nil, GetProfileOutput{}, fmt.Errorf("profile_id is required")
	}

	detail, err := t.profiles.GetProfile(ctx, strings.TrimSpace(input.ProfileID))
	if err != nil {
		return nil, GetProfileOutput{}, toolError("fetch profile", err)
	}

	return nil, GetProfileOutput{
		Profile:     toProfileSummary(detail.Profile),
		Experiences: toExperienceSummaries(detail.Experiences),
		Educations:  toEducationSummaries(detail.Educations),
	}, nil
}

// toolError keeps client error messages and hides server error causes from the caller.
func toolError(action string, err error) error {
	var clientErr *errors2.ClientError
	if errors.As(err, &clientErr) {
		return fmt.Errorf("failed to %s: %s", action, clientErr.Message)
	}
	var serverErr *errors2.ServerError
	if errors.As(err, &serverErr) {
		log.GetLogger().Error("MCP tool call failed", log.String("action", action),
			log.String("traceId", serverErr.TraceID), log.Error(serverErr.Err))
		return fmt.Errorf("failed to %s: %s", action, serverErr.Message)
	}
	log.GetLogger().Error("MCP tool call failed", log.String("action", action), log.Error(err))
	return fmt.Errorf("failed to %s", action)
}
