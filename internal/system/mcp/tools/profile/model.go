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

import "github.com/wso2/professional-profile-service/internal/profile/model"

// search_profiles
type SearchProfilesInput struct {
	Query   string `json:"query" jsonschema:"free text matched against location and position and against employers, roles, universities and fields of study"`
	Page    int    `json:"page,omitempty" jsonschema:"1-based page number, defaults to 1"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"page size, defaults to the service default"`
}

type SearchProfilesOutput struct {
	Profiles []ProfileSummary `json:"profiles"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Total    int64            `json:"total"`
}

// get_profile
type GetProfileInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier as returned by search_profiles"`
}

type GetProfileOutput struct {
	Profile     ProfileSummary      `json:"profile"`
	Experiences []ExperienceSummary `json:"experiences"`
	Educations  []EducationSummary  `json:"educations"`
}

type ProfileSummary struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Location   *string `json:"location"`
	OpenToWork bool    `json:"open_to_work"`
	About      *string `json:"about"`
	URL        *string `json:"url"`
}

type ExperienceSummary struct {
	Role        *string `json:"role"`
	WorkAt      *string `json:"work_at"`
	CompanyPage *string `json:"company_page"`
	Duration    *string `json:"duration"`
	Location    *string `json:"location"`
	Summary     *string `json:"summary"`
}

type EducationSummary struct {
	UniversityName *string `json:"university_name"`
	UniversityURL  *string `json:"university_url"`
	Degree         *string `json:"degree"`
	FieldOfStudy   *string `json:"field_of_study"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
}

func toProfileSummary(p model.Profile) ProfileSummary {
	return ProfileSummary{
		ID:         p.ID.String(),
		Name:       p.Name,
		Position:   p.Position,
		Location:   p.Location,
		OpenToWork: p.OpenToWork,
		About:      p.About,
		URL:        p.URL,
	}
}

func toProfileSummaries(profiles []model.Profile) []ProfileSummary {
	summaries := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, toProfileSummary(p))
	}
	return summaries
}

func toExperienceSummaries(experiences []model.Experience) []ExperienceSummary {
	summaries := make([]ExperienceSummary, 0, len(experiences))
	for _, e := range experiences {
		summaries = append(summaries, ExperienceSummary{
			Role:        e.Role,
			WorkAt:      e.WorkAt,
			CompanyPage: e.CompanyPage,
			Duration:    e.Duration,
			Location:    e.Location,
			Summary:     e.RoleSummary,
		})
	}
	return summaries
}

func toEducationSummaries(educations []model.Education) []EducationSummary {
	summaries := make([]EducationSummary, 0, len(educations))
	for _, e := range educations {
		summaries = append(summaries, EducationSummary{
			UniversityName: e.UniversityName,
			UniversityURL:  e.UniversityURL,
			Degree:         e.Degree,
			FieldOfStudy:   e.FieldOfStudy,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
		})
	}
	return summaries
}
