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

package transformer

import (
	"time"

	"github.com/wso2/professional-profile-service/internal/profile/model"
	"go.mongodb.org/mongo-driver/bson"
)

// Shape identifies the layout of a source export.
type Shape int

const (
	// ShapeFlat is the original export: scalar fields at every level.
	ShapeFlat Shape = iota
	// ShapeNested is the later export: title, company, school and location are sub-documents.
	ShapeNested
)

func (s Shape) String() string {
	if s == ShapeNested {
		return "nested"
	}
	return "flat"
}

// DetectShape classifies a source document from its top-level fields and its already
// decoded child entries.
func DetectShape(doc bson.M, experiences, educations []bson.M) Shape {
	if isDoc(doc["location"]) {
		return ShapeNested
	}
	if _, hasUsername := doc["username"]; hasUsername {
		if _, hasHandle := doc["public_identifier"]; !hasHandle {
			return ShapeNested
		}
	}
	for _, exp := range experiences {
		if isDoc(exp["title"]) || isDoc(exp["company"]) {
			return ShapeNested
		}
	}
	for _, edu := range educations {
		if isDoc(edu["school"]) {
			return ShapeNested
		}
	}
	return ShapeFlat
}

// extractor maps one source shape onto the target records.
type extractor interface {
	profile(id model.Identity, doc bson.M) model.Profile
	experience(owner model.Identity, entry bson.M, now time.Time) model.Experience
	education(owner model.Identity, entry bson.M) model.Education
}

func extractorFor(shape Shape) extractor {
	if shape == ShapeNested {
		return nestedExtractor{}
	}
	return flatExtractor{}
}

type flatExtractor struct{}

func (flatExtractor) profile(id model.Identity, doc bson.M) model.Profile {
	return model.Profile{
		ID:         id,
		Name:       Text(doc["full_name"]),
		Position:   Text(doc["occupation"]),
		Location:   ComposeLocation(Text(doc["city"]), Text(doc["state"])),
		OpenToWork: false,
		About:      Text(doc["summary"]),
		URL:        ProfileURL(Text(doc["public_identifier"])),
	}
}

func (flatExtractor) experience(owner model.Identity, entry bson.M, now time.Time) model.Experience {
	return model.Experience{
		Profile:     owner,
		CompanyPage: Text(entry["company_linkedin_profile_url"]),
		Role:        Text(entry["title"]),
		WorkAt:      Text(entry["company"]),
		Duration:    FormatDuration(entry["starts_at"], entry["ends_at"], now),
		Location:    Text(entry["location"]),
		RoleSummary: Text(entry["description"]),
	}
}

func (flatExtractor) education(owner model.Identity, entry bson.M) model.Education {
	return model.Education{
		Profile:        owner,
		UniversityURL:  Text(entry["school_linkedin_profile_url"]),
		UniversityName: Text(entry["school"]),
		Degree:         Text(entry["degree_name"]),
		FieldOfStudy:   Text(entry["field_of_study"]),
		StartDate:      FormatDate(entry["starts_at"]),
		EndDate:        FormatDate(entry["ends_at"]),
	}
}

type nestedExtractor struct{}

func (nestedExtractor) profile(id model.Identity, doc bson.M) model.Profile {
	location := Text(doc["location"])
	if isDoc(doc["location"]) {
		location = ComposeLocation(Text(lookup(doc, "location", "city")), Text(lookup(doc, "location", "state")))
	}
	return model.Profile{
		ID:         id,
		Name:       Text(doc["full_name"]),
		Position:   firstText(doc, "headline", "occupation"),
		Location:   location,
		OpenToWork: false,
		About:      firstText(doc, "about", "summary"),
		URL:        ProfileURL(firstText(doc, "username", "public_identifier")),
	}
}

func (nestedExtractor) experience(owner model.Identity, entry bson.M, now time.Time) model.Experience {
	duration := Text(entry["duration"])
	if duration == nil {
		duration = FormatDuration(entry["starts_at"], entry["ends_at"], now)
	}
	return model.Experience{
		Profile:     owner,
		CompanyPage: Text(lookup(entry, "company", "url")),
		Role:        nameOf(entry["title"]),
		WorkAt:      nameOf(entry["company"]),
		Duration:    duration,
		Location: ComposeLocation(
			Text(lookup(entry, "company", "location", "city")),
			Text(lookup(entry, "company", "location", "country")),
		),
		RoleSummary: Text(entry["description"]),
	}
}

func (nestedExtractor) education(owner model.Identity, entry bson.M) model.Education {
	field := JoinMajors(entry["majors"])
	if field == nil {
		field = Text(entry["field_of_study"])
	}
	return model.Education{
		Profile:        owner,
		UniversityURL:  Text(lookup(entry, "school", "url")),
		UniversityName: nameOf(entry["school"]),
		Degree:         firstText(entry, "degree", "degree_name"),
		FieldOfStudy:   field,
		StartDate:      FormatDate(entry["starts_at"]),
		EndDate:        FormatDate(entry["ends_at"]),
	}
}

// nameOf reads the name of a nested object, accepting a bare scalar in its place.
func nameOf(v interface{}) *string {
	if doc, ok := asDoc(v); ok {
		return Text(doc["name"])
	}
	return Text(v)
}
