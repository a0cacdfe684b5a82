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

package model

// Profile is the normalized person record. ID is shared with the source export and
// is the foreign key carried by experiences and educations.
type Profile struct {
	ID         Identity `json:"_id" bson:"_id"`
	Name       *string  `json:"name" bson:"name"`
	Position   *string  `json:"position" bson:"position"`
	Location   *string  `json:"location" bson:"location"`
	OpenToWork bool     `json:"open_to_work" bson:"open_to_work"`
	About      *string  `json:"about" bson:"about"`
	URL        *string  `json:"url" bson:"url"`
}

// Experience is one employment entry owned by a profile.
type Experience struct {
	ID          Identity `json:"_id" bson:"_id,omitempty"`
	Profile     Identity `json:"profile" bson:"profile"`
	CompanyPage *string  `json:"company_page" bson:"company_page"`
	Role        *string  `json:"role" bson:"role"`
	WorkAt      *string  `json:"work_at" bson:"work_at"`
	Duration    *string  `json:"duration" bson:"duration"`
	Location    *string  `json:"location" bson:"location"`
	// The stored field name is role_summery in existing collections.
	RoleSummary *string `json:"role_summery" bson:"role_summery"`
}

// Education is one academic entry owned by a profile. Grade and Skills are reserved:
// they are written as null and kept out of the read projection.
type Education struct {
	ID             Identity `json:"_id" bson:"_id,omitempty"`
	Profile        Identity `json:"profile" bson:"profile"`
	UniversityURL  *string  `json:"university_url" bson:"university_url"`
	UniversityName *string  `json:"university_name" bson:"university_name"`
	Degree         *string  `json:"degree" bson:"degree"`
	FieldOfStudy   *string  `json:"field_of_study" bson:"field_of_study"`
	StartDate      *string  `json:"start_date" bson:"start_date"`
	EndDate        *string  `json:"end_date" bson:"end_date"`
	Grade          *string  `json:"-" bson:"grade"`
	Skills         *string  `json:"-" bson:"skills"`
}
