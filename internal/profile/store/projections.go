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

import "go.mongodb.org/mongo-driver/bson"

// Read projections. Every read of a profile collection is limited to these fields.

var ProfileProjection = bson.M{
	"_id":          1,
	"name":         1,
	"position":     1,
	"location":     1,
	"open_to_work": 1,
	"about":        1,
	"url":          1,
}

var ExperienceProjection = bson.M{
	"profile":      1,
	"company_page": 1,
	"role":         1,
	"work_at":      1,
	"duration":     1,
	"location":     1,
	"role_summery": 1,
}

// EducationProjection leaves out the reserved grade and skills fields.
var EducationProjection = bson.M{
	"profile":         1,
	"university_url":  1,
	"university_name": 1,
	"degree":          1,
	"field_of_study":  1,
	"start_date":      1,
	"end_date":        1,
}

// ownerProjection reads only the owning profile reference of a child record.
var ownerProjection = bson.M{
	"profile": 1,
	"_id":     0,
}
