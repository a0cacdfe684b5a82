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

package errors

const errorPrefix = "PRF-"

var (
	// Server error codes

	ErrWhileFetchingProfiles = ErrorMessage{
		Code:    errorPrefix + "50001",
		Message: "Error while fetching profiles.",
	}

	ErrWhileFetchingProfile = ErrorMessage{
		Code:    errorPrefix + "50002",
		Message: "Error while fetching profile.",
	}

	ErrWhileCountingProfiles = ErrorMessage{
		Code:    errorPrefix + "50003",
		Message: "Error while counting profiles.",
	}

	ErrWhileSearchingProfiles = ErrorMessage{
		Code:    errorPrefix + "50004",
		Message: "Error while searching profiles.",
	}

	ErrWhileFetchingExperiences = ErrorMessage{
		Code:    errorPrefix + "50005",
		Message: "Error while fetching experiences.",
	}

	ErrWhileFetchingEducations = ErrorMessage{
		Code:    errorPrefix + "50006",
		Message: "Error while fetching educations.",
	}

	// Client error codes

	ErrProfileNotFound = ErrorMessage{
		Code:        errorPrefix + "60001",
		Message:     "Profile not found",
		Description: "No profile exists for the given profile id.",
	}

	ErrQueryRequired = ErrorMessage{
		Code:        errorPrefix + "60002",
		Message:     "Query parameter is required",
		Description: "The search query must contain at least one non-whitespace character.",
	}

	ErrInvalidPagination = ErrorMessage{
		Code:        errorPrefix + "60003",
		Message:     "Invalid pagination parameters",
		Description: "page and per_page must be positive integers.",
	}
)
