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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/wso2/professional-profile-service/internal/system/errors"
	"github.com/wso2/professional-profile-service/internal/system/log"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleError sends an HTTP error response based on the provided error. Client errors
// carry their message and code; anything else is logged and reported as a bare 500.
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		WriteJSON(w, clientError.StatusCode, errorResponse{
			Error: clientError.Message,
			Code:  clientError.Code,
		})
		return
	}

	logger := log.GetLogger()
	var serverError *customerrors.ServerError
	if errors.As(err, &serverError) {
		logger.Error(serverError.Message, log.String("code", serverError.Code),
			log.String("traceId", serverError.TraceID), log.Error(serverError.Err))
	} else {
		logger.Error("Unhandled error while serving request", log.Error(err))
	}
	WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
