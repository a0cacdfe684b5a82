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
	"fmt"
	"strings"
	"time"
)

const (
	monthYearLayout = "Jan 2006"
	presentToken    = "Present"
)

// parseDate reads {year, month, day} components. Day is optional and defaults to 1.
func parseDate(v interface{}) (time.Time, bool) {
	components, ok := asDoc(v)
	if !ok {
		return time.Time{}, false
	}
	year, ok := asInt(components["year"])
	if !ok || year < 1 || year > 9999 {
		return time.Time{}, false
	}
	month, ok := asInt(components["month"])
	if !ok || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day := 1
	if raw, present := components["day"]; present && raw != nil {
		if day, ok = asInt(raw); !ok {
			return time.Time{}, false
		}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowing days into the next month.
	if day < 1 || date.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return date, true
}

// FormatDate renders date components as "Mon YYYY", or nil when they are absent or malformed.
func FormatDate(v interface{}) *string {
	date, ok := parseDate(v)
	if !ok {
		return nil
	}
	formatted := date.Format(monthYearLayout)
	return &formatted
}

// FormatDuration renders "<start> - <end|Present> · N mos.". An absent, null or empty
// end is measured against now. The month count ignores the day of month.
func FormatDuration(start, end interface{}, now time.Time) *string {
	startDate, ok := parseDate(start)
	if !ok {
		return nil
	}

	endDate := now
	endLabel := presentToken
	if !isEmpty(end) {
		if endDate, ok = parseDate(end); !ok {
			return nil
		}
		endLabel = endDate.Format(monthYearLayout)
	}

	months := (endDate.Year()-startDate.Year())*12 + int(endDate.Month()) - int(startDate.Month())
	duration := fmt.Sprintf("%s - %s · %d mos.", startDate.Format(monthYearLayout), endLabel, months)
	return &duration
}

// isEmpty reports whether a source value carries nothing: null, an empty document,
// an empty list or blank text.
func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	if doc, ok := asDoc(v); ok {
		return len(doc) == 0
	}
	if list, ok := asList(v); ok {
		return len(list) == 0
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
