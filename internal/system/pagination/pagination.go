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

package pagination

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/wso2/professional-profile-service/internal/system/constants"
)

// Page is a 1-based page request.
type Page struct {
	Number  int
	PerPage int
}

func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.PerPage)
}

func (p Page) Limit() int64 {
	return int64(p.PerPage)
}

// Slice returns the window of n items covered by the page as [start, end). A window
// that starts past n, or whose offset is not representable, is empty.
func (p Page) Slice(n int) (int, int) {
	start := p.Skip()
	if start < 0 || start >= int64(n) {
		return n, n
	}
	end := start + p.Limit()
	if end > int64(n) {
		end = int64(n)
	}
	return int(start), int(end)
}

// NewPage builds a page from already parsed values. Zero values take the defaults;
// negative values are rejected and perPage is clamped to maxPerPage.
func NewPage(number, perPage, defaultPerPage, maxPerPage int) (Page, error) {
	if number < 0 || perPage < 0 {
		return Page{}, fmt.Errorf("invalid page %d with per_page %d", number, perPage)
	}
	if number == 0 {
		number = constants.DefaultPage
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := Page{Number: number, PerPage: perPage}
	if err := page.validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// ParsePage reads page and per_page. Missing values take the defaults; per_page is
// clamped to maxPerPage. Non-numeric or non-positive values are rejected.
func ParsePage(r *http.Request, defaultPerPage, maxPerPage int) (Page, error) {
	page := Page{Number: constants.DefaultPage, PerPage: defaultPerPage}

	if raw := r.URL.Query().Get(constants.PageParam); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("invalid page %q", raw)
		}
		page.Number = v
	}

	if raw := r.URL.Query().Get(constants.PerPageParam); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("invalid per_page %q", raw)
		}
		if v > maxPerPage {
			v = maxPerPage
		}
		page.PerPage = v
	}

	if err := page.validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// validate rejects pages whose end offset does not fit in an int64.
func (p Page) validate() error {
	if p.PerPage < 1 {
		return fmt.Errorf("invalid per_page %d", p.PerPage)
	}
	if int64(p.Number) > math.MaxInt64/int64(p.PerPage) {
		return fmt.Errorf("page %d is out of range for per_page %d", p.Number, p.PerPage)
	}
	return nil
}
