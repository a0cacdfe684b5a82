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

	"go.mongodb.org/mongo-driver/bson"
)

const (
	SectionExperiences = "experiences"
	SectionEducations  = "educations"
)

// SectionError reports a child section that could not be extracted.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s section: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// DecodeSection decodes a string-encoded list of documents. JSON and Python-literal
// encodings are accepted. Empty text decodes to an empty section.
func DecodeSection(text string) ([]bson.M, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	normalized, err := normalizeLiteral(text)
	if err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}

	var holder struct {
		Items []bson.M `bson:"items"`
	}
	wrapped := make([]byte, 0, len(normalized)+10)
	wrapped = append(wrapped, `{"items":`...)
	wrapped = append(wrapped, normalized...)
	wrapped = append(wrapped, '}')
	if err := bson.UnmarshalExtJSON(wrapped, false, &holder); err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}
	return holder.Items, nil
}

// sectionValue returns the first present value among keys.
func sectionValue(doc bson.M, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := doc[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// sectionEntries resolves a raw section into its document entries. String values are
// decoded; entries that are not documents are returned as skipped.
func sectionEntries(raw interface{}) (entries []bson.M, skipped int, err error) {
	switch value := raw.(type) {
	case nil:
		return nil, 0, nil
	case string:
		entries, err = DecodeSection(value)
		return entries, 0, err
	}

	items, ok := asList(raw)
	if !ok {
		return nil, 0, fmt.Errorf("decode section: unsupported value of type %T", raw)
	}
	entries = make([]bson.M, 0, len(items))
	for _, item := range items {
		doc, ok := asDoc(item)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, doc)
	}
	return entries, skipped, nil
}
