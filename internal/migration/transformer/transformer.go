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
	"errors"
	"time"

	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/log"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrMissingIdentity is returned for a source document without an _id.
var ErrMissingIdentity = errors.New("source document has no _id")

// Result holds the target records produced from one source document.
type Result struct {
	Shape         Shape
	Profile       model.Profile
	Experiences   []model.Experience
	Educations    []model.Education
	SectionErrors []error
}

// Transformer maps raw source exports onto profiles, experiences and educations.
type Transformer struct {
	// Now is the reference instant for open-ended durations.
	Now    func() time.Time
	Logger *log.Logger
}

func NewTransformer(logger *log.Logger) *Transformer {
	return &Transformer{
		Now:    time.Now,
		Logger: logger,
	}
}

// Transform converts one source document. Only a missing identity fails the document;
// an undecodable child section is logged, recorded in SectionErrors and left empty.
func (t *Transformer) Transform(doc bson.M) (Result, error) {
	rawID, ok := doc["_id"]
	if !ok || rawID == nil {
		return Result{}, ErrMissingIdentity
	}
	id := model.NewIdentity(rawID)
	logger := t.logger().With(log.String("profileId", id.String()))

	var result Result
	experienceEntries, err := t.entries(logger, SectionExperiences, sectionValue(doc, "experiences", "experience"))
	if err != nil {
		result.SectionErrors = append(result.SectionErrors, err)
	}
	educationEntries, err := t.entries(logger, SectionEducations, sectionValue(doc, "education", "educations"))
	if err != nil {
		result.SectionErrors = append(result.SectionErrors, err)
	}

	result.Shape = DetectShape(doc, experienceEntries, educationEntries)
	extract := extractorFor(result.Shape)
	now := t.now()

	result.Profile = extract.profile(id, doc)
	for _, entry := range experienceEntries {
		result.Experiences = append(result.Experiences, extract.experience(id, entry, now))
	}
	for _, entry := range educationEntries {
		result.Educations = append(result.Educations, extract.education(id, entry))
	}
	return result, nil
}

func (t *Transformer) entries(logger *log.Logger, section string, raw interface{}) ([]bson.M, error) {
	entries, skipped, err := sectionEntries(raw)
	if err != nil {
		sectionErr := &SectionError{Section: section, Err: err}
		logger.Error("Failed to extract section, skipping it", log.String("section", section), log.Error(err))
		return nil, sectionErr
	}
	if skipped > 0 {
		logger.Warn("Skipped section entries that are not documents",
			log.String("section", section), log.Int("skipped", skipped))
	}
	return entries, nil
}

func (t *Transformer) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

func (t *Transformer) logger() *log.Logger {
	if t.Logger == nil {
		return log.GetLogger()
	}
	return t.Logger
}
