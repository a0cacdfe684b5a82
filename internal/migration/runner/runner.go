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

package runner

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wso2/professional-profile-service/internal/migration/transformer"
	"github.com/wso2/professional-profile-service/internal/profile/model"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	"github.com/wso2/professional-profile-service/internal/system/database"
	"github.com/wso2/professional-profile-service/internal/system/database/lock"
	"github.com/wso2/professional-profile-service/internal/system/log"
	"github.com/wso2/professional-profile-service/internal/system/metrics"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrMigrationInProgress is returned when another run holds the migration lock.
var ErrMigrationInProgress = errors.New("another migration run is in progress")

var errLimitReached = errors.New("document limit reached")

const initiatorID = "profile-migration"

// Options tune a migration run.
type Options struct {
	// DryRun transforms and counts without writing to the target.
	DryRun bool
	// Limit stops the run after this many source documents. Zero migrates everything.
	Limit int
	// EnsureIndexes creates the profile reference indexes on the child collections.
	EnsureIndexes    bool
	SourceCollection string
}

// Stats summarizes a run.
type Stats struct {
	Documents     int `json:"documents"`
	Profiles      int `json:"profiles"`
	Experiences   int `json:"experiences"`
	Educations    int `json:"educations"`
	SectionErrors int `json:"sectionErrors"`
}

// Runner copies every source export into the profile collections, once and in store order.
type Runner struct {
	Source      database.RecordStore
	Target      database.RecordStore
	Transformer *transformer.Transformer
	Logger      *log.Logger
	// Lock guards against concurrent runs. A nil Lock disables the guard.
	Lock    lock.DistributedLock
	Options Options
}

// Run migrates the source collection. Any store or transform error aborts the run; records
// written before the failure stay in place.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	logger := r.logger()
	source := r.sourceCollection()

	if r.Lock != nil && !r.Options.DryRun {
		acquired, err := r.Lock.Acquire(ctx, constants.MigrationLockName, constants.MigrationLockTTL)
		if err != nil {
			return Stats{}, errors.Wrap(err, "failed to acquire migration lock")
		}
		if !acquired {
			metrics.MigrationRunsTotal.WithLabelValues("locked").Inc()
			return Stats{}, ErrMigrationInProgress
		}
		defer func() {
			if err := r.Lock.Release(context.WithoutCancel(ctx), constants.MigrationLockName); err != nil {
				logger.Warn("Failed to release migration lock", log.Error(err))
			}
		}()
	}

	r.audit(logger, log.ActionMigrationStarted, source, map[string]interface{}{
		"dryRun": r.Options.DryRun,
		"limit":  r.Options.Limit,
	})
	logger.Info("Starting profile migration", log.String("source", source),
		log.Any("dryRun", r.Options.DryRun), log.Int("limit", r.Options.Limit))

	if err := r.ensureIndexes(ctx, logger); err != nil {
		return Stats{}, r.fail(logger, source, Stats{}, err)
	}

	var stats Stats
	err := r.Source.ForEach(ctx, source, bson.M{}, func(doc bson.M) error {
		if r.Options.Limit > 0 && stats.Documents >= r.Options.Limit {
			return errLimitReached
		}
		return r.migrateDocument(ctx, logger, doc, &stats)
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return stats, r.fail(logger, source, stats, err)
	}

	metrics.MigrationRunsTotal.WithLabelValues("completed").Inc()
	logger.Info("Migration completed successfully",
		log.Int("documents", stats.Documents),
		log.Int("profiles", stats.Profiles),
		log.Int("experiences", stats.Experiences),
		log.Int("educations", stats.Educations),
		log.Int("sectionErrors", stats.SectionErrors))
	r.audit(logger, log.ActionMigrationCompleted, source, stats)
	return stats, nil
}

func (r *Runner) migrateDocument(ctx context.Context, logger *log.Logger, doc bson.M, stats *Stats) error {
	result, err := r.Transformer.Transform(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to transform source document #%d", stats.Documents+1)
	}
	stats.Documents++
	metrics.MigrationDocumentsTotal.Inc()

	for _, sectionErr := range result.SectionErrors {
		stats.SectionErrors++
		section := "unknown"
		var se *transformer.SectionError
		if errors.As(sectionErr, &se) {
			section = se.Section
		}
		metrics.MigrationSectionErrorsTotal.WithLabelValues(section).Inc()
	}

	profileLogger := logger.With(log.String("profileId", result.Profile.ID.String()),
		log.String("name", displayName(result.Profile)))

	if r.Options.DryRun {
		stats.Profiles++
		stats.Experiences += len(result.Experiences)
		stats.Educations += len(result.Educations)
		profileLogger.Debug("Transformed profile (dry run)",
			log.Int("experiences", len(result.Experiences)), log.Int("educations", len(result.Educations)))
		return nil
	}

	if _, err := r.Target.InsertOne(ctx, constants.ProfileCollection, result.Profile); err != nil {
		return errors.Wrapf(err, "failed to insert profile %s", result.Profile.ID)
	}
	stats.Profiles++
	metrics.MigrationRecordsTotal.WithLabelValues(constants.ProfileCollection).Inc()
	profileLogger.Info("Inserted profile")

	if len(result.Experiences) > 0 {
		if err := r.insertBatch(ctx, constants.ExperienceCollection, toRecords(result.Experiences)); err != nil {
			return errors.Wrapf(err, "failed to insert experiences of profile %s", result.Profile.ID)
		}
		stats.Experiences += len(result.Experiences)
		profileLogger.Info("Inserted experiences", log.Int("count", len(result.Experiences)))
	}

	if len(result.Educations) > 0 {
		if err := r.insertBatch(ctx, constants.EducationCollection, toRecords(result.Educations)); err != nil {
			return errors.Wrapf(err, "failed to insert educations of profile %s", result.Profile.ID)
		}
		stats.Educations += len(result.Educations)
		profileLogger.Info("Inserted educations", log.Int("count", len(result.Educations)))
	}
	return nil
}

func (r *Runner) insertBatch(ctx context.Context, collection string, records []interface{}) error {
	if _, err := r.Target.InsertMany(ctx, collection, records); err != nil {
		return err
	}
	metrics.MigrationRecordsTotal.WithLabelValues(collection).Add(float64(len(records)))
	return nil
}

func (r *Runner) ensureIndexes(ctx context.Context, logger *log.Logger) error {
	if !r.Options.EnsureIndexes || r.Options.DryRun {
		return nil
	}
	indexer, ok := r.Target.(database.IndexManager)
	if !ok {
		logger.Debug("Target store does not manage indexes, skipping index creation")
		return nil
	}
	for _, collection := range []string{constants.ExperienceCollection, constants.EducationCollection} {
		if err := indexer.EnsureIndex(ctx, collection, constants.ProfileRefField); err != nil {
			return errors.Wrapf(err, "failed to create %s index on %s", constants.ProfileRefField, collection)
		}
	}
	return nil
}

func (r *Runner) fail(logger *log.Logger, source string, stats Stats, err error) error {
	metrics.MigrationRunsTotal.WithLabelValues("failed").Inc()
	logger.Error("Error during migration", log.Error(err), log.Int("documents", stats.Documents))
	r.audit(logger, log.ActionMigrationFailed, source, map[string]interface{}{
		"error":     err.Error(),
		"documents": stats.Documents,
	})
	return errors.Wrap(err, "migration aborted")
}

func (r *Runner) audit(logger *log.Logger, action, source string, data interface{}) {
	logger.Audit(log.AuditEvent{
		InitiatorID:   initiatorID,
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      source,
		TargetType:    log.TargetTypeCollection,
		ActionID:      action,
		Data:          data,
	})
}

func (r *Runner) sourceCollection() string {
	if r.Options.SourceCollection == "" {
		return constants.SourceProfileCollection
	}
	return r.Options.SourceCollection
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.GetLogger()
	}
	return r.Logger
}

func displayName(p model.Profile) string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

func toRecords[T any](items []T) []interface{} {
	records := make([]interface{}, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}
