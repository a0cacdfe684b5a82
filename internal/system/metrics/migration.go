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

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Migration metrics.
var (
	MigrationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "migration_runs_total",
			Help:      "Total migration runs by outcome",
		},
		[]string{"outcome"}, // "completed" / "failed" / "locked"
	)

	MigrationDocumentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "migration_documents_total",
			Help:      "Total source documents transformed",
		},
	)

	MigrationRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "migration_records_total",
			Help:      "Total target records written",
		},
		[]string{"collection"},
	)

	MigrationSectionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "migration_section_errors_total",
			Help:      "Total child sections skipped because they could not be decoded",
		},
		[]string{"section"},
	)
)

func init() {
	prometheus.MustRegister(MigrationRunsTotal)
	prometheus.MustRegister(MigrationDocumentsTotal)
	prometheus.MustRegister(MigrationRecordsTotal)
	prometheus.MustRegister(MigrationSectionErrorsTotal)
}
