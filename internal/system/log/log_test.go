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

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("WARN", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", String("section", "experiences"), Int("skipped", 2))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "section=experiences")
	assert.Contains(t, out, "skipped=2")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("LOUD", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestWith_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", &buf)
	require.NoError(t, err)

	logger.With(String("profileId", "p1")).Error("failed", Error(errors.New("boom")))
	assert.Contains(t, buf.String(), "profileId=p1")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestAudit(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("INFO", &buf)
	require.NoError(t, err)

	logger.Audit(AuditEvent{
		InitiatorID:   "profile-migration",
		InitiatorType: InitiatorTypeSystem,
		TargetID:      "profiles_complete",
		TargetType:    TargetTypeCollection,
		ActionID:      ActionMigrationStarted,
	})

	out := buf.String()
	assert.Contains(t, out, "msg=AUDIT")
	assert.Contains(t, out, `\"actionId\":\"migration-started\"`)
	assert.Contains(t, out, `\"recordedAt\":`)
}

func TestSetLogger(t *testing.T) {
	previous := GetLogger()
	t.Cleanup(func() { SetLogger(previous) })

	discard := Discard()
	SetLogger(discard)
	assert.Same(t, discard, GetLogger())
}
