// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScored(t *testing.T) {
	entries := makeTestEntries()

	scored := Scored(entries)
	require.Len(t, scored, len(entries))

	// Nextcloud derives 10 with a breakdown attached.
	assert.Equal(t, "nextcloud", scored[0].ID)
	assert.Equal(t, 10, scored[0].EffectiveScore)
	assert.False(t, scored[0].Curated)
	require.NotNil(t, scored[0].Breakdown)
	assert.Equal(t, 4, scored[0].Breakdown.Jurisdiction)

	// Signal's curated 7 bypasses the formula: no breakdown.
	assert.Equal(t, "signal", scored[2].ID)
	assert.Equal(t, 7, scored[2].EffectiveScore)
	assert.True(t, scored[2].Curated)
	assert.Nil(t, scored[2].Breakdown)
}

func TestWriteJSON_ScoredEntries(t *testing.T) {
	entries := makeTestEntries()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Scored(entries)))

	// Verify it is valid JSON with the expected fields.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "nextcloud", decoded[0]["id"])
	assert.Equal(t, float64(10), decoded[0]["effectiveScore"])
	require.Contains(t, decoded[0], "breakdown")

	breakdown, ok := decoded[0]["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), breakdown["jurisdiction"])
	assert.Equal(t, float64(2), breakdown["sovereigntyBonus"])

	assert.Equal(t, true, decoded[2]["curated"])
	assert.NotContains(t, decoded[2], "breakdown")
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]string{"website": "https://example.org/?a=1&b=2"}))

	assert.Contains(t, buf.String(), "&b=2")
	assert.NotContains(t, buf.String(), `\u0026`)
}
