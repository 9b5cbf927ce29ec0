// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// supportedSchemaVersion is the catalogue document schema this build reads.
const supportedSchemaVersion = 1

//go:embed data/catalogue.json
var embedded []byte

// document is the on-disk catalogue envelope.
type document struct {
	SchemaVersion int     `json:"schemaVersion"`
	Entries       []Entry `json:"entries"`
}

// Parse probes data for the expected catalogue shape and decodes it.
// The probe runs before the full decode so a file that is some other kind
// of JSON fails with a shape error rather than an empty catalogue.
func Parse(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalogue is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	entries := root.Get("entries")
	if !entries.Exists() || !entries.IsArray() {
		return nil, fmt.Errorf("catalogue has no \"entries\" array")
	}
	if v := root.Get("schemaVersion"); v.Exists() && v.Int() != supportedSchemaVersion {
		return nil, fmt.Errorf("unsupported catalogue schema version %d (want %d)", v.Int(), supportedSchemaVersion)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalogue: %w", err)
	}
	return doc.Entries, nil
}

// LoadEmbedded returns the catalogue compiled into the binary.
func LoadEmbedded() ([]Entry, error) {
	return Parse(embedded)
}

// LoadFile reads and parses an external catalogue JSON file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue file: %w", err)
	}
	return Parse(data)
}
