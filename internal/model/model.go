package model

import (
	"encoding/json"
	"time"
)

// Operation values recorded in the sync queue.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Entity type tags shared between the sync queue and the task processor.
const (
	KindCandidate   = "candidate"
	KindJob         = "job"
	KindApplication = "application"
)

// Collection describes one entity type: its table in the entity store, its
// index in elasticsearch and how its fields are searched and encoded.
type Collection struct {
	Kind   string
	Table  string
	Index  string
	// SearchFields is the boosted field list used for full text queries.
	SearchFields []string
	// TieBreak is the sort field applied after the relevance score.
	TieBreak string
	// ArrayFields are stored as serialized JSON text in the entity store.
	ArrayFields []string
	// DateFields are parsed back into time.Time when read from the store.
	DateFields []string
	// TermFields maps a list-filter key to the exact (keyword) field it
	// must match, for fields that are also indexed as full text.
	TermFields map[string]string
}

var Candidates = Collection{
	Kind:  KindCandidate,
	Table: "candidates",
	Index: "candidates",
	SearchFields: []string{
		"name^3",
		"email^2",
		"skills^2",
		"currentDesignation",
		"industry",
		"address",
		"preferredLocation",
		"currentLocation",
	},
	TieBreak:    "updatedAt",
	ArrayFields: []string{"skills", "language", "certificates"},
	DateFields:  []string{"dateOfBirth", "createdAt", "updatedAt"},
	TermFields: map[string]string{
		"currentLocation": "currentLocation.keyword",
	},
}

var Jobs = Collection{
	Kind:  KindJob,
	Table: "jobs",
	Index: "jobs",
	SearchFields: []string{
		"title^3",
		"department^2",
		"skillsRequired^2",
		"location",
	},
	TieBreak:    "postedDate",
	ArrayFields: []string{"skillsRequired", "candidateIds"},
	DateFields:  []string{"postedDate", "closingDate", "createdAt", "updatedAt"},
	TermFields: map[string]string{
		"departments":     "department.keyword",
		"locations":       "location.keyword",
		"employmentTypes": "employmentType.keyword",
		"status":          "status.keyword",
	},
}

// CollectionByKind returns the collection for an entity type tag.
// The second return value is false for unknown tags and for entity
// types that have no authoritative table (applications).
func CollectionByKind(kind string) (Collection, bool) {
	switch kind {
	case KindCandidate:
		return Candidates, true
	case KindJob:
		return Jobs, true
	}
	return Collection{}, false
}

// Application is not persisted as its own row; creating one links the
// candidate into the job document and records a sync event.
type Application struct {
	CandidateID string     `json:"candidateId"`
	JobID       string     `json:"jobId"`
	Status      string     `json:"status,omitempty"`
	AppliedDate *time.Time `json:"appliedDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// StoreFields converts a search document into entity store column values.
// Array-valued attributes are serialized to JSON text.
func (c Collection) StoreFields(doc map[string]any) map[string]any {
	fields := make(map[string]any, len(doc))
	for key, value := range doc {
		switch value.(type) {
		case []string, []any, map[string]any:
			encoded, err := json.Marshal(value)
			if err != nil {
				// only slices and maps of JSON-encodable values reach here
				continue
			}
			fields[key] = string(encoded)
		default:
			fields[key] = value
		}
	}
	return fields
}

// DocumentFromRow converts an entity store row back into the document
// shape indexed in elasticsearch: JSON text columns are parsed into
// arrays and date columns into time.Time.
func (c Collection) DocumentFromRow(row map[string]any) map[string]any {
	doc := make(map[string]any, len(row))
	for key, value := range row {
		doc[key] = value
	}

	for _, field := range c.ArrayFields {
		raw, ok := doc[field].(string)
		if !ok || raw == "" {
			continue
		}
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			doc[field] = values
		}
	}

	for _, field := range c.DateFields {
		raw, ok := doc[field].(string)
		if !ok {
			continue
		}
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			doc[field] = parsed
		}
	}

	return doc
}
