package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SnapshotKeyLeaseAnalysis is the fixed key the latest lease analysis is
// stored under. The slot is last-write-wins with no versioning.
const SnapshotKeyLeaseAnalysis = "leaseAnalysis"

// LeaseSummary is the semi-structured view of an analysis. Every field is
// optional from the consumer's point of view: a snapshot may come from an
// older schema version or a partially filled analysis, and readers render
// placeholders for whatever is missing.
type LeaseSummary struct {
	Rent            string   `bson:"rent,omitempty" json:"rent,omitempty"`
	Deposit         string   `bson:"deposit,omitempty" json:"deposit,omitempty"`
	Term            string   `bson:"term,omitempty" json:"term,omitempty"`
	KeyClauses      []string `bson:"key_clauses,omitempty" json:"keyClauses,omitempty"`
	RedFlags        []string `bson:"red_flags,omitempty" json:"redFlags,omitempty"`
	Recommendations []string `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
}

// LeaseAnalysisResult is produced atomically per analysis call and handed to
// the caller; it is never mutated after construction.
type LeaseAnalysisResult struct {
	Analysis    string        `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Summary     *LeaseSummary `bson:"summary,omitempty" json:"summary,omitempty"`
	ModelName   string        `bson:"model_name,omitempty" json:"model_name,omitempty"`
	GeneratedAt time.Time     `bson:"generated_at,omitempty" json:"generated_at,omitempty"`
}

// AnalysisSnapshot stores the serialized analysis under its fixed key.
// Collection: analysis_snapshots
type AnalysisSnapshot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"key"`
	Value     []byte             `bson:"value" json:"value"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
