package dto

import (
	"time"

	"conmates/models"
)

// LeaseAnalyzeRequestDTO carries the raw lease text. The text is assumed to
// be already extracted from the document; no PDF parsing happens here.
type LeaseAnalyzeRequestDTO struct {
	LeaseText string `json:"lease_text" binding:"required"`
}

// LeaseAnalyzeResponseDTO is the result of a successful analysis call.
type LeaseAnalyzeResponseDTO struct {
	Analysis    string    `json:"analysis"`
	ModelName   string    `json:"model_name"`
	GeneratedAt time.Time `json:"generated_at"`
}

// LeaseSummaryDTO mirrors the optional semi-structured summary. Every field
// may be absent; consumers render placeholders for whatever is missing.
type LeaseSummaryDTO struct {
	Rent            string   `json:"rent,omitempty"`
	Deposit         string   `json:"deposit,omitempty"`
	Term            string   `json:"term,omitempty"`
	KeyClauses      []string `json:"keyClauses,omitempty"`
	RedFlags        []string `json:"redFlags,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// LeaseAnalysisSnapshotDTO is the read-back view of the stored analysis.
// Found is false when nothing was ever stored (or storage was cleared); the
// other fields are then zero values and the consumer shows a placeholder.
type LeaseAnalysisSnapshotDTO struct {
	Found       bool             `json:"found"`
	Analysis    string           `json:"analysis,omitempty"`
	Summary     *LeaseSummaryDTO `json:"summary,omitempty"`
	ModelName   string           `json:"model_name,omitempty"`
	GeneratedAt *time.Time       `json:"generated_at,omitempty"`
}

// SnapshotFromModel maps a loaded analysis result into the read-back DTO.
func SnapshotFromModel(r models.LeaseAnalysisResult, found bool) LeaseAnalysisSnapshotDTO {
	out := LeaseAnalysisSnapshotDTO{Found: found}
	if !found {
		return out
	}
	out.Analysis = r.Analysis
	out.ModelName = r.ModelName
	if !r.GeneratedAt.IsZero() {
		t := r.GeneratedAt
		out.GeneratedAt = &t
	}
	if r.Summary != nil {
		out.Summary = &LeaseSummaryDTO{
			Rent:            r.Summary.Rent,
			Deposit:         r.Summary.Deposit,
			Term:            r.Summary.Term,
			KeyClauses:      r.Summary.KeyClauses,
			RedFlags:        r.Summary.RedFlags,
			Recommendations: r.Summary.Recommendations,
		}
	}
	return out
}
