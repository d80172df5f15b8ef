package offer

import (
	"encoding/json"
	"strings"
)

type FitAnalysis struct {
	StrongMatch  []string `json:"strong_match"`
	WeakMatch    []string `json:"weak_match"`
	CriticalGaps []string `json:"critical_gaps"`
}

const (
	RecommendationApply          = "APPLY"
	RecommendationStrategicApply = "STRATEGIC_APPLY"
	RecommendationSkip           = "SKIP"
)

type StrategicVerdict struct {
	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
	RiskLevel      string `json:"risk_level"`
}

type PositioningStrategy struct {
	CVHighlights     string `json:"cv_highlights"`
	CoverLetterAngle string `json:"cover_letter_angle"`
	InterviewPrep    string `json:"interview_prep"`
}

// JobAnalysis is the full strategic-analysis contract. It is produced by the
// completion endpoint and trusted as-is after a successful JSON parse.
type JobAnalysis struct {
	MatchRate           int                 `json:"match_rate"`
	TechStack           []string            `json:"tech_stack"`
	RealPriorities      []string            `json:"real_priorities"`
	HiddenExpectations  []string            `json:"hidden_expectations"`
	FitAnalysis         FitAnalysis         `json:"fit_analysis"`
	StrategicVerdict    StrategicVerdict    `json:"strategic_verdict"`
	PositioningStrategy PositioningStrategy `json:"positioning_strategy"`
	TacticalExamples    []string            `json:"tactical_examples"`
	InterviewTraps      []string            `json:"interview_traps"`
	Missions            []string            `json:"missions"`
}

// AnalysisV1 is the legacy analysis shape stored before the strategic verdict
// was added to the prompt contract.
type AnalysisV1 struct {
	MatchRate        int         `json:"match_rate"`
	TechStack        []string    `json:"tech_stack"`
	ProfileAlignment string      `json:"profile_alignment"`
	FitAnalysis      FitAnalysis `json:"fit_analysis"`
}

// Analysis is a tagged union over the two stored analysis shapes. Exactly one
// of V1/V2 is set after a successful decode; the version is decided by the
// presence of the strategic_verdict field.
type Analysis struct {
	V1 *AnalysisV1
	V2 *JobAnalysis

	raw json.RawMessage
}

func NewAnalysis(v JobAnalysis) *Analysis {
	return &Analysis{V2: &v}
}

func (a *Analysis) UnmarshalJSON(b []byte) error {
	var probe struct {
		StrategicVerdict json.RawMessage `json:"strategic_verdict"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}

	a.raw = append(a.raw[:0], b...)
	a.V1, a.V2 = nil, nil

	if len(probe.StrategicVerdict) == 0 || string(probe.StrategicVerdict) == "null" {
		var v1 AnalysisV1
		if err := json.Unmarshal(b, &v1); err != nil {
			return err
		}
		a.V1 = &v1
		return nil
	}

	var v2 JobAnalysis
	if err := json.Unmarshal(b, &v2); err != nil {
		return err
	}
	a.V2 = &v2
	return nil
}

func (a Analysis) MarshalJSON() ([]byte, error) {
	if a.V2 != nil {
		return json.Marshal(a.V2)
	}
	// Legacy records keep their stored bytes so unknown fields survive a
	// read-modify-write cycle.
	if len(a.raw) > 0 {
		return a.raw, nil
	}
	if a.V1 != nil {
		return json.Marshal(a.V1)
	}
	return []byte("null"), nil
}

// HasVerdict reports whether the analysis carries a strategic verdict. The
// presentation layer shows a re-analyze prompt for records without one.
func (a *Analysis) HasVerdict() bool {
	return a != nil && a.V2 != nil
}

// ProfileAlignment returns the alignment summary fed into the cover-letter
// prompt. Legacy analyses stored it directly; current ones derive it from the
// positioning strategy and the strong-match list.
func (a *Analysis) ProfileAlignment() string {
	if a == nil {
		return ""
	}
	if a.V1 != nil {
		return a.V1.ProfileAlignment
	}
	if a.V2 == nil {
		return ""
	}

	parts := make([]string, 0, 2)
	if angle := strings.TrimSpace(a.V2.PositioningStrategy.CoverLetterAngle); angle != "" {
		parts = append(parts, angle)
	}
	if len(a.V2.FitAnalysis.StrongMatch) > 0 {
		parts = append(parts, "Points forts: "+strings.Join(a.V2.FitAnalysis.StrongMatch, "; "))
	}
	return strings.Join(parts, "\n")
}
