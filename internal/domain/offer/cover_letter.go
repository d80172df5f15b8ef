package offer

import (
	"encoding/json"
	"strings"
)

// CoverLetterAdvice is the structured cover-letter guidance contract. Field
// names follow the French JSON keys the completion endpoint returns.
type CoverLetterAdvice struct {
	AnglesCles              []string `json:"angles_cles"`
	ExperiencesAHighlighter []string `json:"experiences_a_highlighter"`
	AlignementEntreprise    []string `json:"alignement_entreprise"`
	PreoccupationsAAdresser []string `json:"preoccupations_a_adresser"`
	ExemplesParagraphes     []string `json:"exemples_paragraphes"`
	ConseilOuverture        string   `json:"conseil_ouverture"`
	ConseilCloture          string   `json:"conseil_cloture"`
}

// CoverLetter is the decoded form of JobOffer.CoverLetter. Older records stored
// free-form advice text instead of JSON; those surface as LegacyText.
type CoverLetter struct {
	Advice     *CoverLetterAdvice
	LegacyText string
}

func (c CoverLetter) IsZero() bool {
	return c.Advice == nil && c.LegacyText == ""
}

// DecodeCoverLetter parses a stored cover_letter value. A parse failure is not
// an error: the raw string is returned as legacy plain-text advice.
func DecodeCoverLetter(raw string) CoverLetter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CoverLetter{}
	}
	if strings.HasPrefix(trimmed, "{") {
		var advice CoverLetterAdvice
		if err := json.Unmarshal([]byte(trimmed), &advice); err == nil {
			return CoverLetter{Advice: &advice}
		}
	}
	return CoverLetter{LegacyText: raw}
}
