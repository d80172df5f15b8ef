package offer

import "testing"

func TestDecodeCoverLetter_JSON(t *testing.T) {
	raw := `{"angles_cles":["angle"],"conseil_ouverture":"ouvrir fort","conseil_cloture":"fermer court"}`

	c := DecodeCoverLetter(raw)
	if c.Advice == nil {
		t.Fatalf("expected structured advice")
	}
	if c.LegacyText != "" {
		t.Fatalf("expected no legacy text, got %q", c.LegacyText)
	}
	if c.Advice.ConseilOuverture != "ouvrir fort" {
		t.Fatalf("unexpected advice: %+v", c.Advice)
	}
}

func TestDecodeCoverLetter_LegacyText(t *testing.T) {
	raw := "Mettre en avant l'expérience backend et l'autonomie."

	c := DecodeCoverLetter(raw)
	if c.Advice != nil {
		t.Fatalf("plain text must not decode as advice")
	}
	if c.LegacyText != raw {
		t.Fatalf("expected legacy text preserved, got %q", c.LegacyText)
	}
}

func TestDecodeCoverLetter_MalformedJSONFallsBackToText(t *testing.T) {
	raw := `{"angles_cles": [truncated`

	c := DecodeCoverLetter(raw)
	if c.Advice != nil {
		t.Fatalf("malformed JSON must not decode as advice")
	}
	if c.LegacyText != raw {
		t.Fatalf("expected raw value preserved, got %q", c.LegacyText)
	}
}

func TestDecodeCoverLetter_Empty(t *testing.T) {
	if c := DecodeCoverLetter("  \n"); !c.IsZero() {
		t.Fatalf("expected zero cover letter for blank input")
	}
}
