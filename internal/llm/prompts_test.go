package llm

import (
	"strings"
	"testing"
)

func TestBuildJobInfoExtractionPrompt_IncludesDescriptionVerbatim(t *testing.T) {
	desc := "Développeur Go (H/F) - CDI à Lyon\nStack: Go, PostgreSQL, Redis."
	p := BuildJobInfoExtractionPrompt(desc)
	if !strings.Contains(p, desc) {
		t.Fatalf("prompt does not contain the description verbatim")
	}
	if strings.Contains(p, "{job_description}") {
		t.Fatalf("placeholder left unsubstituted")
	}
}

func TestBuildJobAnalysisPrompt_SubstitutesAllFields(t *testing.T) {
	p := BuildJobAnalysisPrompt("cv corpus", "desc corpus", "Acme", "Backend Intern", "Paris")

	for _, want := range []string{"cv corpus", "desc corpus", "Entreprise: Acme", "Poste: Backend Intern", "Lieu: Paris"} {
		if !strings.Contains(p, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
	for _, ph := range []string{"{cv_text}", "{job_description}", "{company_name}", "{position_title}", "{location}"} {
		if strings.Contains(p, ph) {
			t.Fatalf("placeholder %s left unsubstituted", ph)
		}
	}
}

func TestBuildJobAnalysisPrompt_EmptyLocation(t *testing.T) {
	p := BuildJobAnalysisPrompt("cv", "desc", "Acme", "Backend Intern", "")
	if !strings.Contains(p, "Lieu: Non spécifié") {
		t.Fatalf("expected empty location to become %q", "Non spécifié")
	}

	p = BuildJobAnalysisPrompt("cv", "desc", "Acme", "Backend Intern", "Remote")
	if strings.Contains(p, "Non spécifié") {
		t.Fatalf("placeholder literal must not appear when location is set")
	}
}

func TestBuildCompanyBlurbPrompt_QuotesCompanyName(t *testing.T) {
	p := BuildCompanyBlurbPrompt("Mistral AI")
	if !strings.Contains(p, `"Mistral AI"`) {
		t.Fatalf("expected quoted company name in prompt")
	}
}

func TestBuildCoverLetterAdvicePrompt_EmptyNotes(t *testing.T) {
	p := BuildCoverLetterAdvicePrompt("cv", "Acme", "Backend", "Paris", "blurb", "desc", "", "alignment")
	if !strings.Contains(p, "Aucune note fournie") {
		t.Fatalf("expected empty notes to become %q", "Aucune note fournie")
	}

	p = BuildCoverLetterAdvicePrompt("cv", "Acme", "Backend", "Paris", "blurb", "desc", "insister sur le remote", "alignment")
	if strings.Contains(p, "Aucune note fournie") {
		t.Fatalf("placeholder literal must not appear when notes are set")
	}
	if !strings.Contains(p, "insister sur le remote") {
		t.Fatalf("expected user notes in prompt")
	}
}

func TestBuildCoverLetterAdvicePrompt_OmitsEmptyOptionalLines(t *testing.T) {
	p := BuildCoverLetterAdvicePrompt("cv", "Acme", "Backend", "", "", "desc", "notes", "alignment")
	if strings.Contains(p, "Lieu: ") {
		t.Fatalf("expected location line to be omitted when empty")
	}
	if strings.Contains(p, "À propos de l'entreprise: ") {
		t.Fatalf("expected company blurb line to be omitted when empty")
	}

	p = BuildCoverLetterAdvicePrompt("cv", "Acme", "Backend", "Lyon", "Acme fait des choses.", "desc", "notes", "alignment")
	if !strings.Contains(p, "Lieu: Lyon") {
		t.Fatalf("expected location line when location is set")
	}
	if !strings.Contains(p, "À propos de l'entreprise: Acme fait des choses.") {
		t.Fatalf("expected company blurb line when blurb is set")
	}
}
