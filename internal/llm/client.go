package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"jobtrack/internal/domain/offer"
)

// Sampling temperatures per operation. Extraction favors deterministic field
// values; analysis and advice favor varied prose.
const (
	temperatureExtraction = 0.3
	temperatureBlurb      = 0.5
	temperatureAdvisory   = 0.7
)

const (
	extractionSystemPrompt = "Tu es un assistant expert. Réponds UNIQUEMENT avec du JSON valide."
	blurbSystemPrompt      = "Tu es un expert en entreprises et startups. Réponds en français avec des informations factuelles."
	advisorSystemPrompt    = "Tu es un conseiller en carrière expert. Réponds TOUJOURS avec du JSON valide uniquement, sans texte supplémentaire. Toutes tes réponses doivent être en français."
)

type JobInfoExtraction struct {
	CompanyName        string `json:"company_name"`
	PositionTitle      string `json:"position_title"`
	Location           string `json:"location"`
	CompanyDescription string `json:"company_description"`
}

type AnalyzeInput struct {
	CVText         string
	JobDescription string
	CompanyName    string
	PositionTitle  string
	Location       string
}

type AdviceInput struct {
	CVText             string
	CompanyName        string
	PositionTitle      string
	Location           string
	CompanyDescription string
	JobDescription     string
	UserNotes          string
	ProfileAlignment   string
}

// Client turns prompt-builder output into typed records via a Completer. It
// persists nothing; orchestration lives in the usecases.
type Client struct {
	completer Completer
	logger    *log.Logger
}

func NewClient(completer Completer, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{completer: completer, logger: logger}
}

// ExtractJobInfo pulls company, title and location out of a raw job
// description, then asks a second, independent completion for a short company
// blurb from the model's background knowledge. The blurb call is best-effort:
// on failure company_description is an empty string and the extraction still
// succeeds.
func (c *Client) ExtractJobInfo(ctx context.Context, jobDescription string) (JobInfoExtraction, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return JobInfoExtraction{}, fmt.Errorf("%w: job description", ErrInvalidInput)
	}

	raw, err := c.completer.Complete(ctx, extractionSystemPrompt,
		BuildJobInfoExtractionPrompt(jobDescription),
		CallOptions{Temperature: temperatureExtraction, JSONMode: true},
	)
	if err != nil {
		return JobInfoExtraction{}, err
	}

	var info JobInfoExtraction
	if err := decodeJSON(raw, &info); err != nil {
		return JobInfoExtraction{}, err
	}

	info.CompanyDescription = ""
	if info.CompanyName != "" {
		blurb, err := c.completer.Complete(ctx, blurbSystemPrompt,
			BuildCompanyBlurbPrompt(info.CompanyName),
			CallOptions{Temperature: temperatureBlurb},
		)
		if err != nil {
			c.logger.Printf("[LLM] company blurb lookup failed: %v", err)
		} else {
			info.CompanyDescription = strings.TrimSpace(blurb)
		}
	}

	return info, nil
}

// AnalyzeJob runs the strategic analysis of one job description against the
// caller's CV.
func (c *Client) AnalyzeJob(ctx context.Context, in AnalyzeInput) (offer.JobAnalysis, error) {
	if err := requireFields(map[string]string{
		"cv text":         in.CVText,
		"job description": in.JobDescription,
		"company name":    in.CompanyName,
		"position title":  in.PositionTitle,
	}); err != nil {
		return offer.JobAnalysis{}, err
	}

	raw, err := c.completer.Complete(ctx, advisorSystemPrompt,
		BuildJobAnalysisPrompt(in.CVText, in.JobDescription, in.CompanyName, in.PositionTitle, in.Location),
		CallOptions{Temperature: temperatureAdvisory, JSONMode: true},
	)
	if err != nil {
		return offer.JobAnalysis{}, err
	}

	var analysis offer.JobAnalysis
	if err := decodeJSON(raw, &analysis); err != nil {
		return offer.JobAnalysis{}, err
	}
	return analysis, nil
}

// CoverLetterAdvice produces structured cover-letter guidance for a stored
// offer.
func (c *Client) CoverLetterAdvice(ctx context.Context, in AdviceInput) (offer.CoverLetterAdvice, error) {
	if err := requireFields(map[string]string{
		"cv text":         in.CVText,
		"job description": in.JobDescription,
		"company name":    in.CompanyName,
		"position title":  in.PositionTitle,
	}); err != nil {
		return offer.CoverLetterAdvice{}, err
	}

	raw, err := c.completer.Complete(ctx, advisorSystemPrompt,
		BuildCoverLetterAdvicePrompt(
			in.CVText, in.CompanyName, in.PositionTitle, in.Location,
			in.CompanyDescription, in.JobDescription, in.UserNotes, in.ProfileAlignment,
		),
		CallOptions{Temperature: temperatureAdvisory, JSONMode: true},
	)
	if err != nil {
		return offer.CoverLetterAdvice{}, err
	}

	var advice offer.CoverLetterAdvice
	if err := decodeJSON(raw, &advice); err != nil {
		return offer.CoverLetterAdvice{}, err
	}
	return advice, nil
}

func requireFields(fields map[string]string) error {
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", ErrInvalidInput, name)
		}
	}
	return nil
}

func decodeJSON(raw string, out any) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
