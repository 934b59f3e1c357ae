package clinical

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/AJBcoding/hearing-test-tracker/pkg/models"
)

// clinicalPrompt asks the vision model for every test on the report,
// including historical comparison rows, as a JSON array matching the
// schema in schema.go.
const clinicalPrompt = `Analyze these audiogram report pages and extract ALL hearing tests into structured JSON.

For each test found, extract:
1. test_date (YYYY-MM-DD format)
2. location (clinic/facility name)
3. technician_name (audiologist name if present)
4. device_name (equipment used)
5. notes (any additional information, signatures, etc.)
6. right (air conduction measurements for the right ear as {frequency_hz: threshold_db})
7. left (air conduction measurements for the left ear as {frequency_hz: threshold_db})
8. right_bc (bone conduction measurements for the right ear, if present)
9. left_bc (bone conduction measurements for the left ear, if present)

IMPORTANT:
- Extract ALL tests, including historical/comparison data
- Use integer frequencies (125, 250, 500, 750, 1000, 1500, 2000, 3000, 4000, 6000, 8000)
- Use numeric threshold values in dB
- If a measurement is missing/empty, use null
- Return ONLY a JSON array of test objects, no surrounding text and no markdown code blocks`

// Extractor imports clinical audiology PDFs through a Gemini vision
// model.
type Extractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewExtractor creates a clinical import extractor. modelName defaults to
// gemini-2.5-pro when empty.
func NewExtractor(ctx context.Context, apiKey, modelName string) (*Extractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Extractor{client: client, model: client.GenerativeModel(modelName)}, nil
}

// ExtractTests renders a clinical PDF and extracts every hearing test it
// contains. The model's JSON is validated against a schema before being
// converted, so a malformed response surfaces as an error rather than as
// silently empty tests.
func (e *Extractor) ExtractTests(ctx context.Context, pdfPath string) ([]models.ClinicalTest, error) {
	pages, err := RenderPages(pdfPath)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("PDF %s has no pages", pdfPath)
	}

	parts := make([]genai.Part, 0, len(pages)+1)
	for _, page := range pages {
		parts = append(parts, genai.ImageData("png", page))
	}
	parts = append(parts, genai.Text(clinicalPrompt))

	resp, err := e.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	return ParseTests(responseText.String())
}

// Close releases the underlying API client.
func (e *Extractor) Close() error {
	return e.client.Close()
}
