package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

const (
	defaultModel      = "gemini-3-flash-preview"
	systemInstruction = "Siz professional biznes tahlilchisiz. Faqat muhim nuqtalarni o'zbek tilida yozing."
)

// Client summarises call reports through the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Analyze produces a professional Uzbek-language summary of the report set.
func (c *Client) Analyze(ctx context.Context, reports []entity.Report) (string, error) {
	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("Operator: %s, Holat: %s, Izoh: %s",
			r.OperatorName, r.VisitStatus, r.TasksCompleted))
	}
	prompt := "Quyidagi operator hisobotlarini tahlil qiling va o'zbek tilida professional xulosa bering: \n\n" +
		strings.Join(lines, "\n")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
