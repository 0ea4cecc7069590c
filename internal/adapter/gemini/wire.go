package gemini

import (
	"encoding/json"
	"fmt"
)

const preamble = `You are an AI analytics expert for ADmyBRAND Insights, a digital marketing analytics dashboard.

Your role is to provide intelligent insights, predictions, and recommendations based on marketing data.`

const guidance = `Please provide a helpful, professional response that includes:
1. Clear analysis of the data
2. Actionable insights
3. Specific recommendations
4. Potential next steps

Keep your response concise but comprehensive. Use bullet points where appropriate for better readability.`

// BuildPrompt wraps a user request with the analyst preamble, the JSON
// context and the response guidance.
func BuildPrompt(prompt string, data any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	ctxJSON, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal context: %w", err)
	}
	return preamble +
		"\n\nContext: " + string(ctxJSON) +
		"\n\nUser Request: " + prompt +
		"\n\n" + guidance, nil
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

var harmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

func newRequest(prompt string) request {
	safety := make([]safetySetting, 0, len(harmCategories))
	for _, c := range harmCategories {
		safety = append(safety, safetySetting{Category: c, Threshold: "BLOCK_MEDIUM_AND_ABOVE"})
	}
	return request{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
		SafetySettings: safety,
	}
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
