package gemini

import "google.golang.org/genai"

// FirstText 는 첫 후보의 첫 part 텍스트를 꺼낸다.
func FirstText(response *genai.GenerateContentResponse) (string, error) {
	part, err := firstPart(response)
	if err != nil {
		return "", err
	}
	if part.Text == "" {
		return "", ErrMissingText
	}
	return part.Text, nil
}

// FirstInlineData 는 첫 후보의 첫 part inline data 를 꺼낸다.
func FirstInlineData(response *genai.GenerateContentResponse) (*genai.Blob, error) {
	part, err := firstPart(response)
	if err != nil {
		return nil, err
	}
	if part.InlineData == nil || len(part.InlineData.Data) == 0 {
		return nil, ErrMissingInlineData
	}
	return part.InlineData, nil
}

func firstPart(response *genai.GenerateContentResponse) (*genai.Part, error) {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0] == nil {
		return nil, ErrNoCandidates
	}
	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return nil, ErrEmptyContent
	}
	return content.Parts[0], nil
}
