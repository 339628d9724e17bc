package quiz

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

// systemPrompt is sent with every generation request.
const systemPrompt = "You are a helpful assistant that creates thoughtful quiz questions about spiritual experiences and insights. Always respond with valid JSON."

// jsonShapeInstructions spells out the required response format.
const jsonShapeInstructions = `Please format the response as a JSON array where each question has:
- question: string
- options: array of 4 strings
- correctAnswer: number (0-3, index of the correct option)`

// buildImpressionsPrompt renders the user's entries as a numbered list with
// resolved category names and asks for count questions about them.
func buildImpressionsPrompt(impressions []domain.Impression, categories []domain.Category, count int) string {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on these spiritual impressions and experiences, generate %d quiz questions that test understanding and recall of the content. Each question should be multiple choice with 4 options.\n\n", count)
	b.WriteString("Impressions:\n")

	for i, imp := range impressions {
		fmt.Fprintf(&b, "%d. %s (Categories: %s)\n", i+1, imp.Description, categoryLabels(imp, names))
	}

	b.WriteString("\n")
	b.WriteString(jsonShapeInstructions)
	b.WriteString("\n\nMake the questions thoughtful and test both specific details and broader spiritual insights from the impressions.")

	return b.String()
}

// buildTopicPrompt asks for count questions about a free-text topic with the
// same domain framing and response shape.
func buildTopicPrompt(topic string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d quiz questions about the following topic in the context of spiritual experiences and insights. Each question should be multiple choice with 4 options.\n\n", count)
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString(jsonShapeInstructions)
	b.WriteString("\n\nMake the questions thoughtful and test both specific knowledge and broader spiritual understanding of the topic.")

	return b.String()
}

func categoryLabels(imp domain.Impression, names map[int]string) string {
	if len(imp.Categories) == 0 {
		return "None"
	}

	labels := make([]string, 0, len(imp.Categories))
	for _, id := range imp.Categories {
		if name, ok := names[id]; ok {
			labels = append(labels, name)
			continue
		}
		labels = append(labels, fmt.Sprintf("%d", id))
	}

	return strings.Join(labels, ", ")
}
