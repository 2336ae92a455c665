// Package tutor hands extracted study material to a chat-completion model and
// returns its tutoring response.
package tutor

import (
	"fmt"
	"strings"
)

// MaxPromptText is the number of characters of extracted text sent to the
// model. Longer documents are cut at this point.
const MaxPromptText = 5000

const promptTemplate = `You are an experienced tutor helping a student understand material from their course.
The student has provided the following text from their study materials:

"%s"
%s
Please provide a helpful, educational response that clarifies the key concepts.
Format your response with appropriate headings, bullet points, and emphasis where needed.`

// Truncate returns at most limit characters of text.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}

// BuildPrompt wraps text and an optional topic in the tutoring prompt.
func BuildPrompt(text, topic string) string {
	topicLine := ""
	if topic = strings.TrimSpace(topic); topic != "" {
		topicLine = fmt.Sprintf("\nThe topic is: %s\n", topic)
	}
	return fmt.Sprintf(promptTemplate, Truncate(text, MaxPromptText), topicLine)
}
