// Package pedagogy turns raw commented-answer PDF text into structured
// teaching material and builds the prompts the AI services send.
package pedagogy

import (
	"fmt"
	"regexp"
	"strings"

	"aluno_ai_backend/internal/util"
)

const (
	maxFullText        = 3000
	maxCommentedAnswer = 2000
	maxStep            = 500
	maxExplanation     = 1500
)

// Content is the pedagogical material extracted from a question's official
// commented-answer document. Any field may be empty when the document does
// not carry that section.
type Content struct {
	Skill           string    `json:"skill"`
	Topic           string    `json:"topic"`
	Steps           [3]string `json:"steps"`
	CommentedAnswer string    `json:"commentedAnswer"`
	Explanation     string    `json:"explanation"`
	FullText        string    `json:"fullText"`
}

// Empty reports whether no section was extracted at all.
func (c Content) Empty() bool {
	return c.Skill == "" && c.Topic == "" && c.CommentedAnswer == "" &&
		c.Explanation == "" && c.Steps[0] == "" && c.Steps[1] == "" && c.Steps[2] == ""
}

// Pattern cascades: the first pattern that matches wins. Documents come from
// OCR'd PDFs, so headings vary in accents and punctuation.
var (
	skillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)habilidade\s*[:\-]\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)compet[êe]ncia\s*[:\-]\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)h[aá]bil\s*[:\-]\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)\(EM\d+MAT\d+\)\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)\(EM\d+LP?T\d+\)\s*([^\n.]*)`),
	}

	answerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)resposta\s+comentada\s*(.*?)(?:\n[A-ZÀ-Ÿ]{3,}|\n\d+\.|\nQuestão|\nExercício|$)`),
		regexp.MustCompile(`(?is)coment[áa]rios\s*(.*?)(?:\n[A-ZÀ-Ÿ]{3,}|\n\d+\.|\nQuestão|$)`),
		regexp.MustCompile(`(?is)resolu[çc][ãa]o\s*(.*?)(?:\n[A-ZÀ-Ÿ]{3,}|\n\d+\.|\nQuestão|$)`),
		regexp.MustCompile(`(?is)explica[çc][ãa]o\s*(.*?)(?:\n[A-ZÀ-Ÿ]{3,}|\n\d+\.|\nQuestão|$)`),
	}

	topicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)conte[úu]do\s*[:\-]\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)t[óo]pico\s*[:\-]\s*([^\n.]*)`),
		regexp.MustCompile(`(?i)assunto\s*[:\-]\s*([^\n.]*)`),
	}

	stepPatterns = [3]*regexp.Regexp{
		regexp.MustCompile(`(?is)passo\s*1[:\-.]\s*(.*?)(?:passo\s*2|\n[A-Z]|$)`),
		regexp.MustCompile(`(?is)passo\s*2[:\-.]\s*(.*?)(?:passo\s*3|\n[A-Z]|$)`),
		regexp.MustCompile(`(?is)passo\s*3[:\-.]\s*(.*?)(?:passo\s*4|\n[A-Z]|$)`),
	}

	explanationPattern = regexp.MustCompile(`(?is)(?:explica[çc][ãa]o|resolu[çc][ãa]o|como resolver|passo a passo).*?(?:\n[A-Z]|$)`)
)

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Extract runs the pattern cascades over the document text and returns the
// structured sections. Returns nil for empty input.
func Extract(text string) *Content {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c := &Content{
		FullText:        util.Truncate(text, maxFullText),
		Skill:           firstMatch(skillPatterns, text),
		Topic:           firstMatch(topicPatterns, text),
		CommentedAnswer: util.Truncate(firstMatch(answerPatterns, text), maxCommentedAnswer),
	}

	for i, p := range stepPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			c.Steps[i] = util.Truncate(strings.TrimSpace(m[1]), maxStep)
		}
	}

	// Without a commented answer, fall back to any explanatory passages.
	if c.CommentedAnswer == "" {
		if passages := explanationPattern.FindAllString(text, -1); len(passages) > 0 {
			c.Explanation = util.Truncate(strings.Join(passages, " "), maxExplanation)
		}
	}

	return c
}

// Fallback builds minimal content from the raw document when extraction
// found no recognizable sections.
func Fallback(text, subject string, questionNumber int) *Content {
	return &Content{
		FullText:        util.Truncate(text, 2000),
		Skill:           fmt.Sprintf("Question %d of %s", questionNumber, subject),
		CommentedAnswer: util.Truncate(text, 1500),
	}
}
