package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"gopkg.in/yaml.v2"

	"github.com/readysethire/readysethire/internal/domain/question"
)

// GeneratedQuestion is one question/difficulty pair proposed by the model
// or taken from the fallback bank.
type GeneratedQuestion struct {
	Question   string `json:"question" yaml:"question"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// QuestionBank holds the prompt template and the fixed fallback set. Both
// can be overridden from a YAML file.
type QuestionBank struct {
	PromptTemplate string              `yaml:"prompt_template"`
	Fallback       []GeneratedQuestion `yaml:"fallback"`
}

const defaultPromptTemplate = `Generate %d interview questions for a candidate applying for the role of %s.
Role description: %s
Mix the difficulties across Easy, Intermediate and Advanced.
Respond with only a JSON array of objects, each with a "question" string and a "difficulty" of Easy, Intermediate or Advanced.`

func defaultQuestionBank() QuestionBank {
	return QuestionBank{
		PromptTemplate: defaultPromptTemplate,
		Fallback: []GeneratedQuestion{
			{Question: "Tell us about yourself and why you applied for this role.", Difficulty: "Easy"},
			{Question: "What attracted you to this position?", Difficulty: "Easy"},
			{Question: "Describe a project you are proud of and your role in it.", Difficulty: "Intermediate"},
			{Question: "How do you prioritise competing deadlines?", Difficulty: "Intermediate"},
			{Question: "Tell us about a time you disagreed with a teammate and how it was resolved.", Difficulty: "Intermediate"},
			{Question: "Describe a difficult problem you solved and how you approached it.", Difficulty: "Advanced"},
			{Question: "How would you improve a process you found inefficient in a previous role?", Difficulty: "Advanced"},
			{Question: "Where do you see yourself in five years?", Difficulty: "Easy"},
		},
	}
}

// LoadQuestionBank reads a YAML override, falling back to the built-in bank
// when path is empty or unreadable. File fields left empty keep defaults.
func LoadQuestionBank(path string) QuestionBank {
	bank := defaultQuestionBank()
	if path == "" {
		return bank
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: question bank file %s unreadable, using built-in set: %v", path, err)
		return bank
	}
	var override QuestionBank
	if err := yaml.Unmarshal(data, &override); err != nil {
		log.Printf("Warning: question bank file %s invalid, using built-in set: %v", path, err)
		return bank
	}
	if override.PromptTemplate != "" {
		bank.PromptTemplate = override.PromptTemplate
	}
	if len(override.Fallback) > 0 {
		bank.Fallback = override.Fallback
	}
	return bank
}

type GeneratorService struct {
	client      *openai.Client
	model       string
	temperature float64
	bank        QuestionBank
}

func NewGeneratorService(apiKey, baseURL, model string, bank QuestionBank) *GeneratorService {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &GeneratorService{
		client:      client,
		model:       model,
		temperature: 0.7,
		bank:        bank,
	}
}

// GenerateInterviewQuestions asks the model for a question set for the given
// role. It never fails: any transport or parse problem resolves to the fixed
// fallback set.
func (s *GeneratorService) GenerateInterviewQuestions(ctx context.Context, jobRole, description string, count int) []GeneratedQuestion {
	if count <= 0 {
		count = len(s.bank.Fallback)
	}
	prompt := fmt.Sprintf(s.bank.PromptTemplate, count, jobRole, description)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(s.model),
		Temperature: openai.F(s.temperature),
	})
	if err != nil {
		log.Printf("question generation call failed, using fallback set: %v", err)
		return s.bank.Fallback
	}
	if len(resp.Choices) == 0 {
		log.Println("question generation returned no choices, using fallback set")
		return s.bank.Fallback
	}

	generated, err := parseGeneratedQuestions(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("question generation response unparseable, using fallback set: %v", err)
		return s.bank.Fallback
	}
	return generated
}

// parseGeneratedQuestions extracts the first JSON array embedded in the
// model's text. Models wrap output in code fences or prose; everything
// outside the outermost brackets is ignored.
func parseGeneratedQuestions(content string) ([]GeneratedQuestion, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var raw []GeneratedQuestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, err
	}

	out := make([]GeneratedQuestion, 0, len(raw))
	for _, g := range raw {
		if strings.TrimSpace(g.Question) == "" {
			continue
		}
		if !question.ValidDifficulty(g.Difficulty) {
			g.Difficulty = string(question.DifficultyIntermediate)
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("response contained no usable questions")
	}
	return out, nil
}
