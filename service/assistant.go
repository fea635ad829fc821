package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/Alphiii2005/alphabot-live/apperr"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/openai/openai-go"
	"github.com/yuin/goldmark"
)

const (
	cvModel      = "deepseek/deepseek-chat"
	writerModel  = "deepseek/deepseek-chat:free"
	rewordModel  = "qwen/qwen2.5-vl-3b-instruct:free"
	cvTemp       = 0.3
	maxEmailLen  = 254
	maxFetchSize = 1 << 20
)

const cvSystemPrompt = `You are a professional career advisor.
ALWAYS respond ONLY in Markdown (do NOT use any HTML tags).
Use:
- ` + "`#`" + ` for headings
- ` + "`**bold**`" + ` for job titles, company names, and degrees
- ` + "`*italic*`" + ` for dates or locations
- Bullet points for lists

Example:
# Professional Summary
Motivated professional with 5+ years of experience...

# Work Experience
**Software Engineer** – *Jan 2020 – Present*, **TechCorp**
- Developed new features for the main product
- Improved system performance by 30%

# Skills
- **Python**
- **Project Management**

Now, generate the CV using the provided details, following this Markdown style strictly.`

// AssistantService holds the stateless single-shot features. They share the
// completion gateway with the chat channels but never touch the transcript
// store.
type AssistantService struct {
	gateway *CompletionGateway
}

func NewAssistantService(gateway *CompletionGateway) *AssistantService {
	return &AssistantService{gateway: gateway}
}

type CVRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Summary       string `json:"summary"`
	Skills        string `json:"skills"`
	Experience    string `json:"experience"`
	Education     string `json:"education"`
	Certification string `json:"certification"`
	LinkedIn      string `json:"linkedin"`
	GitHub        string `json:"github"`
}

type CVResult struct {
	CV          string   `json:"cv"`
	CVHTML      string   `json:"cv_html"`
	Score       int      `json:"score"`
	Suggestions []string `json:"improvement_suggestions"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !emailRegex.MatchString(email) {
		return apperr.BadRequestf("Invalid email address")
	}
	if len(email) > maxEmailLen {
		return apperr.BadRequestf("Email is too long")
	}
	return nil
}

var ukPhoneRegex = regexp.MustCompile(`^07\d{9}$`)

// validateUKPhone accepts UK mobile numbers, normalizing a +44 prefix and
// stripping spaces and dashes first.
func validateUKPhone(phone string) error {
	phone = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(phone, "+44") {
		phone = "0" + phone[3:]
	}
	if !ukPhoneRegex.MatchString(phone) {
		return apperr.BadRequestf("Phone must start with 07 and be 11 digits (UK format)")
	}
	return nil
}

func (r *CVRequest) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", r.FullName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"summary", r.Summary},
		{"skills", r.Skills},
		{"experience", r.Experience},
		{"education", r.Education},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return apperr.BadRequestf("Missing required field: %s", field.name)
		}
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validateUKPhone(r.Phone)
}

func buildCVPrompt(r *CVRequest) string {
	certification := r.Certification
	if certification == "" {
		certification = "N/A"
	}
	return fmt.Sprintf(`Generate a professional CV with these details:

Name: %s
Email: %s
Phone: %s

Professional Summary:
%s

Skills:
%s

Work Experience:
%s

Education:
%s

Certifications:
%s

Requirements:
- Use Markdown formatting
- Include section headings
- Use bullet points for lists
- Keep it concise (1-2 pages)
- Optimize for ATS systems
- Add professional spacing`,
		strings.TrimSpace(r.FullName), strings.TrimSpace(r.Email), strings.TrimSpace(r.Phone),
		r.Summary, r.Skills, r.Experience, r.Education, certification)
}

func (s *AssistantService) GenerateCV(ctx context.Context, req *CVRequest) (*CVResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	messages := []PromptMessage{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: cvSystemPrompt},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: buildCVPrompt(req)},
	}
	cv, err := s.gateway.Complete(ctx, cvModel, messages, cvTemp)
	if err != nil {
		return nil, err
	}

	result := &CVResult{
		CV:          cv,
		Score:       ScoreCV(req, cv),
		Suggestions: ImprovementSuggestions(req, cv),
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(cv), &html); err != nil {
		logger.Warnf("Failed to render CV markdown: %v", err)
	} else {
		result.CVHTML = html.String()
	}
	return result, nil
}

// ScoreCV computes the fixed-weight quality score (0-100): a base of 50
// plus length, wording and skills-count bonuses, capped at 100.
func ScoreCV(req *CVRequest, cvText string) int {
	score := 50

	if len(req.Summary) > 100 {
		score += 5
	}
	if len(req.Experience) > 300 {
		score += 10
	}
	if len(req.Education) > 100 {
		score += 5
	}

	lower := strings.ToLower(cvText)
	if strings.Contains(lower, "achieved") || strings.Contains(lower, "improved") {
		score += 10
	}
	for _, word := range []string{"led", "managed", "developed"} {
		if strings.Contains(lower, word) {
			score += 10
			break
		}
	}

	skills := 0
	for _, s := range strings.Split(req.Skills, ",") {
		if strings.TrimSpace(s) != "" {
			skills++
		}
	}
	if bonus := skills * 2; bonus > 10 {
		score += 10
	} else {
		score += bonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ImprovementSuggestions flags common weaknesses in the input and the
// generated CV. At most five are returned.
func ImprovementSuggestions(req *CVRequest, cvText string) []string {
	var suggestions []string

	if len(req.Summary) < 50 {
		suggestions = append(suggestions, "Your professional summary could be more detailed")
	}
	if !strings.ContainsFunc(req.Experience, unicode.IsDigit) {
		suggestions = append(suggestions, "Add quantifiable achievements (e.g., 'Increased sales by 20%')")
	}
	if !strings.Contains(req.LinkedIn, "http") && !strings.Contains(req.GitHub, "http") {
		suggestions = append(suggestions, "Consider adding links to your professional profiles")
	}

	if !strings.Contains(cvText, "\n\n") {
		suggestions = append(suggestions, "Add more spacing between sections for better readability")
	}
	if !strings.Contains(cvText, "*") {
		suggestions = append(suggestions, "Use bold/italic formatting to highlight key achievements")
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// fetchReference downloads a page and converts it to markdown so it can be
// fed to the model as reference material.
func fetchReference(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperr.BadRequestf("Invalid source URL: %s", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", apperr.BadRequestf("Failed to fetch source URL: %s", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxFetchSize))
	if err != nil {
		return "", apperr.BadRequestf("Failed to read source URL: %s", err)
	}
	content, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", apperr.BadRequestf("Failed to convert source page: %s", err)
	}
	return content, nil
}

func (s *AssistantService) GenerateContent(ctx context.Context, topic, sourceURL string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", apperr.BadRequestf("Missing topic")
	}

	prompt := "Write a short, informative article on: " + topic
	if sourceURL != "" {
		reference, err := fetchReference(ctx, sourceURL)
		if err != nil {
			return "", err
		}
		prompt += "\n\nUse the following page as reference material:\n\n" + reference
	}

	messages := []PromptMessage{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: "You are a helpful writing assistant."},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: prompt},
	}
	return s.gateway.Complete(ctx, writerModel, messages, 0)
}

func (s *AssistantService) GenerateScript(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.BadRequestf("No prompt provided")
	}

	messages := []PromptMessage{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: "You are a professional scriptwriter for YouTube videos and short films."},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: prompt},
	}
	return s.gateway.Complete(ctx, writerModel, messages, 0)
}

func (s *AssistantService) Paraphrase(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperr.BadRequestf("No input provided.")
	}

	messages := []PromptMessage{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: "You are AlphaBot, a helpful paraphrasing assistant."},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: "Paraphrase the following text clearly and concisely without emojis:\n\n" + text},
	}
	return s.gateway.Complete(ctx, rewordModel, messages, 0)
}
