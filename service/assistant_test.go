package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Alphiii2005/alphabot-live/apperr"
)

func validCVRequest() *CVRequest {
	return &CVRequest{
		FullName:   "Alice Example",
		Email:      "alice@example.com",
		Phone:      "07123456789",
		Summary:    "Engineer with a decade of backend experience.",
		Skills:     "Go, SQL, Docker",
		Experience: "Built services.",
		Education:  "BSc Computer Science",
	}
}

func TestGenerateCVMissingFieldNeverCallsProvider(t *testing.T) {
	gateway, calls := newTestGateway(t, "test-key", 5*time.Second, replyWith("ignored"))
	assistant := NewAssistantService(gateway)

	req := validCVRequest()
	req.Summary = "   "
	_, err := assistant.GenerateCV(context.Background(), req)
	if !apperr.IsKind(err, apperr.BadRequest) {
		t.Fatalf("err=%v, want BadRequest", err)
	}
	if !strings.Contains(err.Error(), "summary") {
		t.Fatalf("err=%q, want field name", err.Error())
	}
	if *calls != 0 {
		t.Fatalf("calls=%d, want 0", *calls)
	}
}

func TestGenerateCVSuccess(t *testing.T) {
	gateway, _ := newTestGateway(t, "test-key", 5*time.Second,
		replyWith("# Professional Summary\n\n**Alice Example** led and improved everything."))
	assistant := NewAssistantService(gateway)

	result, err := assistant.GenerateCV(context.Background(), validCVRequest())
	if err != nil {
		t.Fatalf("GenerateCV: %v", err)
	}
	if result.CV == "" {
		t.Fatal("empty CV")
	}
	if !strings.Contains(result.CVHTML, "<h1") {
		t.Fatalf("cv_html not rendered: %q", result.CVHTML)
	}
	if result.Score < 50 || result.Score > 100 {
		t.Fatalf("score=%d out of range", result.Score)
	}
}

func TestValidateUKPhone(t *testing.T) {
	valid := []string{"07123456789", "+447123456789", "07123 456 789", "07123-456-789"}
	for _, phone := range valid {
		if err := validateUKPhone(phone); err != nil {
			t.Fatalf("validateUKPhone(%q): %v", phone, err)
		}
	}

	invalid := []string{"", "0812345678", "071234567", "+1 555 0100", "seven"}
	for _, phone := range invalid {
		if err := validateUKPhone(phone); err == nil {
			t.Fatalf("validateUKPhone(%q): expected error", phone)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := validateEmail("alice@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, email := range []string{"", "not-an-email", "a@b", strings.Repeat("a", 250) + "@example.com"} {
		if err := validateEmail(email); err == nil {
			t.Fatalf("validateEmail(%q): expected error", email)
		}
	}
}

func TestScoreCV(t *testing.T) {
	base := &CVRequest{Skills: ""}
	if got := ScoreCV(base, "plain text"); got != 50 {
		t.Fatalf("base score=%d, want 50", got)
	}

	strong := &CVRequest{
		Summary:    strings.Repeat("s", 101),
		Experience: strings.Repeat("e", 301),
		Education:  strings.Repeat("d", 101),
		Skills:     "Go, SQL, Docker, Kubernetes, Terraform, AWS",
	}
	got := ScoreCV(strong, "Achieved a lot. Led and developed teams.")
	if got != 100 {
		t.Fatalf("strong score=%d, want 100", got)
	}

	// Skill bonus is two points per listed skill, capped at ten.
	twoSkills := &CVRequest{Skills: "Go, SQL"}
	if got := ScoreCV(twoSkills, "plain"); got != 54 {
		t.Fatalf("two-skill score=%d, want 54", got)
	}
}

func TestImprovementSuggestions(t *testing.T) {
	weak := &CVRequest{
		Summary:    "short",
		Experience: "no numbers here",
	}
	suggestions := ImprovementSuggestions(weak, "one line no formatting")
	if len(suggestions) != 5 {
		t.Fatalf("len=%d, want 5: %v", len(suggestions), suggestions)
	}

	strong := &CVRequest{
		Summary:    strings.Repeat("detailed summary ", 10),
		Experience: "Increased sales by 20%",
		LinkedIn:   "https://linkedin.com/in/alice",
	}
	suggestions = ImprovementSuggestions(strong, "# CV\n\n**Alice** *2020*")
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}

func TestGenerateContentRequiresTopic(t *testing.T) {
	gateway, calls := newTestGateway(t, "test-key", 5*time.Second, replyWith("ignored"))
	assistant := NewAssistantService(gateway)

	_, err := assistant.GenerateContent(context.Background(), "  ", "")
	if !apperr.IsKind(err, apperr.BadRequest) {
		t.Fatalf("err=%v, want BadRequest", err)
	}
	if *calls != 0 {
		t.Fatalf("calls=%d, want 0", *calls)
	}
}

func TestParaphraseRequiresInput(t *testing.T) {
	gateway, calls := newTestGateway(t, "test-key", 5*time.Second, replyWith("ignored"))
	assistant := NewAssistantService(gateway)

	_, err := assistant.Paraphrase(context.Background(), "\t\n")
	if !apperr.IsKind(err, apperr.BadRequest) {
		t.Fatalf("err=%v, want BadRequest", err)
	}
	if *calls != 0 {
		t.Fatalf("calls=%d, want 0", *calls)
	}
}

func TestParaphraseSuccess(t *testing.T) {
	gateway, _ := newTestGateway(t, "test-key", 5*time.Second, replyWith("a clearer sentence"))
	assistant := NewAssistantService(gateway)

	out, err := assistant.Paraphrase(context.Background(), "an unclear sentence")
	if err != nil {
		t.Fatalf("Paraphrase: %v", err)
	}
	if out != "a clearer sentence" {
		t.Fatalf("out=%q", out)
	}
}
