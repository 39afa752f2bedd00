package chatbot

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSendMessageRequestAllowsBlankText(t *testing.T) {
	validate := validator.New()

	// A blank turn is a no-op downstream, not a validation failure.
	if err := validate.Struct(SendMessageRequest{Text: ""}); err != nil {
		t.Errorf("blank text rejected: %v", err)
	}
	if err := validate.Struct(SendMessageRequest{Text: "   "}); err != nil {
		t.Errorf("whitespace-only text rejected: %v", err)
	}
	if err := validate.Struct(SendMessageRequest{Text: strings.Repeat("a", 501)}); err == nil {
		t.Error("over-length text accepted")
	}
}
