package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITFLOW_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITFLOW_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("GITFLOW_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// Prompter asks the user for input. The workflow depends on this interface
// rather than the terminal so prompts can be scripted in tests.
type Prompter interface {
	// Input asks for a line of text and returns it trimmed
	Input(message, defaultValue string) (string, error)

	// Confirm asks a yes/no question
	Confirm(message string, defaultValue bool) (bool, error)
}

// NewSurveyPrompter returns a Prompter backed by survey terminal prompts.
func NewSurveyPrompter() Prompter {
	return &surveyPrompter{}
}

type surveyPrompter struct{}

func (p *surveyPrompter) Input(message, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", fmt.Errorf("input prompt failed: %w", err)
	}
	return answer, nil
}

func (p *surveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return answer, nil
}
