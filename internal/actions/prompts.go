package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via HULLO_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (HULLO_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("HULLO_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// PromptCommitMessage asks the user for a commit message.
func PromptCommitMessage() (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var message string
	prompt := &survey.Input{
		Message: "Commit message",
	}
	if err := survey.AskOne(prompt, &message); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return message, nil
}
