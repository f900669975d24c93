package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForCommitMessage prompts the user for a non-empty commit message.
	PromptForCommitMessage() (string, error)

	// PromptForRemoteURL prompts the user for a remote URL with a default value.
	PromptForRemoteURL(defaultURL string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForCommitMessage prompts the user for a non-empty commit message.
func (p *realPrompt) PromptForCommitMessage() (string, error) {
	fmt.Print("Enter commit message: ")

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	message := strings.TrimSpace(input)

	if message == "" {
		return "", ErrEmptyCommitMessage
	}

	return message, nil
}

// PromptForRemoteURL prompts the user for a remote URL with a default value.
func (p *realPrompt) PromptForRemoteURL(defaultURL string) (string, error) {
	if defaultURL != "" {
		fmt.Printf("Enter remote URL (ex: https://github.com/user/repo.git) [default: %s]: ", defaultURL)
	} else {
		fmt.Print("Enter remote URL (ex: https://github.com/user/repo.git): ")
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		if defaultURL == "" {
			return "", ErrEmptyRemoteURL
		}
		return defaultURL, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}
