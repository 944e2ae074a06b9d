// Package interactive provides terminal prompts for the timekeeper menu
package interactive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption represents a menu item with its associated action
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

var (
	// ErrExit is returned when the user chooses to exit
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNotPositive is returned by the run count validator
	ErrNotPositive = errors.New("must be a positive integer")
)

const exitChoice = "Exit"

// MenuChoices renders options the way ShowMainMenu lists them.
func MenuChoices(options []MenuOption) ([]string, map[string]MenuOption) {
	choices := make([]string, 0, len(options)+1)
	optionMap := make(map[string]MenuOption, len(options))

	for _, opt := range options {
		choice := fmt.Sprintf("%s - %s", opt.Name, opt.Description)
		choices = append(choices, choice)
		optionMap[choice] = opt
	}

	return append(choices, exitChoice), optionMap
}

// ShowMainMenu displays the main menu and handles user selection
func ShowMainMenu(options []MenuOption) error {
	choices, optionMap := MenuChoices(options)

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: choices,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return ErrExit
	}

	return Dispatch(selected, optionMap)
}

// Dispatch runs the action behind a selected menu choice.
func Dispatch(selected string, optionMap map[string]MenuOption) error {
	if selected == exitChoice {
		return ErrExit
	}

	if option, ok := optionMap[selected]; ok {
		return option.Action()
	}

	return ErrInvalidSelection
}

// Select asks the user to pick one of options.
func Select(message string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return selected, nil
}

// AskArgs asks for whitespace separated arguments.
func AskArgs(message, usage string) ([]string, error) {
	var raw string
	prompt := &survey.Input{
		Message: message,
		Help:    usage,
	}

	if err := survey.AskOne(prompt, &raw); err != nil {
		return nil, err
	}

	return strings.Fields(raw), nil
}

// AskRuns asks for a run count, offering def as the default.
func AskRuns(def int) (int, error) {
	var raw string
	prompt := &survey.Input{
		Message: "How many runs?",
		Default: strconv.Itoa(def),
	}

	if err := survey.AskOne(prompt, &raw, survey.WithValidator(ValidateRuns)); err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(raw))
}

// ValidateRuns accepts strings holding an integer of at least 1.
func ValidateRuns(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return ErrNotPositive
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return ErrNotPositive
	}

	return nil
}

// PauseForEnter waits for the user to press Enter
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks for user confirmation
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)
	return confirmed
}
