package main

import (
	"os"

	"github.com/charmbracelet/huh"
)

// prompter asks the user one question at a time.
type prompter interface {
	Choose(title string, options []huh.Option[string]) (string, error)
	Input(title, placeholder string, validate func(string) error) (string, error)
	Text(title string) (string, error)
}

type huhPrompter struct {
	accessible bool
}

func newHuhPrompter() *huhPrompter {
	return &huhPrompter{accessible: os.Getenv("ACCESSIBLE") != ""}
}

func (p *huhPrompter) Choose(title string, options []huh.Option[string]) (string, error) {
	var value string
	err := p.run(huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&value))
	return value, err
}

func (p *huhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	err := p.run(input)
	return value, err
}

func (p *huhPrompter) Text(title string) (string, error) {
	var value string
	err := p.run(huh.NewText().
		Title(title).
		CharLimit(5000).
		Value(&value))
	return value, err
}

func (p *huhPrompter) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeDracula()).
		WithAccessible(p.accessible).
		Run()
}
