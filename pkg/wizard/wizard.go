// Package wizard builds a starter resume document through terminal prompts.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/templates"
)

var emailValidator = validator.New()

// MaxAchievements bounds the add-another loop.
const MaxAchievements = 20

// Result is the outcome of a wizard run.
type Result struct {
	Resume     resume.ResumeData
	TemplateID string
}

// Wizard asks for the minimum needed to render a first preview.
type Wizard struct {
	driver    PromptDriver
	templates *templates.Registry
}

// New returns a wizard. A nil registry offers the builtin catalog.
func New(driver PromptDriver, registry *templates.Registry) (*Wizard, error) {
	if driver == nil {
		return nil, errors.New("wizard: prompt driver is required")
	}
	if registry == nil {
		builtin, err := templates.NewBuiltinRegistry()
		if err != nil {
			return nil, fmt.Errorf("wizard: load templates: %w", err)
		}
		registry = builtin
	}
	return &Wizard{driver: driver, templates: registry}, nil
}

// Run walks the prompts and returns a validated document.
func (w *Wizard) Run(ctx context.Context) (Result, error) {
	var data resume.ResumeData
	if err := w.personal(ctx, &data.PersonalInfo); err != nil {
		return Result{}, err
	}

	summary, err := w.driver.TextArea(ctx, TextAreaConfig{Message: "Summary", Help: "A short professional summary. Leave empty to skip."})
	if err != nil {
		return Result{}, err
	}
	data.Summary = strings.TrimSpace(summary)

	if data.Achievements, err = w.achievements(ctx); err != nil {
		return Result{}, err
	}

	rawSkills, err := w.driver.Input(ctx, InputConfig{Message: "Skills", Help: "Comma separated, e.g. Go, SQL, Kubernetes"})
	if err != nil {
		return Result{}, err
	}
	data.Skills = splitSkills(rawSkills)

	templateID, err := w.chooseTemplate(ctx)
	if err != nil {
		return Result{}, err
	}

	data.EnsureIDs()
	if err := data.Validate(); err != nil {
		return Result{}, err
	}
	if err := w.driver.Info(ctx, fmt.Sprintf("Created resume for %s using the %q template.", data.PersonalInfo.FullName, templateID)); err != nil {
		return Result{}, err
	}
	return Result{Resume: data, TemplateID: templateID}, nil
}

func (w *Wizard) personal(ctx context.Context, info *resume.PersonalInfo) error {
	var err error
	info.FullName, err = w.driver.Input(ctx, InputConfig{Message: "Full name", Validator: required("full name")})
	if err != nil {
		return err
	}
	info.FullName = strings.TrimSpace(info.FullName)

	fields := []struct {
		message  string
		target   *string
		validate func(string) error
	}{
		{"Job title", &info.Title, nil},
		{"Email", &info.Email, optionalEmail},
		{"Location", &info.Location, nil},
	}
	for _, f := range fields {
		value, err := w.driver.Input(ctx, InputConfig{Message: f.message, Validator: f.validate})
		if err != nil {
			return err
		}
		*f.target = strings.TrimSpace(value)
	}
	return nil
}

func (w *Wizard) achievements(ctx context.Context) ([]resume.Achievement, error) {
	var out []resume.Achievement
	message := "Add an achievement?"
	for len(out) < MaxAchievements {
		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: len(out) == 0})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		title, err := w.driver.Input(ctx, InputConfig{
			Message:   "Achievement",
			Help:      "Lead with a number to get metric tiles, e.g. \"40% faster builds\"",
			Validator: required("achievement"),
		})
		if err != nil {
			return nil, err
		}
		description, err := w.driver.Input(ctx, InputConfig{Message: "Details (optional)"})
		if err != nil {
			return nil, err
		}
		out = append(out, resume.Achievement{
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(description),
		})
		message = "Add another achievement?"
	}
	return out, nil
}

func (w *Wizard) chooseTemplate(ctx context.Context) (string, error) {
	defs := w.templates.List()
	if len(defs) == 0 {
		return "", errors.New("wizard: no templates registered")
	}
	options := make([]string, len(defs))
	descriptions := make([]string, len(defs))
	fallback, _ := w.templates.Default()
	defaultIndex := 0
	for i, def := range defs {
		options[i] = def.ID
		descriptions[i] = def.Description
		if def.ID == fallback.ID {
			defaultIndex = i
		}
	}
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      options,
		Descriptions: descriptions,
		DefaultIndex: defaultIndex,
		PageSize:     len(options),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("wizard: template choice %d out of range", idx)
	}
	return options[idx], nil
}

func splitSkills(raw string) []resume.Skill {
	var out []resume.Skill
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, resume.Skill{Name: name})
	}
	return out
}

func optionalEmail(value string) error {
	if err := emailValidator.Var(strings.TrimSpace(value), "omitempty,email"); err != nil {
		return errors.New("enter a valid email address")
	}
	return nil
}

func required(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
