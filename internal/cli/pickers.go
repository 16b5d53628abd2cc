package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/keyline-dev/keyline/internal/catalog"
)

// errNoSelection is returned when a command needs a project or language
// and none is configured or selectable.
var errNoSelection = errors.New("cli: nothing selected")

// resolveProject returns the project to operate on: the --project flag if
// given, otherwise the persisted active project, otherwise an interactive
// picker over the server's project list.
func resolveProject(ctx context.Context, flagID string) (catalog.Project, error) {
	if flagID != "" {
		for _, p := range deps.Projects.Known() {
			if p.ID == flagID {
				return p, nil
			}
		}
		// Unknown id: trust the flag, refresh the known list lazily.
		return catalog.Project{ID: flagID, Name: flagID}, nil
	}

	if p, ok := deps.Projects.Active(); ok {
		return p, nil
	}

	projects, err := fetchProjects(ctx)
	if err != nil {
		return catalog.Project{}, err
	}
	if len(projects) == 0 {
		return catalog.Project{}, fmt.Errorf("%w: server has no projects", errNoSelection)
	}

	var picked catalog.Project
	if deps.Headless.IsHeadless() {
		return catalog.Project{}, fmt.Errorf("%w: no active project, run 'keyline project use' or pass --project", errNoSelection)
	}

	options := make([]huh.Option[catalog.Project], len(projects))
	for i, p := range projects {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.ID), p)
	}
	sel := huh.NewSelect[catalog.Project]().
		Title("Project").
		Options(options...).
		Value(&picked)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return catalog.Project{}, fmt.Errorf("%w: cancelled", errNoSelection)
		}
		return catalog.Project{}, fmt.Errorf("pick project: %w", err)
	}

	if err := deps.Projects.SetActive(ctx, picked); err != nil {
		return catalog.Project{}, fmt.Errorf("persist active project: %w", err)
	}
	return picked, nil
}

// resolveLanguage mirrors resolveProject for the working language.
func resolveLanguage(ctx context.Context, flagCode string) (catalog.Language, error) {
	if flagCode != "" {
		for _, l := range deps.Languages.Known() {
			if l.Code == flagCode {
				return l, nil
			}
		}
		return catalog.Language{Code: flagCode, Name: flagCode}, nil
	}

	if l, ok := deps.Languages.Active(); ok {
		return l, nil
	}

	languages, err := fetchLanguages(ctx)
	if err != nil {
		return catalog.Language{}, err
	}
	if len(languages) == 0 {
		return catalog.Language{}, fmt.Errorf("%w: server has no languages", errNoSelection)
	}

	if deps.Headless.IsHeadless() {
		return catalog.Language{}, fmt.Errorf("%w: no active language, run 'keyline lang use' or pass --lang", errNoSelection)
	}

	var picked catalog.Language
	options := make([]huh.Option[catalog.Language], len(languages))
	for i, l := range languages {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", l.Name, l.Code), l)
	}
	sel := huh.NewSelect[catalog.Language]().
		Title("Language").
		Options(options...).
		Value(&picked)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return catalog.Language{}, fmt.Errorf("%w: cancelled", errNoSelection)
		}
		return catalog.Language{}, fmt.Errorf("pick language: %w", err)
	}

	if err := deps.Languages.SetActive(ctx, picked); err != nil {
		return catalog.Language{}, fmt.Errorf("persist active language: %w", err)
	}
	return picked, nil
}

// fetchProjects lists the server's projects and refreshes the known list.
func fetchProjects(ctx context.Context) ([]catalog.Project, error) {
	projects, err := deps.API.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if err := deps.Projects.SetKnown(ctx, projects); err != nil {
		return nil, fmt.Errorf("persist known projects: %w", err)
	}
	return projects, nil
}

// fetchLanguages lists the server's languages and refreshes the known list.
func fetchLanguages(ctx context.Context) ([]catalog.Language, error) {
	languages, err := deps.API.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	if err := deps.Languages.SetKnown(ctx, languages); err != nil {
		return nil, fmt.Errorf("persist known languages: %w", err)
	}
	return languages, nil
}
