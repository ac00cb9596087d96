package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/stencilcli/stencil/internal/domain"
	"github.com/stencilcli/stencil/internal/resolver"
)

// resolveInteractive walks the question graph with huh forms until the
// configuration is complete. presetName, when given on the command line,
// answers the name question without prompting.
func resolveInteractive(deps *runtimeDeps, outputRoot, presetName string) (domain.ProjectConfig, error) {
	graph := resolver.New(
		resolver.WithNameChecker(func(name string) error {
			if err := domain.ValidateName(name); err != nil {
				return err
			}
			if deps.fs.Exists(filepath.Join(outputRoot, name)) {
				return &domain.ValidationError{
					Field: "name",
					Msg:   fmt.Sprintf("%q already exists under %s", name, outputRoot),
				}
			}
			return nil
		}),
	)

	session := graph.NewSession()
	for {
		q, ok := graph.Next(session)
		if !ok {
			return session.Config(), nil
		}

		if q.Field == resolver.FieldProjectName && presetName != "" {
			name := presetName
			presetName = ""
			if err := graph.Answer(session, q.Field, resolver.Answer{Text: name}); err == nil {
				continue
			} else {
				deps.log.Warnf("%v", err)
			}
		}

		answer, err := ask(q)
		if err != nil {
			return domain.ProjectConfig{}, err
		}

		if err := graph.Answer(session, q.Field, answer); err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				deps.log.Warnf("%v", err)
				continue
			}
			return domain.ProjectConfig{}, err
		}
	}
}

// ask renders one question as a huh form and collects its answer.
func ask(q resolver.Question) (resolver.Answer, error) {
	var answer resolver.Answer

	switch q.Kind {
	case resolver.KindSelect:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(q.Prompt).
					Options(options...).
					Value(&answer.Text),
			),
		)
		if err := form.Run(); err != nil {
			return answer, err
		}

	case resolver.KindMultiSelect:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title(q.Prompt).
					Options(options...).
					Value(&answer.List),
			),
		)
		if err := form.Run(); err != nil {
			return answer, err
		}

	case resolver.KindConfirm:
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(q.Prompt).
					Value(&answer.Bool),
			),
		)
		if err := form.Run(); err != nil {
			return answer, err
		}

	case resolver.KindText:
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(q.Prompt).
					Value(&answer.Text),
			),
		)
		if err := form.Run(); err != nil {
			return answer, err
		}
	}

	return answer, nil
}
