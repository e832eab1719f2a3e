package main

// deploy.go — The deploy subcommand and its interactive prompts.

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"siteaudit/internal/deploy"
)

func runDeploy(args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: siteaudit deploy <platform> [-url URL] [-base /] [-out dir]\nsupported platforms: %s",
			strings.Join(deploy.Platforms(), ", "))
	}
	platform := args[0]

	fs := flag.NewFlagSet("deploy", flag.ContinueOnError)
	urlFlag := fs.String("url", "", "canonical site URL")
	baseFlag := fs.String("base", "", "base path the site is served under")
	outDir := fs.String("out", ".", "directory to write config files into")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	site := deploy.FromEnv()
	if *urlFlag != "" {
		site.URL = *urlFlag
	}
	if *baseFlag != "" {
		site.BasePath = *baseFlag
	}

	var questions []question
	if site.URL == "" {
		questions = append(questions, question{key: "url", prompt: "Site URL (e.g. https://example.dev)"})
	}
	if site.BasePath == "" {
		questions = append(questions, question{key: "base", prompt: "Base path (default /)"})
	}
	answers, err := promptQuestions(questions)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	if v := answers["url"]; v != "" {
		site.URL = v
	}
	if v := answers["base"]; v != "" {
		site.BasePath = v
	}
	if site.URL == "" {
		return fmt.Errorf("a site URL is required (flag -url or SITE_URL)")
	}

	files, err := deploy.Generate(platform, site)
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(*outDir, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("mkdir for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

// ---------------------------------------------------------------------------
// TUI prompt helpers
// ---------------------------------------------------------------------------

// question is a single interactive prompt for a missing deploy setting.
type question struct {
	key    string
	prompt string
}

// promptModel is a bubbletea model that asks one question at a time.
type promptModel struct {
	questions []question
	idx       int
	inputs    []textinput.Model
	done      bool
}

func newPromptModel(questions []question) promptModel {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.prompt
		ti.CharLimit = 512
		inputs[i] = ti
	}
	m := promptModel{
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}
	q := m.questions[m.idx]
	return fmt.Sprintf("%s: %s\n", q.prompt, m.inputs[m.idx].View())
}

// promptQuestions runs the TUI and returns answers keyed by question.key.
func promptQuestions(questions []question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}
	m := newPromptModel(questions)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return nil, fmt.Errorf("prompt cancelled")
	}
	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		answers[q.key] = final.inputs[i].Value()
	}
	return answers, nil
}
