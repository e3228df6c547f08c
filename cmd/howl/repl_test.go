package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateBareExitQuits(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("exit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if !rm.quitting || cmd == nil {
		t.Fatalf("bare exit should quit the loop")
	}
}

func TestUpdateHelpCommandDoesNotQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if cmd != nil {
		t.Fatalf("expected no command for help input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
}

func TestEvaluateShowsTopOfStack(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("5 3 +")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "8" {
		t.Fatalf("expected 8, got %q", output)
	}
}

func TestEvaluateIncludesPrintedOutput(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate(`"hello" print`)
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if !strings.Contains(output, "hello") || !strings.Contains(output, `"hello"`) {
		t.Fatalf("expected printed text and top value, got %q", output)
	}
}

func TestEvaluateErrorDoesNotKillLoop(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("+")
	if !isErr {
		t.Fatalf("expected an error, got %q", output)
	}
	if !strings.Contains(output, "stack underflow") {
		t.Fatalf("unexpected error text: %q", output)
	}

	// State persists and the next line still executes.
	output, isErr = m.evaluate("42")
	if isErr || output != "42" {
		t.Fatalf("loop did not recover: %q %v", output, isErr)
	}
}

func TestStackCommandRendersStack(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate("1 2"); isErr {
		t.Fatalf("setup failed")
	}

	m.textInput.SetValue(".s")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	last := rm.history[len(rm.history)-1]
	if last.isErr || !strings.Contains(last.output, "stack [2]") {
		t.Fatalf("stack command output: %+v", last)
	}
}

func TestResetCommandClearsState(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate("1 define x"); isErr {
		t.Fatalf("setup failed")
	}

	m.textInput.SetValue(":reset")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if rm.interp.HasVar("x") {
		t.Fatalf("reset should discard variables")
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("1 2 sw")

	m = m.handleAutocomplete()
	if m.textInput.Value() != "1 2 swap" {
		t.Fatalf("autocomplete result: %q", m.textInput.Value())
	}
}
