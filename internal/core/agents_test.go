package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mountd-cli/mountd/internal/core/adapter"
)

// recordingSelector returns a fixed answer and remembers what it was shown.
type recordingSelector struct {
	answer  []string
	err     error
	calls   int
	title   string
	choices []Choice
}

func (r *recordingSelector) Select(title string, choices []Choice) ([]string, error) {
	r.calls++
	r.title = title
	r.choices = choices
	return r.answer, r.err
}

func checkedValues(choices []Choice) []string {
	return Prechecked(choices)
}

func TestSelectAgents_ExplicitNames(t *testing.T) {
	env := newTestEnv(t)
	sel := &recordingSelector{}

	got, err := SelectAgents(env.reg, env.cm, sel, AgentOptions{Names: []string{"cline", "trae"}, Interactive: true})
	if err != nil {
		t.Fatalf("SelectAgents() error: %v", err)
	}
	if !reflect.DeepEqual(adapter.Names(got), []string{"cline", "trae"}) {
		t.Errorf("agents = %v", adapter.Names(got))
	}
	if sel.calls != 0 {
		t.Error("explicit names should not prompt")
	}
	cfg, _ := env.cm.Load()
	if !reflect.DeepEqual(cfg.Agents, []string{"cline", "trae"}) {
		t.Errorf("saved agents = %v", cfg.Agents)
	}
}

func TestSelectAgents_UnknownName(t *testing.T) {
	env := newTestEnv(t)
	if _, err := SelectAgents(env.reg, env.cm, nil, AgentOptions{Names: []string{"vim"}}); err == nil {
		t.Error("expected error for unknown agent")
	}
}

func TestSelectAgents_PromptPrechecksDetected(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "/proj/CLAUDE.md", "rules")
	sel := &recordingSelector{answer: []string{"claude"}}

	got, err := SelectAgents(env.reg, env.cm, sel, AgentOptions{Interactive: true})
	if err != nil {
		t.Fatal(err)
	}
	if sel.calls != 1 {
		t.Fatalf("prompt calls = %d", sel.calls)
	}
	if len(sel.choices) != 12 {
		t.Errorf("prompt shows %d choices, want every adapter", len(sel.choices))
	}
	if want := []string{"claude", "generic"}; !reflect.DeepEqual(checkedValues(sel.choices), want) {
		t.Errorf("prechecked = %v, want %v", checkedValues(sel.choices), want)
	}
	if len(got) != 1 || got[0].Name() != "claude" {
		t.Errorf("agents = %v", adapter.Names(got))
	}
}

func TestSelectAgents_ConfigTakesPrecedenceOverDetection(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "/proj/CLAUDE.md", "rules")
	if err := env.cm.SetAgents([]string{"windsurf"}); err != nil {
		t.Fatal(err)
	}

	got, err := SelectAgents(env.reg, env.cm, nil, AgentOptions{Yes: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(adapter.Names(got), []string{"windsurf"}) {
		t.Errorf("agents = %v, want [windsurf]", adapter.Names(got))
	}
}

func TestSelectAgents_NonInteractiveUsesDetection(t *testing.T) {
	env := newTestEnv(t)
	sel := &recordingSelector{}

	got, err := SelectAgents(env.reg, env.cm, sel, AgentOptions{Interactive: false})
	if err != nil {
		t.Fatal(err)
	}
	if sel.calls != 0 {
		t.Error("non-interactive selection should not prompt")
	}
	if !reflect.DeepEqual(adapter.Names(got), []string{"generic"}) {
		t.Errorf("agents = %v, want the generic fallback", adapter.Names(got))
	}
	cfg, _ := env.cm.Load()
	if !reflect.DeepEqual(cfg.Agents, []string{"generic"}) {
		t.Errorf("saved agents = %v", cfg.Agents)
	}
}

func TestSelectAgents_EmptySelection(t *testing.T) {
	env := newTestEnv(t)
	sel := &recordingSelector{answer: nil}

	_, err := SelectAgents(env.reg, env.cm, sel, AgentOptions{Interactive: true})
	if !errors.Is(err, ErrNoAgentSelected) {
		t.Errorf("error = %v, want ErrNoAgentSelected", err)
	}
	cfg, _ := env.cm.Load()
	if len(cfg.Agents) != 0 {
		t.Errorf("empty selection saved: %v", cfg.Agents)
	}
}

func TestSelectAgents_PromptCanceled(t *testing.T) {
	env := newTestEnv(t)
	sel := &recordingSelector{err: ErrSelectionCanceled}

	if _, err := SelectAgents(env.reg, env.cm, sel, AgentOptions{Interactive: true}); !errors.Is(err, ErrSelectionCanceled) {
		t.Errorf("error = %v, want ErrSelectionCanceled", err)
	}
}
