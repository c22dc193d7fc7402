// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		NoSpellsFoundId,
		SpellfileParseErrorId,
		TaskNotFoundId,
		SettingsLoadFailedId,
		InvalidCastModeId,
		NameCollisionId,
		ScriptExecutionFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if NoSpellsFoundId != 1 {
		t.Errorf("NoSpellsFoundId = %d, want 1", NoSpellsFoundId)
	}
}

func TestGet_KnownIds(t *testing.T) {
	for _, id := range []Id{NoSpellsFoundId, TaskNotFoundId, NameCollisionId} {
		issue := Get(id)
		if issue == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if issue.Id() != id {
			t.Errorf("issue.Id() = %d, want %d", issue.Id(), id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	if issue := Get(Id(999)); issue != nil {
		t.Errorf("Get(999) = %v, want nil", issue)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(SpellfileParseErrorId)
	if issue == nil {
		t.Fatal("Get(SpellfileParseErrorId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}
	if !strings.Contains(string(msg), "Failed to parse spell file") {
		t.Error("MarkdownMsg() should contain 'Failed to parse spell file'")
	}
}

func TestIssue_DocLinksClone(t *testing.T) {
	issue := &Issue{
		id:       TaskNotFoundId,
		docLinks: []HttpLink{"https://example.test/docs/tasks"},
	}

	links := issue.DocLinks()
	links[0] = "modified"
	if issue.DocLinks()[0] != "https://example.test/docs/tasks" {
		t.Error("DocLinks() should return a clone")
	}
}

func TestValues_CoversRegistry(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Errorf("Values() returned %d issues, registry has %d", len(values), len(issues))
	}
	for _, issue := range values {
		if Get(issue.Id()) != issue {
			t.Errorf("Values() entry %d not reachable via Get", issue.Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var got string
	render = func(in, stylePath string) (string, error) {
		got = in
		return in, nil
	}

	issue := &Issue{
		id:       NoSpellsFoundId,
		mdMsg:    "# nothing here",
		docLinks: []HttpLink{"https://example.test/docs"},
	}
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(got, "# nothing here") {
		t.Errorf("rendered input missing message: %q", got)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("rendered output missing links section: %q", out)
	}
}
