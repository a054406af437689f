// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	ids := []Id{
		SettingsCreatedId,
		SettingsMalformedId,
		StagingSourceMissingId,
		ToolchainUnavailableId,
		CompileFailedId,
		CopyFailedId,
		HostAppNotFoundId,
	}
	for _, id := range ids {
		if Get(id) == nil {
			t.Errorf("issue %d not registered", id)
		}
	}
	if len(Values()) != len(ids) {
		t.Errorf("expected %d registered issues, got %d", len(ids), len(Values()))
	}
}

func TestActionableErrorFormat(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("write settings").
		WithResource("/opt/ghforge/ghforge_settings.json").
		WithSuggestion("Check that the directory is writable").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("expected built error")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to its cause")
	}

	msg := err.Format(false)
	for _, want := range []string{"failed to write settings", "ghforge_settings.json", "permission denied", "Check that the directory"} {
		if !strings.Contains(msg, want) {
			t.Errorf("formatted message missing %q:\n%s", want, msg)
		}
	}

	if !strings.Contains(err.Format(true), "Error chain:") {
		t.Error("verbose format should include the error chain")
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("expected nil error without operation, got %v", err)
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("expected nil for nil cause, got %v", got)
	}
}
