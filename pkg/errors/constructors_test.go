package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestLayoutConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *HelpError
		code    string
		context map[string]string
	}{
		{
			name:    "invalid column",
			err:     InvalidColumn(5, 3),
			code:    ErrLayoutInvalidColumn,
			context: map[string]string{"index": "5", "count": "3"},
		},
		{
			name:    "invalid width",
			err:     InvalidWidth(1, 0),
			code:    ErrLayoutInvalidWidth,
			context: map[string]string{"index": "1", "width": "0"},
		},
		{
			name:    "invalid shift",
			err:     InvalidShift(0, 4, 4),
			code:    ErrLayoutInvalidShift,
			context: map[string]string{"index": "0", "width": "4", "shift": "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.Category != CategoryLayout {
				t.Errorf("Category = %s, want %s", tt.err.Category, CategoryLayout)
			}
			for k, v := range tt.context {
				if tt.err.Context[k] != v {
					t.Errorf("Context[%q] = %q, want %q", k, tt.err.Context[k], v)
				}
			}
			if !tt.err.HasSuggestions() {
				t.Error("expected registry suggestions to be attached")
			}
		})
	}
}

func TestHelpNotFound_Candidates(t *testing.T) {
	err := HelpNotFound("deps ad", "dependencies:add", "deps")

	if err.Context["path"] != "deps ad" {
		t.Errorf("expected path context, got %q", err.Context["path"])
	}
	if len(err.Suggestions) < 2 {
		t.Fatalf("expected candidate suggestions, got %v", err.Suggestions)
	}
	if err.Suggestions[0] != "Did you mean 'dependencies:add'?" {
		t.Errorf("unexpected first suggestion %q", err.Suggestions[0])
	}
}

func TestConfigParseError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: did not find expected key")
	err := ConfigParseError("/tmp/help.yaml", cause)

	if err.Cause != cause {
		t.Error("expected cause to be preserved")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected cause text in Error(), got %q", err.Error())
	}
}

func TestEntryInvalid(t *testing.T) {
	err := EntryInvalid("deps", "alias must not be empty")

	if err.Category != CategoryValidation {
		t.Errorf("Category = %s, want %s", err.Category, CategoryValidation)
	}
	if err.Message != "invalid entry: alias must not be empty" {
		t.Errorf("unexpected message %q", err.Message)
	}
}
