package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "E001",
			wantMsg: "Scene file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "scene error",
			code:    "E010",
			wantMsg: "Unknown shape kind",
			wantCat: CategoryScene,
		},
		{
			name:    "cli error",
			code:    "E101",
			wantMsg: "Scene file already exists",
			wantCat: CategoryCLI,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryConfig, "file %q not found", "scene.yml")
	if err.Message != `file "scene.yml" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "scene.yml" not found`)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want %q", err.Category, CategoryConfig)
	}
}

func TestPropwatchError_Error(t *testing.T) {
	err := New("E001")
	got := err.Error()
	want := "E001: Scene file not found"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &PropwatchError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestPropwatchError_WithDetail(t *testing.T) {
	err := New("E011").WithDetail("step %d: action %q", 3, "spin")
	if err.Detail != `step 3: action "spin"` {
		t.Errorf("Detail = %q, want %q", err.Detail, `step 3: action "spin"`)
	}
}

func TestPropwatchError_WithSuggestion(t *testing.T) {
	err := New("E002").WithSuggestion("Check the YAML indentation")
	if err.Suggestion != "Check the YAML indentation" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "Check the YAML indentation")
	}
}

func TestPropwatchError_Unwrap(t *testing.T) {
	inner := stderrors.New("yaml: line 3: mapping values are not allowed")
	err := New("E002").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}

	var pe *PropwatchError
	if !stderrors.As(err, &pe) {
		t.Error("expected errors.As to recover the PropwatchError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E002") != nil {
		t.Error("expected nil for nil input")
	}

	inner := stderrors.New("boom")
	err := FromError(inner, "E002")
	if err.Code != "E002" {
		t.Errorf("Code = %q, want E002", err.Code)
	}
	if !stderrors.Is(err, inner) {
		t.Error("expected wrapped error to survive")
	}

	// A PropwatchError passes through unchanged.
	again := FromError(err, "E001")
	if again != err {
		t.Error("expected PropwatchError to pass through")
	}
}

func TestRegistryLookups(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("expected registered codes")
	}

	if _, ok := GetTemplate("E001"); !ok {
		t.Error("expected template for E001")
	}
	if _, ok := GetTemplate("E999"); ok {
		t.Error("expected no template for E999")
	}
}
