package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Name", "")

	if !cv.HasErrors() {
		t.Error("Expected error for empty required field")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Required("Name", "value")

	if cv2.HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		value     int
		expectErr bool
	}{
		{value: 0, expectErr: true},
		{value: 1, expectErr: false},
		{value: 10, expectErr: false},
		{value: 11, expectErr: true},
	}

	for _, tt := range tests {
		cv := NewConfigValidator("Benchmark")
		cv.RangeInt("Nodes", tt.value, 1, 10)
		if cv.HasErrors() != tt.expectErr {
			t.Errorf("RangeInt(%d): expected error=%v, got %v", tt.value, tt.expectErr, cv.Errors())
		}
	}
}

func TestConfigValidator_Numbers(t *testing.T) {
	cv := NewConfigValidator("Benchmark").
		NonNegative("Edges", -1).
		PositiveFloat("MaxWeight", 0).
		NonNegative("Seed", 0).
		PositiveFloat("MinWeight", 0.5)

	if len(cv.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(cv.Errors()), cv.Errors())
	}
	if !strings.HasPrefix(cv.Errors()[0].Error(), "Benchmark.Edges:") {
		t.Errorf("Unexpected message %q", cv.Errors()[0])
	}
	if !strings.Contains(cv.Errors()[1].Error(), "MaxWeight") {
		t.Errorf("Unexpected message %q", cv.Errors()[1])
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"debug", "info"}

	if NewConfigValidator("Logging").OneOf("Level", "info", allowed).HasErrors() {
		t.Error("Expected allowed value to pass")
	}
	if !NewConfigValidator("Logging").OneOf("Level", "trace", allowed).HasErrors() {
		t.Error("Expected disallowed value to fail")
	}
}

func TestConfigValidator_CustomWraps(t *testing.T) {
	sentinel := errors.New("too dense")
	err := NewConfigValidator("Benchmark").
		Custom("Edges", func() error { return sentinel }).
		Validate()

	if !errors.Is(err, sentinel) {
		t.Errorf("Expected wrapped sentinel, got %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("Metrics")
	cv.When(false, func(v *ConfigValidator) { v.Required("Namespace", "") })
	if cv.HasErrors() {
		t.Error("Validations should not run when condition is false")
	}

	cv.When(true, func(v *ConfigValidator) { v.Required("Namespace", "") })
	if !cv.HasErrors() {
		t.Error("Validations should run when condition is true")
	}
}

func TestConfigValidator_ValidateJoinsErrors(t *testing.T) {
	if err := NewConfigValidator("Empty").Validate(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	err := NewConfigValidator("Cfg").
		Required("A", "").
		Required("B", "").
		Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "Cfg.A") || !strings.Contains(err.Error(), "Cfg.B") {
		t.Errorf("Expected both errors in message, got %q", err)
	}
}

type stubConfig struct{ err error }

func (s stubConfig) Validate() error { return s.err }

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
	if err := ValidateConfig(stubConfig{}); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	want := errors.New("bad")
	if err := ValidateConfig(stubConfig{err: want}); err != want {
		t.Errorf("Expected %v, got %v", want, err)
	}
}

func TestDefaultOr(t *testing.T) {
	if DefaultOr("", "info") != "info" {
		t.Error("Expected default for empty string")
	}
	if DefaultOr("debug", "info") != "debug" {
		t.Error("Expected value for non-empty string")
	}
	if DefaultOr(0, 64) != 64 || DefaultOr(8, 64) != 8 {
		t.Error("Unexpected int defaulting")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct{ value, want int }{
		{value: -3, want: 0},
		{value: 5, want: 5},
		{value: 99, want: 10},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.value, 0, 10); got != tt.want {
			t.Errorf("ClampInt(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
