// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for shared error handling utilities to ensure
//              consistent error patterns across all textcore packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-07-24

package errors

import (
	"errors"
	"strings"
	"testing"

	tcerror "github.com/msto63/textcore/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(tcerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != tcerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("strx").Operation("substr").Build()
		if err.Error() != "strx.substr failed" {
			t.Errorf("Expected auto message 'strx.substr failed', got %q", err.Error())
		}

		noOp := NewErrorBuilder("strx").Build()
		if noOp.Error() != "strx operation failed" {
			t.Errorf("Expected auto message 'strx operation failed', got %q", noOp.Error())
		}
	})

	t.Run("auto-generated code from operation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleStrx).Operation("check_index").Build()
		if err.Code() != tcerror.Code(CodeStrxIndexOutOfRange) {
			t.Errorf("Expected code %s, got %s", CodeStrxIndexOutOfRange, err.Code())
		}

		patternErr := NewErrorBuilder(ModuleStrx).Operation("find_pattern").Build()
		if patternErr.Code() != tcerror.Code(CodeStrxInvalidPattern) {
			t.Errorf("Expected code %s, got %s", CodeStrxInvalidPattern, patternErr.Code())
		}
	})
}

func TestStandardError(t *testing.T) {
	err := StandardError(ModuleUtf8x, "decode", "malformed sequence")

	if ExtractModule(err) != ModuleUtf8x {
		t.Errorf("ExtractModule() = %q, want %q", ExtractModule(err), ModuleUtf8x)
	}
	if ExtractOperation(err) != "decode" {
		t.Errorf("ExtractOperation() = %q, want %q", ExtractOperation(err), "decode")
	}
	if err.Code() != tcerror.Code(CodeUtf8xInvalidSequence) {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeUtf8xInvalidSequence)
	}
}

func TestModuleError(t *testing.T) {
	cause := errors.New("file truncated while reading")
	err := ModuleError(ModuleConfig, "read", cause, map[string]interface{}{"path": "/tmp/x.toml"})

	if !errors.Is(err, cause) {
		t.Error("ModuleError lost its cause")
	}
	if err.Code() != tcerror.Code(CodeConfigReadFailed) {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeConfigReadFailed)
	}
	if ExtractDetails(err)["path"] != "/tmp/x.toml" {
		t.Errorf("details[path] = %v, want /tmp/x.toml", ExtractDetails(err)["path"])
	}

	// Without a cause the error is still standardized.
	bare := ModuleError(ModuleStrx, "grow_length", nil, nil)
	if bare == nil {
		t.Fatal("ModuleError(nil cause) returned nil")
	}
	if bare.Code() != tcerror.Code(CodeStrxLengthExceeded) {
		t.Errorf("Code() = %s, want %s", bare.Code(), CodeStrxLengthExceeded)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("strx", "index", 42, "must address a content byte")

	if err.Code() != tcerror.Code("STRX_VALIDATION_FAILED") {
		t.Errorf("Code() = %s, want STRX_VALIDATION_FAILED", err.Code())
	}
	if err.Severity() != tcerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	details := ExtractDetails(err)
	if details["field"] != "index" || details["value"] != 42 {
		t.Errorf("details = %v, want field/value set", details)
	}
}

func TestInputAndFormatErrors(t *testing.T) {
	in := InputError(ModuleScratch, "format", nil, "format string")
	if in.Code() != tcerror.Code(CodeInvalidInput) {
		t.Errorf("InputError Code() = %s, want %s", in.Code(), CodeInvalidInput)
	}

	format := FormatError(ModuleFmtx, "%!q", "printf format")
	if format.Code() != tcerror.Code(CodeFmtxFormatFailed) {
		t.Errorf("FormatError Code() = %s, want %s", format.Code(), CodeFmtxFormatFailed)
	}
}

func TestOperationFailed(t *testing.T) {
	cause := errors.New("boom")
	err := OperationFailed(ModuleScratch, "acquire", cause)
	if !errors.Is(err, cause) {
		t.Error("OperationFailed lost its cause")
	}
	if err.Severity() != tcerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
}

func TestOutOfRangeMessage(t *testing.T) {
	err := OutOfRange(ModuleStrx, "substr", 42, 0, 11)
	if !strings.Contains(err.Error(), "validation failed: value out of range in strx.substr") {
		t.Errorf("OutOfRange message = %q, want the standardized prefix", err.Error())
	}
	details := ExtractDetails(err)
	if details["value"] != 42 || details["min"] != 0 || details["max"] != 11 {
		t.Errorf("details = %v, want value/min/max set", details)
	}
}

func TestIsModuleOperation(t *testing.T) {
	err := StandardError(ModuleStrx, "replace", "nothing to do")

	if !IsModuleOperation(err, ModuleStrx, "replace") {
		t.Error("IsModuleOperation() = false for matching module and operation")
	}
	if IsModuleOperation(err, ModuleFmtx, "replace") {
		t.Error("IsModuleOperation() = true for wrong module")
	}
	if IsModuleOperation(errors.New("foreign"), ModuleStrx, "replace") {
		t.Error("IsModuleOperation() = true for foreign error")
	}
}

func TestIsModuleError(t *testing.T) {
	err := StandardError(ModuleConfig, "get_key", "missing")
	if !IsModuleError(err, ModuleConfig) {
		t.Error("IsModuleError() = false for matching module")
	}
	if IsModuleError(err, ModuleStrx) {
		t.Error("IsModuleError() = true for wrong module")
	}
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"non-empty string", "content", false},
		{"empty string", "", true},
		{"nil", nil, true},
		{"empty slice", []int{}, true},
		{"populated slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"number", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired("strx", "input", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("strx", "count", 5, 0, 10); err != nil {
		t.Errorf("ValidateRange(5, 0, 10) = %v, want nil", err)
	}
	if err := ValidateRange("strx", "count", 42, 0, 10); err == nil {
		t.Error("ValidateRange(42, 0, 10) = nil, want error")
	}
	if err := ValidateRange("strx", "count", "NaN", 0, 10); err == nil {
		t.Error("ValidateRange(non-numeric) = nil, want error")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("strx index", func(t *testing.T) {
		err := StrxIndexOutOfRange("at", 12, 5)
		if ExtractModule(err) != ModuleStrx {
			t.Errorf("module = %q, want strx", ExtractModule(err))
		}
		details := ExtractDetails(err)
		if details["value"] != 12 || details["max"] != 4 {
			t.Errorf("details = %v, want value 12 max 4", details)
		}
	})

	t.Run("strx range", func(t *testing.T) {
		err := StrxRangeOutOfBounds("erase", 3, 10, 5)
		if err.Code() != tcerror.Code(CodeStrxIndexOutOfRange) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeStrxIndexOutOfRange)
		}
		if !strings.Contains(err.Error(), "range [3, 13) outside content of length 5") {
			t.Errorf("message = %q, want the range description", err.Error())
		}
	})

	t.Run("strx pattern", func(t *testing.T) {
		err := StrxInvalidPattern("replace", "")
		if err.Code() != tcerror.Code(CodeInvalidInput) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeInvalidInput)
		}
	})

	t.Run("fmtx truncated", func(t *testing.T) {
		err := FmtxTruncated("bprintf", 2048, 1024)
		if err.Code() != tcerror.Code(CodeFmtxTruncated) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeFmtxTruncated)
		}
		details := ExtractDetails(err)
		if details["needed"] != 2048 || details["capacity"] != 1024 {
			t.Errorf("details = %v, want needed/capacity set", details)
		}
	})

	t.Run("scratch truncated", func(t *testing.T) {
		err := ScratchTruncated("format", 4096)
		if err.Code() != tcerror.Code(CodeScratchTruncated) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeScratchTruncated)
		}
	})

	t.Run("utf8x sequence", func(t *testing.T) {
		err := Utf8xInvalidSequence("decode", 7)
		if err.Code() != tcerror.Code(CodeUtf8xInvalidSequence) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeUtf8xInvalidSequence)
		}
		if ExtractDetails(err)["offset"] != 7 {
			t.Errorf("details[offset] = %v, want 7", ExtractDetails(err)["offset"])
		}
	})

	t.Run("utf8x encode", func(t *testing.T) {
		err := Utf8xEncodeOverflow(0x1F600, 2)
		if err.Code() != tcerror.Code(CodeUtf8xEncodeOverflow) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeUtf8xEncodeOverflow)
		}
	})

	t.Run("config parse", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := ConfigParseFailed("/etc/textcore.toml", cause)
		if !errors.Is(err, cause) {
			t.Error("ConfigParseFailed lost its cause")
		}
		if ExtractDetails(err)["path"] != "/etc/textcore.toml" {
			t.Errorf("details[path] = %v", ExtractDetails(err)["path"])
		}
	})

	t.Run("config key", func(t *testing.T) {
		err := ConfigMissingKey("log.level")
		if err.Code() != tcerror.Code(CodeConfigMissingKey) {
			t.Errorf("Code() = %s, want %s", err.Code(), CodeConfigMissingKey)
		}
	})
}
