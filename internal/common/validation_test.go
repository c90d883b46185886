package common

import (
	"errors"
	"testing"
)

func TestValidator_CollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("filename", "", Required, AllowedExtension).
		Field("id", "not-a-uuid", UUID)

	if !v.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if got := len(v.Errors()); got != 3 {
		t.Errorf("collected %d errors, want 3", got)
	}
	if !errors.Is(v.Error(), ErrInvalidInput) {
		t.Error("combined error should wrap ErrInvalidInput")
	}
}

func TestValidator_CleanInput(t *testing.T) {
	v := NewValidator().
		Field("filename", "Pearl One Capital.pdf", Required, AllowedExtension).
		Field("id", "0a97a6a3-5f3f-4a8e-9d54-9c6a8b1a2c3d", UUID)

	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
	if v.Error() != nil {
		t.Error("combined error should be nil without failures")
	}
}

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"brochure.pdf", true},
		{"brochure.PDF", true},
		{"notes.txt", true},
		{"cover.png", false},
		{"no-extension", false},
	}
	for _, tt := range tests {
		err := AllowedExtension("filename", tt.filename)
		if (err == nil) != tt.ok {
			t.Errorf("AllowedExtension(%q) = %v, want ok=%v", tt.filename, err, tt.ok)
		}
	}
}

func TestAppError_UnwrapsCause(t *testing.T) {
	err := NewAppError("STORE_GET", "load record", ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Error("AppError should unwrap to its cause")
	}
	if err.Error() != "STORE_GET: load record: resource not found" {
		t.Errorf("message = %q", err.Error())
	}
}
