package errors

import "testing"

func TestValidateOutputBase(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"default", "org_chart", false},
		{"nested", "out/charts/org", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "org\x00chart", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputBase(tt.base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOutputBase(%q) error = %v, wantErr %v", tt.base, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateTabWidth(t *testing.T) {
	for _, n := range []int{0, 1, 4, 8, 16} {
		if err := ValidateTabWidth(n); err != nil {
			t.Errorf("ValidateTabWidth(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, 17, 100} {
		if err := ValidateTabWidth(n); err == nil {
			t.Errorf("ValidateTabWidth(%d) = nil, want error", n)
		}
	}
}
