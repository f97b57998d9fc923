package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("client@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "no-at-sign.com", "noperiod@com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	for _, bad := range []string{"", "short"} {
		if err := ValidatePassword(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	for _, ok := range []string{"", "+1 (555) 123-4567", "5551234567"} {
		if err := ValidatePhone(ok); err != nil {
			t.Errorf("expected %q to be accepted: %v", ok, err)
		}
	}
	for _, bad := range []string{"555-abc-1234", "123", "12345678901234567890"} {
		if err := ValidatePhone(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
