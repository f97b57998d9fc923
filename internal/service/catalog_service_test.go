package service

import "testing"

func TestValidateServiceFields(t *testing.T) {
	cases := []struct {
		name     string
		svcName  string
		price    float64
		duration int
		wantErr  bool
	}{
		{"valid", "Haircut", 35, 45, false},
		{"empty name", "", 35, 45, true},
		{"negative price", "Haircut", -1, 45, true},
		{"free service allowed", "Consultation", 0, 15, false},
		{"zero duration", "Haircut", 35, 0, true},
		{"max duration", "Full day spa", 300, 480, false},
		{"over max duration", "Full day spa", 300, 481, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateServiceFields(tc.svcName, tc.price, tc.duration)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateServiceFields(%q, %v, %d) error = %v, wantErr %v",
					tc.svcName, tc.price, tc.duration, err, tc.wantErr)
			}
		})
	}
}

func TestStatusPhrase(t *testing.T) {
	if got := statusPhrase("confirmed"); got != "has been confirmed" {
		t.Errorf("statusPhrase(confirmed) = %q", got)
	}
	if got := statusPhrase("something-else"); got != "has been updated" {
		t.Errorf("statusPhrase fallback = %q", got)
	}
}
