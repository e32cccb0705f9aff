package main

import "testing"

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{name: "unset uses fallback", value: "", fallback: true, want: true},
		{name: "explicit false", value: "false", fallback: true, want: false},
		{name: "explicit true", value: "1", fallback: false, want: true},
		{name: "garbage keeps true fallback", value: "yep", fallback: true, want: true},
		{name: "garbage keeps false fallback", value: "yep", fallback: false, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value != "" {
				t.Setenv("MIGRATION_TEST_FLAG", tc.value)
			}
			if got := envBool("MIGRATION_TEST_FLAG", tc.fallback); got != tc.want {
				t.Fatalf("envBool(%q, %t) = %t, want %t", tc.value, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("parseSteps(nil) = %d, %v; want 1, nil", got, err)
	}
	if got, err := parseSteps([]string{"3"}); err != nil || got != 3 {
		t.Fatalf("parseSteps(3) = %d, %v; want 3, nil", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatal("parseSteps(0) should fail")
	}
}
