package config

import "testing"

func TestConstants(t *testing.T) {
	if MaxDigits != 6 {
		t.Fatalf("MaxDigits = %d, want 6", MaxDigits)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if DefaultBellInterval <= 0 {
		t.Fatalf("DefaultBellInterval must be positive")
	}
	if MaxPresets != 9 {
		t.Fatalf("MaxPresets = %d, want 9 (F1-F9)", MaxPresets)
	}
	if AppName == "" || DBFileName == "" || LogFileName == "" || ConfigFileName == "" {
		t.Fatalf("file name constants should not be empty")
	}
	if MinProgressWidth > ProgressWidth {
		t.Fatalf("MinProgressWidth exceeds ProgressWidth")
	}
}
