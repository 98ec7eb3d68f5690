package models

import (
	"testing"
)

func TestStatus(t *testing.T) {
	ok := Success()
	if ok.Failed() {
		t.Error("Success() should not be failed")
	}
	if ok.String() != "PASS" {
		t.Errorf("Success().String() = %q, want PASS", ok.String())
	}

	fail := Fail("Missing file %s", "a.txt")
	if !fail.Failed() {
		t.Error("Fail() should be failed")
	}
	if fail.Reason != "Missing file a.txt" {
		t.Errorf("Reason = %q, want %q", fail.Reason, "Missing file a.txt")
	}
	if fail.String() != "FAIL: Missing file a.txt" {
		t.Errorf("String() = %q", fail.String())
	}
}

func TestCheckTypeKinds(t *testing.T) {
	tests := []struct {
		check CheckType
		want  string
	}{
		{FileCheck{}, KindFile},
		{DirectoryCheck{}, KindDirectory},
		{CommandCheck{}, KindCommand},
		{HTTPCheck{}, KindHTTP},
		{VarSetCheck{}, KindVarSet},
	}

	for _, tt := range tests {
		if got := tt.check.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.check, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	var report Report
	if !report.OK() {
		t.Error("empty report should be OK")
	}

	report.Add(Result{Check: Check{Name: "a"}, Status: Success()})
	report.Add(Result{Check: Check{Name: "b"}, Status: Fail("nope")})
	report.Add(Result{Check: Check{Name: "c"}, Status: Success()})

	if report.Passed != 2 || report.Failed != 1 {
		t.Errorf("Passed/Failed = %d/%d, want 2/1", report.Passed, report.Failed)
	}
	if len(report.Results) != 3 {
		t.Errorf("len(Results) = %d, want 3", len(report.Results))
	}
	if report.OK() {
		t.Error("report with a failure should not be OK")
	}
}
