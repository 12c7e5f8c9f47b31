package doctor

import (
	"encoding/json"
	"testing"
)

func TestCheckStatus_String(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.status.String(); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

// mockCheck is a test implementation of Check.
type mockCheck struct {
	name     string
	category string
	result   CheckResult
	runs     int
}

func (m *mockCheck) Name() string     { return m.name }
func (m *mockCheck) Category() string { return m.category }
func (m *mockCheck) Run() CheckResult {
	m.runs++
	return m.result
}

func TestRunAll(t *testing.T) {
	first := &mockCheck{
		name:     "check1",
		category: "TEST",
		result:   CheckResult{Name: "check1", Status: StatusPass, Message: "OK"},
	}
	second := &mockCheck{
		name:     "check2",
		category: "TEST",
		result:   CheckResult{Name: "check2", Status: StatusFail, Message: "Failed"},
	}

	results := RunAll([]Check{first, second})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "check1" || results[1].Name != "check2" {
		t.Errorf("results out of order: %+v", results)
	}
	if first.runs != 1 || second.runs != 1 {
		t.Errorf("each check should run once, got %d and %d", first.runs, second.runs)
	}
}

func TestGroupByCategory(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "a", category: CategoryConfig},
		&mockCheck{name: "b", category: CategoryClipboard},
		&mockCheck{name: "c", category: CategoryConfig},
	}

	grouped := GroupByCategory(checks)

	if got := grouped[CategoryConfig]; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("CONFIG indices = %v, want [0 2]", got)
	}
	if got := grouped[CategoryClipboard]; len(got) != 1 || got[0] != 1 {
		t.Errorf("CLIPBOARD indices = %v, want [1]", got)
	}
}

func TestHasFailuresAndIssues(t *testing.T) {
	pass := []CheckResult{{Status: StatusPass}}
	warn := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	fail := []CheckResult{{Status: StatusFail}}

	if HasFailures(pass) || HasIssues(pass) {
		t.Error("all-pass results should have no failures or issues")
	}
	if HasFailures(warn) {
		t.Error("warnings are not failures")
	}
	if !HasIssues(warn) {
		t.Error("warnings are issues")
	}
	if !HasFailures(fail) || !HasIssues(fail) {
		t.Error("failures are failures and issues")
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []CheckResult
		want    string
	}{
		{"clean", []CheckResult{{Status: StatusPass}}, "Everything looks good"},
		{"one", []CheckResult{{Status: StatusWarn}}, "1 issue found"},
		{"two", []CheckResult{{Status: StatusWarn}, {Status: StatusFail}}, "2 issues found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summary(tc.results); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckResult_JSON(t *testing.T) {
	data, err := json.Marshal(CheckResult{Name: "display", Status: StatusWarn, Message: "none"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"display","status":"warn","message":"none"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestCheckStatus_TextRoundTrip(t *testing.T) {
	for _, status := range []CheckStatus{StatusPass, StatusWarn, StatusFail} {
		text, _ := status.MarshalText()
		var got CheckStatus
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != status {
			t.Errorf("got %v, want %v", got, status)
		}
	}

	var s CheckStatus
	if err := s.UnmarshalText([]byte("maybe")); err == nil {
		t.Error("expected error for unknown status")
	}
}
