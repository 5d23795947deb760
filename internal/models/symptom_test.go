package models

import "testing"

func TestParseSymptom(t *testing.T) {
	cases := []struct {
		raw    string
		want   SymptomEntry
		wantOK bool
	}{
		{raw: "cramps", want: SymptomEntry{ID: SymptomCramps}, wantOK: true},
		{raw: "Cramps:severe", want: SymptomEntry{ID: SymptomCramps, Severity: SeveritySevere}, wantOK: true},
		{raw: "back-pain:1", want: SymptomEntry{ID: SymptomBackPain, Severity: SeverityMild}, wantOK: true},
		{raw: "joint ache:high", want: SymptomEntry{ID: "joint_ache", Severity: SeveritySevere}, wantOK: true},
		{raw: "headache:extreme", want: SymptomEntry{ID: SymptomHeadache, Severity: SeverityOther}, wantOK: true},
		{raw: "  ", wantOK: false},
		{raw: ":mild", wantOK: false},
	}

	for _, testCase := range cases {
		got, ok := ParseSymptom(testCase.raw)
		if ok != testCase.wantOK {
			t.Fatalf("%q: expected ok=%v, got %v", testCase.raw, testCase.wantOK, ok)
		}
		if ok && got != testCase.want {
			t.Fatalf("%q: expected %#v, got %#v", testCase.raw, testCase.want, got)
		}
	}
}

func TestSymptomEntryString(t *testing.T) {
	if got := (SymptomEntry{ID: SymptomBloating}).String(); got != "bloating" {
		t.Fatalf("expected bare id, got %q", got)
	}
	if got := (SymptomEntry{ID: SymptomBloating, Severity: SeverityModerate}).String(); got != "bloating:moderate" {
		t.Fatalf("expected id with severity, got %q", got)
	}
}

func TestBuiltinSymptomsAreKnown(t *testing.T) {
	for _, id := range BuiltinSymptomIDs() {
		if !id.Known() {
			t.Fatalf("expected builtin symptom %s to be known", id)
		}
	}
	if SymptomID("joint_ache").Known() {
		t.Fatal("did not expect custom symptom to be known")
	}
}

func TestParseEnumsFallBack(t *testing.T) {
	if ParseLogType("workout") != LogTypeOther || LogTypeOther.Known() {
		t.Fatal("expected unknown log type to map to other")
	}
	if ParseFlowIntensity("torrential") != FlowUnknown || FlowUnknown.Known() {
		t.Fatal("expected unknown flow to map to unknown")
	}
	if !FlowNone.Known() {
		t.Fatal("expected empty flow to be valid")
	}
	if ParseMood("Bored") != MoodOther {
		t.Fatal("expected unknown mood to map to other")
	}
}
