package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("expected_array_value", nil); msg == "expected_array_value" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("expected_array_value", nil); msg == "expected a JSON array" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	if msg := T("expected_property", map[string]string{"property": "coordinates"}); msg != "required member coordinates missing" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := T("unknown_type", map[string]string{"got": "Circle"}); msg != "unknown type Circle" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := T("unknown_type", map[string]string{"expected": "Feature", "got": "Point"}); msg != "expected type Feature, got Point" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixed("x"))
	defer SetTranslator(nil)
	if T("anything", nil) != "x" {
		t.Fatalf("custom translator not used")
	}
	SetTranslator(nil)
	if T("unknown_code", nil) != "unknown_code" {
		t.Fatalf("unknown codes should fall back to the code")
	}
}
