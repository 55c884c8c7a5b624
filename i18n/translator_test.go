package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"field": "static/camera/shutterAngle", "type": "double"}

	// default is en
	if msg := T("invalid_type", data); msg != "field: static/camera/shutterAngle isn't of type: double" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", data); msg == "field: static/camera/shutterAngle isn't of type: double" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

func TestTranslator_RangeTemplate(t *testing.T) {
	msg := T("too_big", map[string]string{"field": "shutterAngle", "min": "0", "max": "360"})
	if msg != "field: shutterAngle is outside the expected range 0 - 360" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator_NilRestoresDefault(t *testing.T) {
	SetTranslator(fixed("x"))
	if T("required", nil) != "x" {
		t.Fatalf("custom translator not used")
	}
	SetTranslator(nil)
	if T("required", map[string]string{"field": "timing"}) != "field: timing is missing required fields" {
		t.Fatalf("default translator not restored")
	}
}
