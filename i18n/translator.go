package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides values substituted into the message template (for example,
// "field", "type", "min", "max" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var templates = map[string]map[string]string{
	"en": {
		"invalid_type":     "field: {field} isn't of type: {type}",
		"required":         "field: {field} is missing required fields",
		"pattern":          "field: {field} doesn't match the required pattern",
		"too_small":        "field: {field} is outside the expected range {min} - {max}",
		"too_big":          "field: {field} is outside the expected range {min} - {max}",
		"invalid_enum":     "field: {field} isn't a valid enumeration",
		"invalid_value":    "field: {field} must be {expected}",
		"version_mismatch": "field: {field} doesn't match the supported protocol version {expected}",
		"unknown_key":      "key: {field} was still remaining after parsing",
		"duplicate_key":    "key: {field} is duplicated",
		"parse_error":      "parse error",
		"truncated":        "truncated",
	},
	"ja": {
		"invalid_type":     "フィールド {field} の型が {type} ではありません",
		"required":         "フィールド {field} に必須項目が不足しています",
		"pattern":          "フィールド {field} が必要なパターンに一致しません",
		"too_small":        "フィールド {field} が範囲 {min} - {max} の外です",
		"too_big":          "フィールド {field} が範囲 {min} - {max} の外です",
		"invalid_enum":     "フィールド {field} は有効な列挙値ではありません",
		"invalid_value":    "フィールド {field} は {expected} でなければなりません",
		"version_mismatch": "フィールド {field} がサポートされるプロトコルバージョン {expected} と一致しません",
		"unknown_key":      "キー {field} が解析後も残っています",
		"duplicate_key":    "キー {field} が重複しています",
		"parse_error":      "解析エラー",
		"truncated":        "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := templates[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
