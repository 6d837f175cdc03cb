// Package i18n renders human-readable messages for issue codes.
package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "property", "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"expected_object_value":              "expected a JSON object",
		"expected_array_value":               "expected a JSON array",
		"expected_string_value":              "expected a JSON string",
		"expected_f64_value":                 "expected a finite number",
		"expected_property":                  "required member {property} missing",
		"unknown_type":                       "unknown type {got}",
		"unknown_type_expected":              "expected type {expected}, got {got}",
		"invalid_identifier_type":            "feature id must be a string or a number",
		"properties_expected_object_or_null": "properties must be an object or null",
		"bbox_expected_array":                "bbox must be an array",
		"bbox_expected_numeric_values":       "bbox values must be numbers",
		"reserved_foreign_member":            "foreign member {property} collides with an encoded member",
		"malformed_json":                     "malformed JSON",
		"geojson_expected_object":            "GeoJSON document must be an object",
		"parse_error":                        "parse error",
		"duplicate_key":                      "duplicate key",
		"truncated":                          "truncated",
	},
	"ja": {
		"expected_object_value":              "JSONオブジェクトが必要です",
		"expected_array_value":               "JSON配列が必要です",
		"expected_string_value":              "JSON文字列が必要です",
		"expected_f64_value":                 "有限の数値が必要です",
		"expected_property":                  "必須メンバー {property} が不足しています",
		"unknown_type":                       "未知の型 {got} です",
		"unknown_type_expected":              "型 {expected} が必要ですが {got} でした",
		"invalid_identifier_type":            "id は文字列または数値である必要があります",
		"properties_expected_object_or_null": "properties はオブジェクトまたは null である必要があります",
		"bbox_expected_array":                "bbox は配列である必要があります",
		"bbox_expected_numeric_values":       "bbox の値は数値である必要があります",
		"reserved_foreign_member":            "外部メンバー {property} が既存のメンバーと衝突しています",
		"malformed_json":                     "JSONの形式が不正です",
		"geojson_expected_object":            "GeoJSONドキュメントはオブジェクトである必要があります",
		"parse_error":                        "解析エラー",
		"duplicate_key":                      "キーが重複しています",
		"truncated":                          "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	key := code
	if code == "unknown_type" && data["expected"] != "" {
		key = "unknown_type_expected"
	}
	msg, ok := dictionaries[t.lang][key]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
