// Package i18n provides the user-facing string tables.
package i18n

import (
	"os"
	"strings"
)

var translations = map[string]map[string]string{
	"en": {
		"app_name":           "RemindMe",
		"manage":             "Manage",
		"done":               "Done",
		"no_reminders_title": "No Reminders Yet",
		"no_reminders_desc":  "Press a to create your first multimedia reminder.",
		"new_reminder":       "New Reminder",
		"cancel":             "Cancel",
		"save":               "Save",
		"when":               "When?",
		"tab_voice":          "Voice",
		"tab_text":           "Text",
		"tab_doodle":         "Doodle",
		"tap_to_record":      "Press r to Record",
		"recording":          "Recording...",
		"sync_gcal":          "Sync to Google Calendar",
		"alert_title":        "Reminder",
		"snooze":             "Snooze 5m",
		"complete":           "Complete",
		"placeholder_text":   "Type your note here...",
		"delete_confirm":     "Delete selected reminders?",
		"mic_error":          "Microphone unavailable. Check the capture command.",
		"save_success":       "Reminder saved!",
		"error_no_content":   "Please provide some content (Voice, Text, or Doodle).",
		"error_no_time":      "Please select a time for the reminder.",
	},
	"zh-TW": {
		"app_name":           "提醒我",
		"manage":             "管理",
		"done":               "完成",
		"no_reminders_title": "尚無提醒",
		"no_reminders_desc":  "按 a 建立您的第一個多媒體提醒。",
		"new_reminder":       "新增提醒",
		"cancel":             "取消",
		"save":               "儲存",
		"when":               "時間?",
		"tab_voice":          "語音",
		"tab_text":           "文字",
		"tab_doodle":         "塗鴉",
		"tap_to_record":      "按 r 錄音",
		"recording":          "錄音中...",
		"sync_gcal":          "同步至 Google 日曆",
		"alert_title":        "提醒",
		"snooze":             "貪睡 5 分鐘",
		"complete":           "完成",
		"placeholder_text":   "在此輸入您的筆記...",
		"delete_confirm":     "刪除選取的提醒嗎？",
		"mic_error":          "無法存取麥克風。請檢查錄音指令。",
		"save_success":       "提醒已儲存！",
		"error_no_content":   "請提供內容（語音、文字或塗鴉）。",
		"error_no_time":      "請選擇提醒時間。",
	},
}

type Bundle struct {
	lang string
	data map[string]string
}

// NewBundle returns the strings for lang, falling back to English for
// unknown locales.
func NewBundle(lang string) *Bundle {
	data, ok := translations[lang]
	if !ok {
		lang = "en"
		data = translations["en"]
	}
	return &Bundle{lang: lang, data: data}
}

func (b *Bundle) Lang() string { return b.lang }

// T looks up a key, falling back to English and then to the key itself.
func (b *Bundle) T(key string) string {
	if v, ok := b.data[key]; ok {
		return v
	}
	if v, ok := translations["en"][key]; ok {
		return v
	}
	return key
}

// Detect picks the locale from the environment. Any Chinese locale maps to
// zh-TW, everything else to en.
func Detect() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), "zh") {
			return "zh-TW"
		}
		return "en"
	}
	return "en"
}
