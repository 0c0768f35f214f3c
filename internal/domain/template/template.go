// Package template maps (notification type, language) pairs to localized push
// content. The mapping is a closed table so an unsupported type is a
// configuration error rather than a silent string-key miss.
package template

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotificationType identifies the kind of push being sent.
type NotificationType string

const (
	TypeReminder       NotificationType = "reminder"
	TypeCoupleReminder NotificationType = "couple_reminder"
	TypeMilestone      NotificationType = "milestone"
	TypeTest           NotificationType = "test"
)

// Language selects the localization of a template.
type Language string

const (
	LanguageVietnamese Language = "vi"
	LanguageEnglish    Language = "en"

	// DefaultLanguage is used when the requested language has no table entry.
	DefaultLanguage = LanguageVietnamese
)

// ErrUnknownType is returned when no template exists for a notification type.
var ErrUnknownType = errors.New("unknown notification type")

// Args carries the dynamic parts of a notification body.
type Args struct {
	ReminderTitle string
	CreatorName   string
	Days          int
}

// Template renders a localized title and body.
type Template struct {
	Title string
	Body  func(Args) string
}

var templates = map[NotificationType]map[Language]Template{
	TypeReminder: {
		LanguageVietnamese: {
			Title: "💝 Nhắc nhở từ ILoveYou",
			Body: func(a Args) string {
				return fmt.Sprintf("Đến giờ rồi: %s", a.ReminderTitle)
			},
		},
		LanguageEnglish: {
			Title: "💝 Reminder from ILoveYou",
			Body: func(a Args) string {
				return fmt.Sprintf("It's time: %s", a.ReminderTitle)
			},
		},
	},
	TypeCoupleReminder: {
		LanguageVietnamese: {
			Title: "💑 Nhắc nhở cặp đôi",
			Body: func(a Args) string {
				return fmt.Sprintf("Từ %s: %s", a.CreatorName, a.ReminderTitle)
			},
		},
		LanguageEnglish: {
			Title: "💑 Couple reminder",
			Body: func(a Args) string {
				return fmt.Sprintf("From %s: %s", a.CreatorName, a.ReminderTitle)
			},
		},
	},
	TypeMilestone: {
		LanguageVietnamese: {
			Title: "🕊️ Cột mốc ngày bình yên",
			Body: func(a Args) string {
				return fmt.Sprintf("Hai bạn đã có %d ngày bình yên bên nhau!", a.Days)
			},
		},
		LanguageEnglish: {
			Title: "🕊️ Peaceful days milestone",
			Body: func(a Args) string {
				return fmt.Sprintf("You two have shared %d peaceful days together!", a.Days)
			},
		},
	},
	TypeTest: {
		LanguageVietnamese: {
			Title: "🔔 Thông báo thử nghiệm",
			Body: func(Args) string {
				return "Thông báo đẩy của bạn đang hoạt động!"
			},
		},
		LanguageEnglish: {
			Title: "🔔 Test notification",
			Body: func(Args) string {
				return "Your push notifications are working!"
			},
		},
	},
}

// Resolve returns the template for the given type and language. An unknown
// language falls back to DefaultLanguage; an unknown type is an error.
func Resolve(typ NotificationType, lang Language) (Template, error) {
	byLang, ok := templates[typ]
	if !ok {
		return Template{}, errors.Wrapf(ErrUnknownType, "%q", typ)
	}

	tpl, ok := byLang[lang]
	if !ok {
		tpl = byLang[DefaultLanguage]
	}

	return tpl, nil
}

// ParseLanguage normalizes a stored preference string to a Language,
// defaulting when empty or unrecognized.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageVietnamese, LanguageEnglish:
		return Language(s)
	default:
		return DefaultLanguage
	}
}
