package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AllTypesHaveBothLanguages(t *testing.T) {
	types := []NotificationType{TypeReminder, TypeCoupleReminder, TypeMilestone, TypeTest}
	langs := []Language{LanguageVietnamese, LanguageEnglish}

	for _, typ := range types {
		for _, lang := range langs {
			tpl, err := Resolve(typ, lang)
			require.NoError(t, err, "type %s lang %s", typ, lang)
			assert.NotEmpty(t, tpl.Title)
			assert.NotEmpty(t, tpl.Body(Args{ReminderTitle: "x", CreatorName: "y", Days: 7}))
		}
	}
}

func TestResolve_UnknownLanguageFallsBackToVietnamese(t *testing.T) {
	tpl, err := Resolve(TypeReminder, Language("fr"))
	require.NoError(t, err)

	viTpl, err := Resolve(TypeReminder, LanguageVietnamese)
	require.NoError(t, err)
	assert.Equal(t, viTpl.Title, tpl.Title)
}

func TestResolve_UnknownTypeIsError(t *testing.T) {
	_, err := Resolve(NotificationType("love_letter"), LanguageEnglish)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestResolve_CoupleReminderIncludesCreator(t *testing.T) {
	tpl, err := Resolve(TypeCoupleReminder, LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "From Minh: Buy flowers", tpl.Body(Args{CreatorName: "Minh", ReminderTitle: "Buy flowers"}))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageEnglish, ParseLanguage("en"))
	assert.Equal(t, LanguageVietnamese, ParseLanguage("vi"))
	assert.Equal(t, DefaultLanguage, ParseLanguage(""))
	assert.Equal(t, DefaultLanguage, ParseLanguage("de"))
}
