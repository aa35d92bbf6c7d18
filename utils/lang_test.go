package utils

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitI18NBundle(t *testing.T) {
	viper.Set("i18n.dir", "../i18n")
	InitI18NBundle()

	name, err := NewLocalizer("en").Localize(&i18n.LocalizeConfig{
		MessageID: "symptoms.fever.name",
	})
	assert.Nil(t, err)
	assert.Equal(t, "Fever", name)
}

func TestNewLocalizerFallsBackToEnglish(t *testing.T) {
	viper.Set("i18n.dir", "../i18n")
	InitI18NBundle()

	name, err := NewLocalizer("zh-TW").Localize(&i18n.LocalizeConfig{
		MessageID: "symptoms.cough.name",
	})
	assert.Nil(t, err)
	assert.Equal(t, "Cough", name)
}
