// Package i18n загружает статические ресурсы локализации (zh/en) и
// выбирает язык пользователя.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

// Поддерживаемые языки
const (
	LangZH = "zh"
	LangEN = "en"
)

var supportedTags = map[string]language.Tag{
	LangZH: language.Chinese,
	LangEN: language.English,
}

// Translator переводит ключи через локализаторы go-i18n. Безопасен для конкурентного чтения.
type Translator struct {
	localizers  map[string]*goi18n.Localizer
	defaultLang string
	fallback    string
	langs       []string
	matcher     language.Matcher
}

// Load читает встроенные файлы locales/zh.json и locales/en.json
func Load(defaultLang, fallback string) (*Translator, error) {
	if err := checkLocales(defaultLang, fallback); err != nil {
		return nil, err
	}

	bundle := goi18n.NewBundle(supportedTags[fallback])
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range []string{LangZH, LangEN} {
		path := "locales/" + lang + ".json"
		data, err := localesFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
		}
	}

	return newTranslator(bundle, defaultLang, fallback), nil
}

// New создает Translator из готовых ресурсов: язык -> ключ -> сообщение
func New(resources map[string]map[string]string, defaultLang, fallback string) (*Translator, error) {
	if err := checkLocales(defaultLang, fallback); err != nil {
		return nil, err
	}

	bundle := goi18n.NewBundle(supportedTags[fallback])
	for lang, messages := range resources {
		tag, ok := supportedTags[lang]
		if !ok {
			return nil, fmt.Errorf("unsupported locale %q", lang)
		}
		for id, text := range messages {
			if err := bundle.AddMessages(tag, &goi18n.Message{ID: id, Other: text}); err != nil {
				return nil, fmt.Errorf("failed to add message %s/%s: %w", lang, id, err)
			}
		}
	}

	return newTranslator(bundle, defaultLang, fallback), nil
}

func checkLocales(defaultLang, fallback string) error {
	if _, ok := supportedTags[defaultLang]; !ok {
		return fmt.Errorf("unsupported default locale %q", defaultLang)
	}
	if _, ok := supportedTags[fallback]; !ok {
		return fmt.Errorf("unsupported fallback locale %q", fallback)
	}
	return nil
}

func newTranslator(bundle *goi18n.Bundle, defaultLang, fallback string) *Translator {
	// Язык по умолчанию идет первым: matcher возвращает его, если ничего не подошло
	langs := []string{defaultLang}
	for lang := range supportedTags {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = supportedTags[lang]
	}

	// Локализатор каждого языка сначала ищет в нем, затем в резервном
	localizers := make(map[string]*goi18n.Localizer, len(langs))
	for _, lang := range langs {
		localizers[lang] = goi18n.NewLocalizer(bundle, lang, fallback)
	}

	return &Translator{
		localizers:  localizers,
		defaultLang: defaultLang,
		fallback:    fallback,
		langs:       langs,
		matcher:     language.NewMatcher(tags),
	}
}

// Default возвращает язык по умолчанию
func (t *Translator) Default() string {
	return t.defaultLang
}

// Supported сообщает, поддерживается ли язык
func (t *Translator) Supported(lang string) bool {
	_, ok := supportedTags[lang]
	return ok
}

// Toggle возвращает второй язык пары zh/en
func (t *Translator) Toggle(lang string) string {
	if lang == LangZH {
		return LangEN
	}
	return LangZH
}

// Match выбирает язык по заголовку Accept-Language
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T возвращает перевод ключа. args задаются парами имя/значение для {{.имя}}.
// Если ключа нет в выбранном языке, используется резервный язык, а затем сам ключ.
func (t *Translator) T(lang, key string, args ...string) string {
	localizer, ok := t.localizers[lang]
	if !ok {
		localizer = t.localizers[t.fallback]
	}

	var data map[string]string
	if len(args) > 1 {
		data = make(map[string]string, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			data[args[i]] = args[i+1]
		}
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
