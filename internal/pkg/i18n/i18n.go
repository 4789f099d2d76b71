package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

//go:embed locales/*/messages.yaml
var embedded embed.FS

var (
	locales       = make(map[string]Translations)
	defaultLocale = "en"
	mu            sync.RWMutex
)

// Load reads every locales/<lang>/messages.yaml bundled into the binary.
func Load(fallback string) error {
	return LoadFS(embedded, "locales", fallback)
}

func LoadFS(fsys fs.FS, root, fallback string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}

	loaded := make(map[string]Translations)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := path.Join(root, locale, "messages.yaml")

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			continue
		}

		var file struct {
			Messages Translations `yaml:"MESSAGES"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}
		loaded[locale] = file.Messages
	}

	mu.Lock()
	defer mu.Unlock()
	locales = loaded
	if fallback != "" {
		defaultLocale = fallback
	}
	return nil
}

// Translate falls back to the default locale, then to English, then to the
// key itself.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	for _, candidate := range []string{locale, defaultLocale, "en"} {
		if trans, ok := locales[candidate]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}
	return key
}

// FromAcceptLanguage picks the first supported language of an
// Accept-Language header, or the default locale.
func FromAcceptLanguage(header string) string {
	mu.RLock()
	defer mu.RUnlock()

	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		lang := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if _, ok := locales[lang]; ok {
			return lang
		}
	}
	return defaultLocale
}
