package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// Service resolve mensagens traduzidas por idioma.
// As mensagens vivem em arquivos <lang>.json no diretório de locales;
// chaves ausentes caem para o idioma padrão e, por fim, para a própria chave.
type Service struct {
	mu              sync.RWMutex
	catalog         map[string]map[string]string // [idioma][chave]mensagem
	defaultLanguage string
}

// NewService carrega todos os locales de localesDir.
// Falha se o diretório não tiver nenhum .json ou se o idioma padrão
// não estiver entre os arquivos carregados.
func NewService(localesDir, defaultLang string) (*Service, error) {
	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	catalog := make(map[string]map[string]string, len(files))
	for _, file := range files {
		lang := strings.TrimSuffix(filepath.Base(file), ".json")

		messages, err := loadLocale(file)
		if err != nil {
			return nil, err
		}
		catalog[lang] = messages
	}

	if _, ok := catalog[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return &Service{
		catalog:         catalog,
		defaultLanguage: defaultLang,
	}, nil
}

func loadLocale(file string) (map[string]string, error) {
	data, err := os.ReadFile(file) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}
	return messages, nil
}

// T traduz uma chave para o idioma solicitado, com fallback para o idioma
// padrão e por fim para a própria chave. Parâmetros são interpolados via
// template Go ({{.Name}} etc.); erros de template devolvem a mensagem crua.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	message, ok := s.lookup(lang, key)
	if !ok {
		message, ok = s.lookup(s.defaultLanguage, key)
	}
	s.mu.RUnlock()

	if !ok {
		return key
	}
	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// lookup exige o read lock do caller
func (s *Service) lookup(lang, key string) (string, bool) {
	messages, ok := s.catalog[lang]
	if !ok {
		return "", false
	}
	message, ok := messages[key]
	return message, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.catalog))
	for lang := range s.catalog {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma foi carregado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.catalog[lang]
	return ok
}
