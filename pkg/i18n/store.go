package i18n

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Store is an immutable, in-memory translation table loaded from YAML locale
// files. Each file's top-level keys are locale codes; nested mappings flatten
// into dotted keys:
//
//	en:
//	  labels:
//	    post:
//	      title: Headline
//
// resolves "labels.post.title" for locale "en". Locale matching uses BCP 47
// semantics, so "en-US" falls back to "en" when no exact table exists.
type Store struct {
	locales map[string]map[string]string
	tags    []language.Tag
	matcher language.Matcher
}

// LoadFS walks fsys and parses every .yml/.yaml file into the store. A nil
// filesystem or one without locale files yields an empty store, which
// translates nothing but never errors at lookup construction time.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{locales: make(map[string]map[string]string)}
	if fsys == nil {
		return store.finalize(), nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLocaleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", path, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", path, err)
		}

		for locale, tree := range doc {
			locale = strings.TrimSpace(locale)
			if locale == "" {
				continue
			}
			table := store.locales[locale]
			if table == nil {
				table = make(map[string]string)
				store.locales[locale] = table
			}
			flatten("", tree, table)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store.finalize(), nil
}

// Translate resolves key for the best-matching locale table. Args are applied
// as fmt verbs when the message contains any.
func (s *Store) Translate(locale, key string, args ...any) (string, error) {
	if s == nil || len(s.locales) == 0 {
		return "", ErrMissingTranslation
	}

	table := s.tableFor(locale)
	if table == nil {
		return "", ErrMissingTranslation
	}
	msg, ok := table[key]
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg, nil
}

// Locales lists the locale codes the store holds, sorted.
func (s *Store) Locales() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.locales))
	for locale := range s.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

func (s *Store) finalize() *Store {
	for _, locale := range s.Locales() {
		if tag, err := language.Parse(locale); err == nil {
			s.tags = append(s.tags, tag)
		}
	}
	if len(s.tags) > 0 {
		s.matcher = language.NewMatcher(s.tags)
	}
	return s
}

func (s *Store) tableFor(locale string) map[string]string {
	locale = strings.TrimSpace(locale)
	if table, ok := s.locales[locale]; ok {
		return table
	}
	if s.matcher == nil {
		return nil
	}
	_, index, conf := s.matcher.Match(language.Make(locale))
	if conf == language.No || index >= len(s.tags) {
		return nil
	}
	base, _ := s.tags[index].Base()
	if table, ok := s.locales[s.tags[index].String()]; ok {
		return table
	}
	return s.locales[base.String()]
}

func flatten(prefix string, node any, dest map[string]string) {
	switch value := node.(type) {
	case map[string]any:
		for key, child := range value {
			flatten(joinKey(prefix, key), child, dest)
		}
	case map[any]any:
		for key, child := range value {
			flatten(joinKey(prefix, fmt.Sprint(key)), child, dest)
		}
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
		}
		if prefix != "" {
			dest[prefix] = strings.Join(parts, ",")
		}
	case nil:
		// skip empty nodes
	default:
		if prefix != "" {
			dest[prefix] = strings.TrimSpace(fmt.Sprint(value))
		}
	}
}

func joinKey(prefix, key string) string {
	key = strings.TrimSpace(key)
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}

func isLocaleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
