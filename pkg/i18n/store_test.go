package i18n

import (
	"errors"
	"testing"
	"testing/fstest"
)

func localeFS() fstest.MapFS {
	return fstest.MapFS{
		"en.yml": &fstest.MapFile{Data: []byte(`
en:
  labels:
    post:
      title: Headline
  formbuilder:
    yes: "Yes"
    "no": "No"
  greeting: "Hello, %s"
`)},
		"es.yml": &fstest.MapFile{Data: []byte(`
es:
  labels:
    post:
      title: Titular
  date:
    order:
      - day
      - month
      - year
`)},
	}
}

func TestLoadFS_FlattensNestedKeys(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	got, err := store.Translate("en", "labels.post.title")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Headline" {
		t.Fatalf("expected Headline, got %q", got)
	}
}

func TestTranslate_ListsJoinWithCommas(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	got, err := store.Translate("es", "date.order")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "day,month,year" {
		t.Fatalf("expected joined list, got %q", got)
	}
}

func TestTranslate_RegionFallsBackToBase(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	got, err := store.Translate("en-US", "labels.post.title")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Headline" {
		t.Fatalf("expected base-locale fallback, got %q", got)
	}
}

func TestTranslate_FormatsArgs(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	got, err := store.Translate("en", "greeting", "world")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Hello, world" {
		t.Fatalf("expected formatted message, got %q", got)
	}
}

func TestTranslate_MissingKey(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	if _, err := store.Translate("en", "labels.post.subtitle"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
	if _, err := store.Translate("fr", "labels.post.title"); err == nil {
		t.Fatalf("expected error for unknown locale")
	}
}

func TestLoadFS_NilFilesystem(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Translate("en", "anything"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation from empty store, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	store, err := LoadFS(localeFS())
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	got := Lookup(store, "en", []string{"labels.post.missing", "labels.post.title"}, "Fallback")
	if got != "Headline" {
		t.Fatalf("expected first hit in chain, got %q", got)
	}

	got = Lookup(store, "en", []string{"labels.post.missing"}, "Fallback")
	if got != "Fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	got = Lookup(nil, "en", []string{"labels.post.title"}, "Fallback")
	if got != "Fallback" {
		t.Fatalf("expected fallback with nil translator, got %q", got)
	}
}
