package countries

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/choices"
)

//go:embed data/iso3166.txt
var dataFS embed.FS

const defaultListPath = "data/iso3166.txt"

// Country is a single ISO 3166-1 entry.
type Country struct {
	Code string
	Name string
}

var (
	defaultOnce      sync.Once
	defaultCountries []Country
	defaultErr       error
)

// Default returns the embedded country table sorted by English name. The
// embedded data is parsed once; every call returns a fresh copy.
func Default() ([]Country, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		countries, err := Load(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCountries = countries
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Country{}, defaultCountries...), nil
}

// MustDefault is Default for wiring paths where the embedded data is
// known-good; it panics when the bundle cannot be parsed.
func MustDefault() []Country {
	countries, err := Default()
	if err != nil {
		panic(err)
	}
	return countries
}

// Load reads tab-separated "code<TAB>name" lines, skipping blanks and '#'
// comments, and returns the result sorted by name then code.
func Load(r io.Reader) ([]Country, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	scanner := bufio.NewScanner(r)
	countries := make([]Country, 0, 256)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, name, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if code == "" || name == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		countries = append(countries, Country{Code: code, Name: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Name == countries[j].Name {
			return countries[i].Code < countries[j].Code
		}
		return countries[i].Name < countries[j].Name
	})
	return countries, nil
}

// Choices converts a country table into selection options labelled by name
// and valued by ISO code.
func Choices(countries []Country) []choices.Choice {
	if len(countries) == 0 {
		return nil
	}
	out := make([]choices.Choice, 0, len(countries))
	for _, country := range countries {
		out = append(out, choices.Choice{Label: country.Name, Value: country.Code})
	}
	return out
}
