package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data    DataConfig
	Logging LoggingConfig
}

type DataConfig struct {
	Dir        string
	CitiesFile string
	Cities     CityTable
}

type LoggingConfig struct {
	Level    string
	FilePath string
	Console  bool
}

// DefaultCitySources maps each supported city to its CSV file name
var DefaultCitySources = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// CityTable is the immutable city -> data file mapping handed to the loader.
type CityTable struct {
	paths map[string]string
	names []string
}

// NewCityTable normalizes names to lower case and resolves relative paths
// against dir.
func NewCityTable(dir string, sources map[string]string) (CityTable, error) {
	if len(sources) == 0 {
		return CityTable{}, fmt.Errorf("city table is empty")
	}

	paths := make(map[string]string, len(sources))
	for name, file := range sources {
		key := NormalizeCity(name)
		if key == "" {
			return CityTable{}, fmt.Errorf("city table has an empty city name")
		}
		if strings.TrimSpace(file) == "" {
			return CityTable{}, fmt.Errorf("city %q has no data file", key)
		}
		if _, dup := paths[key]; dup {
			return CityTable{}, fmt.Errorf("city %q is listed twice", key)
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		paths[key] = file
	}

	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	return CityTable{paths: paths, names: names}, nil
}

// Lookup returns the data file for city, matching case-insensitively.
func (t CityTable) Lookup(city string) (string, bool) {
	path, ok := t.paths[NormalizeCity(city)]
	return path, ok
}

// Names returns the known cities in ascending order.
func (t CityTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t CityTable) Len() int {
	return len(t.names)
}

func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

type citiesFile struct {
	Cities map[string]string `yaml:"cities"`
}

// LoadCitySources reads a YAML city table of the form
//
//	cities:
//	  chicago: chicago.csv
func LoadCitySources(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cities file: %w", err)
	}

	var parsed citiesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing cities file %s: %w", path, err)
	}
	return parsed.Cities, nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Dir:        getEnv("BIKESHARE_DATA_DIR", "."),
			CitiesFile: getEnv("BIKESHARE_CITIES_FILE", ""),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "warn"),
			FilePath: os.Getenv("LOG_FILE"),
			Console:  getBoolEnv("LOG_CONSOLE", false),
		},
	}
	if _, set := os.LookupEnv("LOG_FILE"); !set {
		cfg.Logging.FilePath = "bikeshare.log"
	}

	sources := DefaultCitySources
	if cfg.Data.CitiesFile != "" {
		loaded, err := LoadCitySources(cfg.Data.CitiesFile)
		if err != nil {
			return nil, err
		}
		sources = loaded
	}

	cities, err := NewCityTable(cfg.Data.Dir, sources)
	if err != nil {
		return nil, fmt.Errorf("building city table: %w", err)
	}
	cfg.Data.Cities = cities

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
