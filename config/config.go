package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultFile is read from the working directory when no --config is given.
	DefaultFile = ".create-blogpost.yaml"
	// DotEnvFile holds optional environment overrides next to the blog sources.
	DotEnvFile = ".env"
	// EnvPrefix namespaces environment overrides, e.g. CREATE_BLOGPOST_POSTS_DIR.
	EnvPrefix = "CREATE_BLOGPOST"
)

// Supported resize backends.
const (
	BackendMogrify = "mogrify"
	BackendNative  = "native"
)

// Config represents the application configuration
type Config struct {
	Posts       PostsConfig       `mapstructure:"posts"`
	Images      ImagesConfig      `mapstructure:"images"`
	FrontMatter FrontMatterConfig `mapstructure:"frontmatter"`
	Resize      ResizeConfig      `mapstructure:"resize"`
}

type PostsConfig struct {
	Dir        string `mapstructure:"dir"`
	DateFormat string `mapstructure:"date_format"`
}

type ImagesConfig struct {
	Dir string `mapstructure:"dir"`
}

// FrontMatterConfig holds the fixed values written into every new post.
type FrontMatterConfig struct {
	Category string `mapstructure:"category"`
	Excerpt  string `mapstructure:"excerpt"`
	Caption  string `mapstructure:"caption"`
}

type ResizeConfig struct {
	Backend string        `mapstructure:"backend"`
	Tool    string        `mapstructure:"tool"`
	Timeout time.Duration `mapstructure:"timeout"`
	Header  VariantConfig `mapstructure:"header"`
	Teaser  VariantConfig `mapstructure:"teaser"`
}

type VariantConfig struct {
	Width   int `mapstructure:"width"`
	Quality int `mapstructure:"quality"`
}

var defaults = map[string]any{
	"posts.dir":             "./_posts",
	"posts.date_format":     "2006-01-02",
	"images.dir":            "./assets/images/posts",
	"frontmatter.category":  "Android",
	"frontmatter.excerpt":   "TODO",
	"frontmatter.caption":   "Stockholm - Sweden",
	"resize.backend":        BackendMogrify,
	"resize.tool":           "mogrify",
	"resize.timeout":        60 * time.Second,
	"resize.header.width":   1920,
	"resize.header.quality": 85,
	"resize.teaser.width":   600,
	"resize.teaser.quality": 85,
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration file at path, then applies .env and
// environment overrides. An empty path falls back to DefaultFile, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", DotEnvFile, err)
	}

	v := newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Posts.Dir == "" {
		return fmt.Errorf("posts.dir is required")
	}
	if c.Posts.DateFormat == "" {
		return fmt.Errorf("posts.date_format is required")
	}
	if c.Images.Dir == "" {
		return fmt.Errorf("images.dir is required")
	}

	switch c.Resize.Backend {
	case BackendMogrify:
		if c.Resize.Tool == "" {
			return fmt.Errorf("resize.tool is required for the %s backend", BackendMogrify)
		}
	case BackendNative:
	default:
		return fmt.Errorf("resize.backend must be %q or %q, got %q", BackendMogrify, BackendNative, c.Resize.Backend)
	}

	if c.Resize.Timeout <= 0 {
		return fmt.Errorf("resize.timeout must be positive")
	}
	if err := c.Resize.Header.validate("resize.header"); err != nil {
		return err
	}
	return c.Resize.Teaser.validate("resize.teaser")
}

func (v VariantConfig) validate(key string) error {
	if v.Width <= 0 {
		return fmt.Errorf("%s.width must be positive, got %d", key, v.Width)
	}
	if v.Quality < 1 || v.Quality > 100 {
		return fmt.Errorf("%s.quality must be between 1 and 100, got %d", key, v.Quality)
	}
	return nil
}
