package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Channel ChannelConfig `yaml:"channel"`
	Prompt  PromptConfig  `yaml:"prompt"`
}

// ChannelConfig identifies the show channel and its public pages.
type ChannelConfig struct {
	Name         string `yaml:"name"`
	SiteBase     string `yaml:"site_base"`
	ShowsPath    string `yaml:"shows_path"`
	MixcloudURL  string `yaml:"mixcloud_url"`
	InstagramURL string `yaml:"instagram_url"`

	// Host display names to Instagram handles, without the leading @.
	IGHandles map[string]string `yaml:"ig_handles"`

	// Styles assumed when a post carries no tags, styles, or genres.
	DefaultStyles []string `yaml:"default_styles"`
}

type PromptConfig struct {
	// Extra keys stripped from episode JSON, merged with the built-in
	// drop keys.
	DropFields []string `yaml:"drop_fields"`
}

// ShowURL returns the public episode page for a slug.
func (c ChannelConfig) ShowURL(slug string) string {
	return strings.TrimRight(c.SiteBase, "/") + c.ShowsPath + "/" + slug + "/"
}

// IGHandle returns the Instagram handle for a host display name,
// falling back to the lowercased name with spaces removed.
func (c ChannelConfig) IGHandle(name string) string {
	if handle, ok := c.IGHandles[name]; ok && handle != "" {
		return handle
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// Default returns the built-in channel configuration.
func Default() *Config {
	return &Config{
		Channel: ChannelConfig{
			Name:         "Public Vinyl Radio",
			SiteBase:     "https://publicvinylradio.com",
			ShowsPath:    "/shows",
			MixcloudURL:  "https://mixcloud.com/public-vinyl-radio",
			InstagramURL: "https://instagram.com/publicvinylradio",
			IGHandles: map[string]string{
				"Saegey": "saegey",
				"TOPYEN": "starlustre",
			},
			DefaultStyles: []string{"Latin jazz", "salsa", "mambo", "bolero", "cumbia"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	// Set defaults if not provided
	defaults := Default()
	if config.Channel.Name == "" {
		config.Channel.Name = defaults.Channel.Name
	}
	if config.Channel.SiteBase == "" {
		config.Channel.SiteBase = defaults.Channel.SiteBase
	}
	if config.Channel.ShowsPath == "" {
		config.Channel.ShowsPath = defaults.Channel.ShowsPath
	}
	if config.Channel.MixcloudURL == "" {
		config.Channel.MixcloudURL = defaults.Channel.MixcloudURL
	}
	if config.Channel.InstagramURL == "" {
		config.Channel.InstagramURL = defaults.Channel.InstagramURL
	}
	if len(config.Channel.IGHandles) == 0 {
		config.Channel.IGHandles = defaults.Channel.IGHandles
	}
	if len(config.Channel.DefaultStyles) == 0 {
		config.Channel.DefaultStyles = defaults.Channel.DefaultStyles
	}

	return config, nil
}

// LoadOrDefault loads the config at path, or returns the defaults when
// path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
