// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configEnv = "LEXICON_CONFIG"

type DisplayConfig struct {
	Markdown bool `yaml:"markdown"`
	WordWrap int  `yaml:"word_wrap"`
}

type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type LoadingConfig struct {
	Progress bool `yaml:"progress"`
}

type Config struct {
	Dictionaries []string      `yaml:"dictionaries"`
	Display      DisplayConfig `yaml:"display"`
	Cache        CacheConfig   `yaml:"cache"`
	Loading      LoadingConfig `yaml:"loading"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Markdown: true,
		WordWrap: 80,
	},
	Cache: CacheConfig{
		TTLMinutes: 30,
	},
	Loading: LoadingConfig{
		Progress: true,
	},
}

// CacheTTL returns how long a rendered definition stays cached
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return time.Duration(defaultConfig.Cache.TTLMinutes) * time.Minute
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// LoadConfig reads the config file. A missing or broken file yields the defaults.
func LoadConfig() (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", configPath).Debug("config unreadable, using defaults")
		}
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.WithError(err).WithField("path", configPath).Warn("invalid config, using defaults")
		config = defaultConfig
		return &config, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv(configEnv); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lexicon.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("🔧 Lexicon Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📚 %sDictionaries:%s\n", Green, Reset)
	if len(config.Dictionaries) == 0 {
		fmt.Printf("  • (none, the built-in sample dictionary is used)\n")
	}
	for _, path := range config.Dictionaries {
		fmt.Printf("  • %s\n", path)
	}

	fmt.Printf("\n🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %smarkdown%s: %t\n", Green, Reset, config.Display.Markdown)
	fmt.Printf("  • %sword_wrap%s: %d\n", Green, Reset, config.Display.WordWrap)

	fmt.Printf("\n⚡ %sCache:%s\n", Green, Reset)
	fmt.Printf("  • %sttl_minutes%s: %d\n", Green, Reset, config.Cache.TTLMinutes)

	fmt.Printf("\n📦 %sLoading:%s\n", Green, Reset)
	fmt.Printf("  • %sprogress%s: %t\n\n", Green, Reset, config.Loading.Progress)

	fmt.Printf("💡 Add dictionary files to %s:\n", configPath)
	fmt.Printf("   dictionaries:\n     - ~/words/fruits.yaml\n")

	return nil
}
