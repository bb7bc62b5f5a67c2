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

	"gopkg.in/yaml.v3"
)

const configFileName = ".bimap.yaml"

type OrderingConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type LoadingConfig struct {
	ShowProgress bool   `yaml:"show_progress"`
	Separator    string `yaml:"separator"`
}

type LookupConfig struct {
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
	CacheMinutes int  `yaml:"cache_minutes"`
}

type Config struct {
	Ordering OrderingConfig `yaml:"ordering"`
	Loading  LoadingConfig  `yaml:"loading"`
	Lookup   LookupConfig   `yaml:"lookup"`
}

var defaultConfig = Config{
	Ordering: OrderingConfig{
		Left:  orderingNatural,
		Right: orderingNatural,
	},
	Loading: LoadingConfig{
		ShowProgress: true,
		Separator:    "\t",
	},
	Lookup: LookupConfig{
		BloomSize:    1 << 16,
		BloomHashes:  5,
		CacheMinutes: 30,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.bimap.yaml. A missing or unreadable file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return withDefaults(nil), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return withDefaults(nil), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return withDefaults(nil), nil
	}

	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return withDefaults(nil), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	return withDefaults(&config), nil
}

// withDefaults fills zero fields that would make the tool unusable.
func withDefaults(config *Config) *Config {
	if config == nil {
		c := defaultConfig
		return &c
	}
	if config.Ordering.Left == "" {
		config.Ordering.Left = defaultConfig.Ordering.Left
	}
	if config.Ordering.Right == "" {
		config.Ordering.Right = defaultConfig.Ordering.Right
	}
	if config.Loading.Separator == "" {
		config.Loading.Separator = defaultConfig.Loading.Separator
	}
	if config.Lookup.BloomSize == 0 {
		config.Lookup.BloomSize = defaultConfig.Lookup.BloomSize
	}
	if config.Lookup.BloomHashes == 0 {
		config.Lookup.BloomHashes = defaultConfig.Lookup.BloomHashes
	}
	if config.Lookup.CacheMinutes <= 0 {
		config.Lookup.CacheMinutes = defaultConfig.Lookup.CacheMinutes
	}
	return config
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Bimap Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔀 %sOrdering:%s\n", Green, Reset)
	fmt.Printf("  • %sleft%s: %s\n", Green, Reset, config.Ordering.Left)
	fmt.Printf("  • %sright%s: %s\n", Green, Reset, config.Ordering.Right)
	fmt.Printf("    one of: %s\n\n", orderingNames())

	fmt.Printf("📂 %sLoading:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %t\n", Green, Reset, config.Loading.ShowProgress)
	fmt.Printf("  • %sseparator%s: %q\n\n", Green, Reset, config.Loading.Separator)

	fmt.Printf("🔍 %sLookup:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Lookup.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n", Green, Reset, config.Lookup.BloomHashes)
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.Lookup.CacheMinutes)

	fmt.Printf("💡 To change the key order of a side, edit %s:\n", configPath)
	fmt.Printf("   ordering:\n     left: reverse\n\n")
}
