// Copyright 2025 Queryforge
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

package domains

import "github.com/queryforge/sqlval/internal/utils/logger"

type LogConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

type Config struct {
	Log LogConfig `mapstructure:"log"`
}

func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: logger.LogFormatTextValue,
			Level:  "info",
		},
	}
}

// shared instance filled by the root command's viper unmarshal
var cfg = NewConfig()

// Get returns the process-wide CLI configuration.
func Get() *Config {
	return cfg
}
