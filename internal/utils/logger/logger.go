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

package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJSONValue = "json"
	LogFormatTextValue = "text"
)

// SetLogLevel configures the global zerolog logger. Debug level adds
// caller and pid context.
func SetLogLevel(logLevelStr string, logFormat string) error {
	logLevel, err := zerolog.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", logLevelStr, err)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJSONValue:
		formatWriter = os.Stderr
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	default:
		return fmt.Errorf("unknown log format %q", logFormat)
	}

	ctx := zerolog.New(formatWriter).Level(logLevel).With().Timestamp()
	if logLevel == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	log.Logger = ctx.Logger()
	return nil
}
