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

package escape

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/queryforge/sqlval/internal/domains"
	"github.com/queryforge/sqlval/internal/utils/logger"
	"github.com/queryforge/sqlval/pkg/sqlval"
)

var Cmd = &cobra.Command{
	Use:   "escape [string]",
	Short: "escape a string for embedding in a single-quoted SQL literal",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := domains.Get()
		if err := logger.SetLogLevel(cfg.Log.Level, cfg.Log.Format); err != nil {
			log.Err(err).Msg("")
		}

		in, err := ReadInput(args)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Println(sqlval.EscapeString(in))
	},
}

// ReadInput returns the single positional argument, or the whole of
// stdin when no argument is given.
func ReadInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "error reading stdin")
	}
	return string(data), nil
}
