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

package unescape

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/queryforge/sqlval/cmd/sqlval/cmd/escape"
	"github.com/queryforge/sqlval/internal/domains"
	"github.com/queryforge/sqlval/internal/utils/logger"
	"github.com/queryforge/sqlval/pkg/sqlval"
)

var Cmd = &cobra.Command{
	Use:   "unescape [string]",
	Short: "reverse the escape substitutions of an SQL literal",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := domains.Get()
		if err := logger.SetLogLevel(cfg.Log.Level, cfg.Log.Format); err != nil {
			log.Err(err).Msg("")
		}

		in, err := escape.ReadInput(args)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Println(sqlval.UnescapeString(in))
	},
}
