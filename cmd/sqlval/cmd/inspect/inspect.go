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

//go:build !sqlval_no_json

package inspect

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/queryforge/sqlval/cmd/sqlval/cmd/escape"
	"github.com/queryforge/sqlval/internal/domains"
	"github.com/queryforge/sqlval/internal/utils/logger"
	"github.com/queryforge/sqlval/pkg/sqlval"
)

var (
	Cmd = &cobra.Command{
		Use:   "inspect [json-document]",
		Short: "preview how a JSON object maps onto typed parameter values",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := domains.Get()
			if err := logger.SetLogLevel(cfg.Log.Level, cfg.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := run(args); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	jsonOutput bool
)

func init() {
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the normalized document instead of a table")
}

func run(args []string) error {
	doc, err := escape.ReadInput(args)
	if err != nil {
		return err
	}
	if !gjson.Valid(doc) {
		return errors.New("input is not valid JSON")
	}
	res := gjson.Parse(doc)
	if !res.IsObject() {
		return errors.New("input must be a JSON object")
	}

	type field struct {
		key   string
		value sqlval.Value
	}
	var fields []field
	var convErr error
	res.ForEach(func(key, value gjson.Result) bool {
		v, err := sqlval.FromJSON(value)
		if err != nil {
			convErr = errors.Wrapf(err, "field %q", key.Str)
			return false
		}
		fields = append(fields, field{key: key.Str, value: v})
		return true
	})
	if convErr != nil {
		return convErr
	}

	if jsonOutput {
		out := []byte("{}")
		for _, f := range fields {
			raw, err := f.value.ToJSON()
			if err != nil {
				return errors.Wrapf(err, "field %q", f.key)
			}
			out, err = sjson.SetRawBytes(out, f.key, raw)
			if err != nil {
				return errors.Wrapf(err, "field %q", f.key)
			}
		}
		fmt.Println(string(out))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "kind", "value"})
	for _, f := range fields {
		table.Append([]string{f.key, f.value.Kind().String(), f.value.String()})
	}
	table.Render()
	return nil
}
