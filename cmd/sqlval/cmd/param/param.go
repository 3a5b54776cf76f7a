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

package param

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/queryforge/sqlval/internal/domains"
	"github.com/queryforge/sqlval/internal/utils/logger"
	"github.com/queryforge/sqlval/pkg/sqlval"
)

var Cmd = &cobra.Command{
	Use:   "param kind:literal [kind:literal ...]",
	Short: "build a parameter sequence from typed literals",
	Long: "Each argument is kind:literal, e.g. int32:42, bool:true, string:abc, " +
		"null. The resulting sequence is printed positionally with the kind " +
		"each literal parsed into.",
	Args: cobra.MinimumNArgs(1),
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

func run(args []string) error {
	values := make(sqlval.Values, 0, len(args))
	for _, arg := range args {
		v, err := parseParam(arg)
		if err != nil {
			return errors.Wrapf(err, "argument %q", arg)
		}
		values = append(values, v)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"position", "kind", "value"})
	for i, v := range values {
		table.Append([]string{strconv.Itoa(i + 1), v.Kind().String(), v.String()})
	}
	table.Render()
	return nil
}

func parseParam(arg string) (sqlval.Value, error) {
	if arg == "null" {
		return sqlval.NullValue(), nil
	}
	kind, lit, ok := strings.Cut(arg, ":")
	if !ok {
		return sqlval.Value{}, errors.New("expected kind:literal")
	}

	switch kind {
	case "bool":
		v, err := cast.ToBoolE(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.BoolValue(v), nil
	case "int8":
		v, err := cast.ToInt8E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Int8Value(v), nil
	case "int16":
		v, err := cast.ToInt16E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Int16Value(v), nil
	case "int32":
		v, err := cast.ToInt32E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Int32Value(v), nil
	case "int64":
		v, err := cast.ToInt64E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Int64Value(v), nil
	case "uint8":
		v, err := cast.ToUint8E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Uint8Value(v), nil
	case "uint16":
		v, err := cast.ToUint16E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Uint16Value(v), nil
	case "uint32":
		v, err := cast.ToUint32E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Uint32Value(v), nil
	case "uint64":
		v, err := cast.ToUint64E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Uint64Value(v), nil
	case "float32":
		v, err := cast.ToFloat32E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Float32Value(v), nil
	case "float64":
		v, err := cast.ToFloat64E(lit)
		if err != nil {
			return sqlval.Value{}, err
		}
		return sqlval.Float64Value(v), nil
	case "string":
		return sqlval.StringValue(lit), nil
	case "bytes":
		return sqlval.BytesValue([]byte(lit)), nil
	}
	return sqlval.Value{}, errors.Errorf("unknown kind %q", kind)
}
