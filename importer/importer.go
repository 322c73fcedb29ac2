// This file is part of specials.
//
// specials is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// specials is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with specials.  If not, see <https://www.gnu.org/licenses/>.

// Package importer reads a signature file and materialises a
// signature.Catalog and the search.Config to use with it.
//
// Signature files are read with viper and so can be in any format viper
// understands. The default is YAML:
//
//	window: 0o2000
//	canonical: [2, 3]
//	symbols:
//	  - name: INTPRET
//	    variants:
//	      - ranges: [[3, 0, 0o200]]
//	        datawords: 0
//	        noreturn: false
//	        pattern:
//	          - {required: false, opcodes: [RELINT]}
//	          - {required: true, opcodes: [EXTEND]}
//	          - {required: true, opcodes: [QXCH]}
//	          - {required: true, opcodes: [CA], operands: ["0004", "0006"]}
//	  - name: BANKCALL
//	    variants:
//	      - ranges: [[2, 0, 0o2000], [3, INTPRET, 0o2000]]
//	        ...
//
// Numbers can be written as integers or as strings. Strings with a leading
// zero are octal. The start of a range can be the name of an earlier symbol.
// An operand that is the name of a symbol in the file is a placeholder for
// that symbol's address. Operands must be quoted so that leading zeros are
// not lost. An unquoted number is an error.
package importer

import (
	"io"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/logger"
	"github.com/virtualagc/specials/search"
	"github.com/virtualagc/specials/signature"
)

// Sentinal patterns for import errors.
const (
	ImportError  = "importer: %v"
	SymbolError  = "importer: %s: %s"
	VariantError = "importer: %s: variant %d: %s"
)

type rawItem struct {
	Required bool     `mapstructure:"required"`
	Opcodes  []string `mapstructure:"opcodes"`
	Operands []any    `mapstructure:"operands"`
}

type rawVariant struct {
	Ranges    [][]any   `mapstructure:"ranges"`
	DataWords any       `mapstructure:"datawords"`
	NoReturn  bool      `mapstructure:"noreturn"`
	Pattern   []rawItem `mapstructure:"pattern"`
}

type rawSymbol struct {
	Name     string       `mapstructure:"name"`
	Variants []rawVariant `mapstructure:"variants"`
}

// Import a signature file. The format is taken from the filename extension.
func Import(filename string) (*signature.Catalog, search.Config, error) {
	v := newViper()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return nil, search.Config{}, curated.Errorf(ImportError, err)
	}
	return materialise(v)
}

// ImportReader reads a signature file from io.Reader. The format is any
// format supported by viper: "yaml", "json", "toml", etc.
func ImportReader(r io.Reader, format string) (*signature.Catalog, search.Config, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, search.Config{}, curated.Errorf(ImportError, err)
	}
	return materialise(v)
}

func newViper() *viper.Viper {
	def := search.DefaultConfig()
	v := viper.New()
	v.SetDefault("window", def.WindowSize)
	v.SetDefault("canonical", def.CanonicalBanks)
	v.SetDefault("operandformat", def.OperandFormat)
	return v
}

func materialise(v *viper.Viper) (*signature.Catalog, search.Config, error) {
	var cfg search.Config
	var err error

	cfg.WindowSize, err = cast.ToIntE(v.Get("window"))
	if err != nil || cfg.WindowSize <= 0 {
		return nil, cfg, curated.Errorf(ImportError, "window must be a positive number")
	}
	cfg.CanonicalBanks, err = cast.ToIntSliceE(v.Get("canonical"))
	if err != nil {
		return nil, cfg, curated.Errorf(ImportError, "canonical must be a list of bank numbers")
	}
	cfg.OperandFormat = v.GetString("operandformat")

	var raw []rawSymbol
	if err := v.UnmarshalKey("symbols", &raw); err != nil {
		return nil, cfg, curated.Errorf(ImportError, err)
	}

	// names of every symbol in the file. operands matching one of these are
	// placeholders
	names := make(map[string]bool)
	for _, s := range raw {
		names[s.Name] = true
	}

	entries := make([]*signature.Entry, 0, len(raw))
	for _, s := range raw {
		e := &signature.Entry{Symbol: s.Name}
		for vi, rv := range s.Variants {
			sv, err := variant(rv, names)
			if err != nil {
				return nil, cfg, curated.Errorf(VariantError, s.Name, vi, err)
			}
			e.Variants = append(e.Variants, sv)
		}
		entries = append(entries, e)
	}

	cat, err := signature.NewCatalog(entries...)
	if err != nil {
		return nil, cfg, curated.Errorf(ImportError, err)
	}

	logger.Logf(logger.Allow, "importer", "%d symbols", cat.Len())

	return cat, cfg, nil
}

func variant(rv rawVariant, names map[string]bool) (*signature.Variant, error) {
	v := &signature.Variant{
		NoReturn: rv.NoReturn,
	}

	var err error
	v.DataWords, err = toInt(rv.DataWords)
	if err != nil {
		return nil, curated.Errorf("datawords: %v", err)
	}

	for _, r := range rv.Ranges {
		if len(r) != 3 {
			return nil, curated.Errorf("range must have bank, start and end")
		}

		var ar signature.AddressRange
		ar.Bank, err = toInt(r[0])
		if err != nil {
			return nil, curated.Errorf("range bank: %v", err)
		}
		ar.End, err = toInt(r[2])
		if err != nil {
			return nil, curated.Errorf("range end: %v", err)
		}

		if start, err := toInt(r[1]); err == nil {
			ar.Start = signature.At(start)
		} else if ref := cast.ToString(r[1]); ref != "" {
			ar.Start = signature.After(ref)
		} else {
			return nil, curated.Errorf("range start: %v", err)
		}

		v.Ranges = append(v.Ranges, ar)
	}

	for _, ri := range rv.Pattern {
		it := signature.Item{
			Required: ri.Required,
			Opcodes:  ri.Opcodes,
		}
		for _, ro := range ri.Operands {
			// unquoted numbers lose their leading zeros and would never match
			// the decoder's operand text
			o, ok := ro.(string)
			if !ok {
				return nil, curated.Errorf("operand %v is not a quoted string", ro)
			}
			if names[o] {
				it.Operands = append(it.Operands, signature.Placeholder(o))
			} else {
				it.Operands = append(it.Operands, signature.Literal(o))
			}
		}
		v.Items = append(v.Items, it)
	}

	return v, nil
}

// toInt converts numbers and numeric strings to int. Strings with a leading
// zero are octal.
func toInt(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	return cast.ToIntE(v)
}
