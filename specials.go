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

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/cast"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/importer"
	"github.com/virtualagc/specials/listing"
	"github.com/virtualagc/specials/logger"
	"github.com/virtualagc/specials/modalflag"
	"github.com/virtualagc/specials/search"
	"github.com/virtualagc/specials/statsview"
	"github.com/virtualagc/specials/template"
	"github.com/virtualagc/specials/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("SCAN", "TEMPLATE", "DOT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SCAN":
		err = scan(md)

	case "TEMPLATE":
		err = pattern(md)

	case "DOT":
		err = dot(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func loadListing(filename string) (*listing.Listing, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return listing.Parse(f)
}

func scan(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	md.AdditionalHelp("arguments: <signature file> <listing file>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("signature file and listing file required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cat, cfg, err := importer.Import(md.GetArg(0))
	if err != nil {
		return err
	}

	l, err := loadListing(md.GetArg(1))
	if err != nil {
		return err
	}

	reg, err := search.Scan(cat, l, cfg)

	// a registry is returned alongside a pending placeholder error. the
	// results are still worth seeing
	if reg != nil {
		reg.Write(md.Output)
	}
	if err != nil {
		return err
	}

	for _, s := range reg.Unresolved() {
		logger.Logf(logger.Verbosity(*log), "specials", "%s not found", s)
	}

	return nil
}

func pattern(md *modalflag.Modes) error {
	md.NewMode()

	symbol := md.AddString("symbol", "NEWSYM", "name of symbol in template")
	bank := md.AddString("bank", "", "bank of pattern (octal with leading zero)")
	start := md.AddString("start", "", "offset of first word (octal with leading zero)")
	end := md.AddString("end", "", "offset after last word (octal with leading zero)")
	md.AdditionalHelp("arguments: <listing file>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("listing file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	b, err := cast.ToIntE(*bank)
	if err != nil {
		return curated.Errorf("bank: %v", err)
	}
	s, err := cast.ToIntE(*start)
	if err != nil {
		return curated.Errorf("start: %v", err)
	}
	e, err := cast.ToIntE(*end)
	if err != nil {
		return curated.Errorf("end: %v", err)
	}

	l, err := loadListing(md.GetArg(0))
	if err != nil {
		return err
	}

	return template.Write(md.Output, l, *symbol, b, s, e)
}

func dot(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <signature file>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("signature file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cat, _, err := importer.Import(md.GetArg(0))
	if err != nil {
		return err
	}

	memviz.Map(md.Output, cat)

	return nil
}
