// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// AquiferData holds aquifer data
type AquiferData struct {

	// input
	Name string     `json:"name"` // name of aquifer
	Kind string     `json:"kind"` // kind of aquifer; e.g. "conf2d", "unconf2d", "finiteconf1d", "leaky2d"
	Desc string     `json:"desc"` // description of this aquifer
	Prms dbf.Params `json:"prms"` // parameters: K, Ss or Sy, B, bot, L, Kleak, Bleak

	// derived
	Aq *aqf.Aquifer // pointer to actual aquifer
}

// AquifersData holds aquifers
type AquifersData []*AquiferData

// AqfDb implements a database of aquifers
type AqfDb struct {
	Aquifers AquifersData `json:"aquifers"` // all aquifers
}

// ReadAqf reads all aquifers data from a .aqf JSON file
func ReadAqf(dir, fn string) (adb *AqfDb, err error) {

	// new database
	adb = new(AqfDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read aquifers file:\n%v", err)
	}

	// decode
	err = json.Unmarshal(b, adb)
	if err != nil {
		return nil, err
	}

	// alloc/init
	names := make(map[string]bool)
	for _, a := range adb.Aquifers {
		if names[a.Name] {
			return nil, chk.Err("aquifer named %q is repeated", a.Name)
		}
		names[a.Name] = true
		kind, err := aqf.ParseKind(a.Kind)
		if err != nil {
			return nil, err
		}
		a.Aq, err = aqf.New(kind, a.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise aquifer %q:\n%v", a.Name, err)
		}
		a.Aq.Name = a.Name
	}
	return
}

// Get returns aquifer by name
func (o AqfDb) Get(name string) (*AquiferData, error) {
	for _, a := range o.Aquifers {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, chk.Err("cannot find aquifer named %q", name)
}

// String prints one aquifer
func (o AquiferData) String() string {
	return io.Sf("    {\n      \"name\":%q, \"kind\":%q, \"desc\":%q, \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Kind, o.Desc, o.Prms)
}

// String prints aquifers
func (o AquifersData) String() string {
	if len(o) == 0 {
		return "  \"aquifers\" : []"
	}
	l := "  \"aquifers\" : [\n"
	for i, a := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", a)
	}
	l += "\n  ]"
	return l
}
