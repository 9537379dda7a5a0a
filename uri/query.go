/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"braces.dev/errtrace"

	"github.com/jplu/uriparse/query"
)

// Query returns the query string without '?'. After parsing it is the query
// of the input; once the variables change it is rebuilt from them with
// query.Build.
func (u *URI) Query() string {
	vars := u.queryVars()
	if !u.queryValid || u.queryRev != vars.Rev() {
		u.query = query.Build(vars)
		u.queryRev, u.queryValid = vars.Rev(), true
	}
	return u.query
}

// QueryVars returns the live query variables. Changes made through the
// returned mapping are reflected by Query and Render.
func (u *URI) QueryVars() *query.Vars {
	return u.queryVars()
}

func (u *URI) queryVars() *query.Vars {
	if u.vars == nil {
		u.vars = query.NewVars()
		u.queryValid = false
	}
	return u.vars
}

// SetQuery replaces the query variables with the ones decoded from q. "&amp;"
// is read as "&".
func (u *URI) SetQuery(q string) error {
	vars, err := query.Parse(unescapeAmp(q))
	if err != nil {
		return errtrace.Wrap(newParseError(q, err))
	}
	u.vars, u.queryValid = vars, false
	return nil
}

// SetQueryVars replaces the query variables with a copy of vars. A nil vars
// removes every variable.
func (u *URI) SetQueryVars(vars *query.Vars) {
	if vars == nil {
		vars = query.NewVars()
	} else {
		vars = vars.Clone()
	}
	u.vars, u.queryValid = vars, false
}

// HasVar reports whether the query variable name exists.
func (u *URI) HasVar(name string) bool {
	return u.vars.Has(name)
}

// Var returns the query variable name, or def if it does not exist.
func (u *URI) Var(name string, def query.Value) query.Value {
	if v, ok := u.vars.Get(name); ok {
		return v
	}
	return def
}

// SetVar sets the query variable name to value and returns its previous
// value, or the zero Value if it did not exist.
func (u *URI) SetVar(name, value string) query.Value {
	vars := u.queryVars()
	old, _ := vars.Get(name)
	vars.Set(name, query.StringValue(value))
	return old
}

// DelVar removes the query variable name.
func (u *URI) DelVar(name string) {
	u.queryVars().Del(name)
}
