/*
 * Copyright 2024 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package z holds command line and measurement helpers shared by the lsq tools.
package z

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SuperFlag is a single command line flag packing several options, written as
// `key=value; key=value`. Keys are case insensitive and `_` is read as `-`.
type SuperFlag struct {
	m map[string]string
}

func parseFlag(flag string) (map[string]string, error) {
	kvm := make(map[string]string)
	for _, kv := range strings.Split(flag, ";") {
		if strings.TrimSpace(kv) == "" {
			continue
		}
		splits := strings.SplitN(kv, "=", 2)
		if len(splits) != 2 {
			return nil, errors.Errorf("option %q is not of the form key=value", strings.TrimSpace(kv))
		}
		k := strings.ToLower(strings.TrimSpace(splits[0]))
		k = strings.ReplaceAll(k, "_", "-")
		kvm[k] = strings.TrimSpace(splits[1])
	}
	return kvm, nil
}

// NewSuperFlag parses flag.
func NewSuperFlag(flag string) (*SuperFlag, error) {
	m, err := parseFlag(flag)
	if err != nil {
		return nil, err
	}
	return &SuperFlag{m: m}, nil
}

func (sf *SuperFlag) String() string {
	if sf == nil {
		return ""
	}
	kvs := make([]string, 0, len(sf.m))
	for k, v := range sf.m {
		kvs = append(kvs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(kvs)
	return strings.Join(kvs, "; ")
}

// MergeAndCheckDefault fills in every option of defaults missing from sf. An
// option of sf unknown to defaults is an error, which catches typos.
func (sf *SuperFlag) MergeAndCheckDefault(defaults string) (*SuperFlag, error) {
	src, err := parseFlag(defaults)
	if err != nil {
		return nil, errors.Wrap(err, "while parsing defaults")
	}
	if sf == nil {
		return &SuperFlag{m: src}, nil
	}
	var unknown []string
	for k := range sf.m {
		if _, ok := src[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.Errorf("found invalid options %v in %q. Valid options: %v",
			unknown, sf, defaults)
	}
	for k, v := range src {
		if _, ok := sf.m[k]; !ok {
			sf.m[k] = v
		}
	}
	return sf, nil
}

// Has reports whether opt is set to a non-empty value.
func (sf *SuperFlag) Has(opt string) bool {
	return sf.GetString(opt) != ""
}

func (sf *SuperFlag) GetString(opt string) string {
	if sf == nil {
		return ""
	}
	return sf.m[opt]
}

// GetDuration parses opt as a time.Duration. A `d` suffix counts days.
func (sf *SuperFlag) GetDuration(opt string) (time.Duration, error) {
	val := sf.GetString(opt)
	if val == "" {
		return 0, nil
	}
	if days, ok := strings.CutSuffix(val, "d"); ok {
		n, err := strconv.ParseUint(days, 0, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "unable to parse %s as days for key: %s", val, opt)
		}
		return time.Hour * 24 * time.Duration(n), nil
	}
	d, err := time.ParseDuration(val)
	return d, errors.Wrapf(err, "unable to parse %s as duration for key: %s", val, opt)
}

func (sf *SuperFlag) GetBool(opt string) (bool, error) {
	val := sf.GetString(opt)
	if val == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(val)
	return b, errors.Wrapf(err, "unable to parse %s as bool for key: %s", val, opt)
}

func (sf *SuperFlag) GetInt64(opt string) (int64, error) {
	val := sf.GetString(opt)
	if val == "" {
		return 0, nil
	}
	i, err := strconv.ParseInt(val, 0, 64)
	return i, errors.Wrapf(err, "unable to parse %s as int64 for key: %s", val, opt)
}

// GetWeights parses opt as a comma separated list of name:weight pairs, e.g.
// `push:4,pop:3`. A name without a weight counts once.
func (sf *SuperFlag) GetWeights(opt string) (map[string]int, error) {
	val := sf.GetString(opt)
	out := make(map[string]int)
	if val == "" {
		return out, nil
	}
	for _, part := range strings.Split(val, ",") {
		name, weight, found := strings.Cut(strings.TrimSpace(part), ":")
		if name == "" {
			continue
		}
		w := 1
		if found {
			var err error
			if w, err = strconv.Atoi(weight); err != nil || w < 0 {
				return nil, errors.Errorf("invalid weight %q for %s in key: %s", weight, name, opt)
			}
		}
		out[name] += w
	}
	return out, nil
}

// SuperFlagHelp renders `--help` output for a SuperFlag: options with a
// default come first, sorted by name, followed by the rest.
type SuperFlagHelp struct {
	defaults map[string]string
	flags    map[string]string
}

func NewSuperFlagHelp(defaults string) *SuperFlagHelp {
	m, err := parseFlag(defaults)
	if err != nil {
		panic(fmt.Sprintf("invalid SuperFlag defaults %q: %v", defaults, err))
	}
	return &SuperFlagHelp{defaults: m, flags: make(map[string]string)}
}

func (h *SuperFlagHelp) Flag(name, description string) *SuperFlagHelp {
	h.flags[name] = description
	return h
}

func (h *SuperFlagHelp) String() string {
	var defaultLines, otherLines []string
	for name, help := range h.flags {
		val, found := h.defaults[name]
		line := fmt.Sprintf("%s=%s; %s\n", name, val, help)
		if found {
			defaultLines = append(defaultLines, line)
		} else {
			otherLines = append(otherLines, line)
		}
	}
	sort.Strings(defaultLines)
	sort.Strings(otherLines)
	return strings.Join(defaultLines, "") + strings.Join(otherLines, "")
}
