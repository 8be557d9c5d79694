/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"math"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/docsmith/pkg/grouping"
)

// acronyms are flag-name fragments rendered verbatim in parameter labels
// instead of being title-cased.
var acronyms = map[string]string{
	"acl":  "ACL",
	"api":  "API",
	"cidr": "CIDR",
	"dns":  "DNS",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"sku":  "SKU",
	"ssl":  "SSL",
	"tls":  "TLS",
	"uri":  "URI",
	"url":  "URL",
	"vm":   "VM",
}

// Icons for the boolean-to-icon helper. Fixed pair, true then false.
const (
	iconTrue  = "⚠"
	iconFalse = "–"
)

var titler = cases.Title(language.English)

// helperFuncs returns the template function map. All helpers are pure:
// rendering the same data twice yields byte-identical output.
func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"longDate":   longDate,
		"shortDate":  shortDate,
		"kebab":      Kebab,
		"title":      titler.String,
		"eqFold":     strings.EqualFold,
		"paramLabel": ParamLabel,
		"toolTotal":  toolTotal,
		"boolIcon":   boolIcon,
		"add":        func(a, b int) int { return a + b },
		"percent":    percent,
	}
}

// longDate formats a timestamp as a long UTC date ("January 2, 2006").
func longDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

// shortDate formats a timestamp as a short UTC date ("2006-01-02").
func shortDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Kebab converts a string to an ASCII-safe kebab-case slug: lowercased, with
// every run of non-alphanumeric characters collapsed to a single hyphen.
func Kebab(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ParamLabel expands a hyphenated CLI flag name into a human phrase:
// "account-name" -> "Account name", "vm-id" -> "VM ID". Known acronyms are
// preserved verbatim.
func ParamLabel(name string) string {
	parts := strings.Split(strings.TrimLeft(name, "-"), "-")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if acronym, ok := acronyms[strings.ToLower(p)]; ok {
			out = append(out, acronym)
			continue
		}
		if i == 0 {
			out = append(out, titler.String(p))
		} else {
			out = append(out, strings.ToLower(p))
		}
	}
	return strings.Join(out, " ")
}

// toolTotal counts operations across all resource groups.
func toolTotal(groups []grouping.ResourceGroup) int {
	n := 0
	for _, g := range groups {
		n += g.ToolCount()
	}
	return n
}

// boolIcon renders the fixed glyph pair for true/false.
func boolIcon(v bool) string {
	if v {
		return iconTrue
	}
	return iconFalse
}

// percent computes the rounded percentage of part over total; zero totals
// yield zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
