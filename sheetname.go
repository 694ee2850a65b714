// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the maximum number of characters in a sheet name.
const MaxSheetNameLength = 31

const invalidSheetNameChars = `\/?*:[]`

// ValidateSheetName checks that name is usable as a sheet name,
// and is not the same (case-insensitively) as any of the taken names.
func ValidateSheetName(name string, taken []string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSheetName)
	}
	if n := utf8.RuneCountInString(name); n > MaxSheetNameLength {
		return fmt.Errorf("%w: %q is %d characters long (max %d)", ErrInvalidSheetName, name, n, MaxSheetNameLength)
	}
	if i := strings.IndexAny(name, invalidSheetNameChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidSheetName, name, name[i:i+1])
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("%w: %q starts or ends with a single quote", ErrInvalidSheetName, name)
	}
	for _, t := range taken {
		if strings.EqualFold(t, name) {
			return fmt.Errorf("%w: %q is already used", ErrInvalidSheetName, name)
		}
	}
	return nil
}
