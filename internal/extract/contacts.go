// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-screener/pkg/types"
)

var (
	// contactLabelRe matches label words that precede contact values, so
	// the label text never leaks into a captured value.
	contactLabelRe = regexp.MustCompile(`(?i)(Email|E-mail|Mail|Phone|Mobile)[:\s]+`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phoneRe allows a leading + or an opening parenthesis before the first
	// digit, then at least seven digit, space, parenthesis, dot or hyphen
	// characters, and a final digit.
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s().-]{7,}\d`)
)

// ExtractContacts returns the first email address and the first phone number
// in text. Either may be empty.
func ExtractContacts(text string) types.Contacts {
	cleaned := contactLabelRe.ReplaceAllString(text, " ")
	return types.Contacts{
		Email: emailRe.FindString(cleaned),
		Phone: strings.TrimSpace(phoneRe.FindString(cleaned)),
	}
}
