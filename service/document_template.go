package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"advocate-backend/models"
)

const (
	defaultDocumentType       = "complaint"
	placeholderName           = "[Your Name]"
	placeholderAddress        = "[Your Address]"
	placeholderDescription    = "[Description of the matter]"
	documentDisclaimerLineOne = "This document has been generated by Personal Advocate AI for informational purposes only."
	documentDisclaimerLineTwo = "Please consult with a qualified lawyer before filing any legal documents."
)

// renderDocument fills the letter template. The annex is optional.
func renderDocument(docType string, details models.DocumentDetails, annex *models.Crime, date time.Time) string {
	name := orPlaceholder(details.Name, placeholderName)
	address := orPlaceholder(details.Address, placeholderAddress)
	description := orPlaceholder(details.Description, placeholderDescription)

	var b strings.Builder

	b.WriteString(fmt.Sprintf("LEGAL DOCUMENT - %s\n\n", strings.ToUpper(docType)))
	b.WriteString(fmt.Sprintf("Date: %s\n\n", date.Format("02/01/2006")))
	b.WriteString("To: The Honorable Court\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n\n", titleCase(docType)))
	b.WriteString("Dear Sir/Madam,\n\n")
	// The trailing space after the address is part of the template.
	b.WriteString(fmt.Sprintf("I, %s, residing at %s, \n", name, address))
	b.WriteString(fmt.Sprintf("hereby submit this %s regarding the following matter:\n\n", docType))
	b.WriteString(description)
	b.WriteString("\n\n")
	b.WriteString("I request the court to take appropriate action in this matter.\n\n")
	b.WriteString("Yours faithfully,\n")
	b.WriteString(name)
	b.WriteString("\n\n")

	if annex != nil {
		b.WriteString("ANNEX - LEGAL REFERENCE\n\n")
		b.WriteString(fmt.Sprintf("Crime: %s\n", annex.Name))
		b.WriteString(fmt.Sprintf("Category: %s\n", annex.Category))
		b.WriteString(fmt.Sprintf("Section: %s\n", annex.Section))
		if annex.Description != "" {
			b.WriteString(fmt.Sprintf("Description: %s\n", annex.Description))
		}
		if annex.Punishment != "" {
			b.WriteString(fmt.Sprintf("Punishment: %s\n", annex.Punishment))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	b.WriteString(documentDisclaimerLineOne + "\n")
	b.WriteString(documentDisclaimerLineTwo + "\n")

	return strings.TrimSpace(b.String())
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "bail application" becomes "Bail Application".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
