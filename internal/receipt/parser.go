package receipt

import (
	"regexp"
	"strings"
	"time"

	"tracklytic/internal/models"

	"github.com/shopspring/decimal"
)

// Result is what could be read from a receipt. Fields that were not found
// are left empty.
type Result struct {
	Amount          *decimal.Decimal       `json:"amount"`
	Sender          string                 `json:"sender,omitempty"`
	Receiver        string                 `json:"receiver,omitempty"`
	AccountNumber   string                 `json:"account_number,omitempty"`
	Bank            string                 `json:"bank"`
	Type            models.TransactionType `json:"type"`
	TransactionDate *time.Time             `json:"transaction_date,omitempty"`
	Notes           string                 `json:"notes"`
}

// Found reports whether enough was read to create a transaction.
func (r *Result) Found() bool {
	return r.Amount != nil && r.Amount.IsPositive()
}

const amountValue = `([0-9][0-9OoSlI,]*(?:\.[0-9OoSlI]{1,2})?)`

var (
	// ₦ is frequently printed or read back as '#'.
	labelledAmountPattern = regexp.MustCompile(`(?im)^[ \t]*(?:transaction[ \t]+|total[ \t]+)?amount(?:[ \t]*\((?:₦|NGN|N)\))?[ \t]*[:\-]?[ \t]*(?:₦|NGN|N|#)?[ \t]*` + amountValue)
	currencyAmountPattern = regexp.MustCompile(`(?:₦|NGN|#)[ \t]*` + amountValue)
	bareNairaPattern      = regexp.MustCompile(`\bN([0-9][0-9,]*\.[0-9]{2})\b`)

	ocrDigitFixer = strings.NewReplacer("O", "0", "o", "0", "S", "5", "l", "1", "I", "1")

	accountLinePattern   = regexp.MustCompile(`(?im)^[ \t]*account(?:[ \t]*(?:no\.?|number))?[ \t]*[:\-][ \t]*(\d{10})\b`)
	trailingDigitPattern = regexp.MustCompile(`[ \t\-|/]*\(?(\d{10,11})\)?[ \t]*$`)

	dateLinePattern = regexp.MustCompile(`(?im)^[ \t]*(?:transaction[ \t]+|value[ \t]+)?date(?:[ \t]*(?:&|and)[ \t]*time)?[ \t]*[:\-][ \t]*(.+)$`)
	typeLinePattern = regexp.MustCompile(`(?im)^[ \t]*(?:transaction[ \t]+type|transaction|type)[ \t]*[:\-][ \t]*(.+)$`)
	ordinalPattern  = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\b`)
)

type datePattern struct {
	pattern *regexp.Regexp
	layouts []string
}

var datePatterns = []datePattern{
	{regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`), []string{"2006-1-2"}},
	{regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`), []string{"2/1/2006"}},
	{regexp.MustCompile(`\b(\d{1,2}-\d{1,2}-\d{4})\b`), []string{"2-1-2006"}},
	{regexp.MustCompile(`(?i)\b(\d{1,2}(?:st|nd|rd|th)?[ \t]+[a-z]{3,9},?[ \t]+\d{4})\b`), []string{"2 Jan 2006", "2 January 2006"}},
	{regexp.MustCompile(`(?i)\b([a-z]{3,9}[ \t]+\d{1,2}(?:st|nd|rd|th)?,?[ \t]+\d{4})\b`), []string{"Jan 2 2006", "January 2 2006"}},
}

// Parser reads transaction fields out of receipt text.
type Parser struct {
	templates []BankTemplate
}

func NewParser(templates []BankTemplate) *Parser {
	return &Parser{templates: templates}
}

// NewDefaultParser uses the embedded bank templates.
func NewDefaultParser() (*Parser, error) {
	templates, err := DefaultTemplates()
	if err != nil {
		return nil, err
	}
	return NewParser(templates), nil
}

func (p *Parser) Parse(text string) *Result {
	text = normalizeText(text)
	bank := DetectBank(text, p.templates)

	result := &Result{
		Bank:  bank.Name,
		Notes: strings.TrimSpace(text),
	}

	result.Amount = extractAmount(text)

	var senderAccount, receiverAccount string
	result.Sender, senderAccount = extractParty(text, bank.senderPattern)
	result.Receiver, receiverAccount = extractParty(text, bank.receiverPattern)

	result.AccountNumber = extractAccountNumber(text)
	if result.AccountNumber == "" {
		result.AccountNumber = firstNonEmpty(senderAccount, receiverAccount)
	}

	result.TransactionDate = extractDate(text)
	result.Type = detectType(text, &bank)

	return result
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return text
}

func extractAmount(text string) *decimal.Decimal {
	if m := labelledAmountPattern.FindStringSubmatch(text); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			return &amount
		}
	}
	for _, pattern := range []*regexp.Regexp{currencyAmountPattern, bareNairaPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if amount, ok := parseAmount(m[1]); ok {
				return &amount
			}
		}
	}
	return nil
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(ocrDigitFixer.Replace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount.Round(2), true
}

// extractParty returns the name printed after one of the labels, with any
// trailing account or phone number split off.
func extractParty(text string, pattern *regexp.Regexp) (string, string) {
	if pattern == nil {
		return "", ""
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}

	name := m[1]
	account := ""
	if loc := trailingDigitPattern.FindStringSubmatchIndex(name); loc != nil {
		account = name[loc[2]:loc[3]]
		name = name[:loc[0]]
	}

	name = strings.Join(strings.Fields(name), " ")
	name = strings.Trim(name, " .,:;-|")
	return name, account
}

func extractAccountNumber(text string) string {
	if m := accountLinePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractDate prefers a value on a "Date:" line and falls back to the first
// date anywhere in the text.
func extractDate(text string) *time.Time {
	if m := dateLinePattern.FindStringSubmatch(text); m != nil {
		if t := findDate(m[1]); t != nil {
			return t
		}
	}
	return findDate(text)
}

func findDate(s string) *time.Time {
	for _, dp := range datePatterns {
		for _, m := range dp.pattern.FindAllStringSubmatch(s, -1) {
			candidate := ordinalPattern.ReplaceAllString(m[1], "$1")
			candidate = strings.ReplaceAll(candidate, ",", "")
			candidate = strings.Join(strings.Fields(candidate), " ")
			for _, layout := range dp.layouts {
				if t, err := time.Parse(layout, candidate); err == nil {
					return &t
				}
			}
		}
	}
	return nil
}

// detectType classifies the "Type:" line when there is one, then the whole
// text. Receipts are outgoing unless something says otherwise.
func detectType(text string, bank *BankTemplate) models.TransactionType {
	for _, m := range typeLinePattern.FindAllStringSubmatch(text, -1) {
		if t := classify(m[1], bank); t != "" {
			return t
		}
	}
	if t := classify(text, bank); t != "" {
		return t
	}
	return models.TransactionTypeDebit
}

// classify returns the type whose keyword occurs first in s, or "" when none does.
func classify(s string, bank *BankTemplate) models.TransactionType {
	creditPos := firstMatch(s, bank.creditPatterns)
	debitPos := firstMatch(s, bank.debitPatterns)

	switch {
	case creditPos < 0 && debitPos < 0:
		return ""
	case debitPos < 0:
		return models.TransactionTypeCredit
	case creditPos < 0:
		return models.TransactionTypeDebit
	case creditPos < debitPos:
		return models.TransactionTypeCredit
	default:
		return models.TransactionTypeDebit
	}
}

func firstMatch(s string, patterns []*regexp.Regexp) int {
	first := -1
	for _, pattern := range patterns {
		if loc := pattern.FindStringIndex(s); loc != nil && (first < 0 || loc[0] < first) {
			first = loc[0]
		}
	}
	return first
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
