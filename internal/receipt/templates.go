package receipt

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed banks.toml
var defaultBanks []byte

// GenericBankName is reported when no template keyword appears in the text.
const GenericBankName = "Unknown"

var (
	defaultSenderLabels   = []string{"From", "Sender", "Sender Name", "Originator", "Remitter"}
	defaultReceiverLabels = []string{"To", "Recipient", "Recipient Name", "Beneficiary", "Beneficiary Name", "Receiver"}
	defaultCreditKeywords = []string{"credit", "credited", "received", "transfer in", "deposit", "inflow"}
	defaultDebitKeywords  = []string{"debit", "debited", "sent", "transfer out", "payment", "withdrawal", "outflow", "purchase"}
)

// BankTemplate describes how one issuer lays out its receipts.
type BankTemplate struct {
	Key            string   `toml:"key"`
	Name           string   `toml:"name"`
	Keywords       []string `toml:"keywords"`
	SenderLabels   []string `toml:"sender_labels"`
	ReceiverLabels []string `toml:"receiver_labels"`
	CreditKeywords []string `toml:"credit_keywords"`
	DebitKeywords  []string `toml:"debit_keywords"`

	keywordPatterns []*regexp.Regexp
	creditPatterns  []*regexp.Regexp
	debitPatterns   []*regexp.Regexp
	senderPattern   *regexp.Regexp
	receiverPattern *regexp.Regexp
}

type templateFile struct {
	Banks []BankTemplate `toml:"bank"`
}

// LoadTemplates decodes a TOML template table and compiles its patterns.
func LoadTemplates(data []byte) ([]BankTemplate, error) {
	var file templateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode bank templates: %w", err)
	}

	seen := make(map[string]bool, len(file.Banks))
	for i := range file.Banks {
		bank := &file.Banks[i]
		if bank.Key == "" || bank.Name == "" {
			return nil, fmt.Errorf("bank template %d: key and name are required", i)
		}
		if seen[bank.Key] {
			return nil, fmt.Errorf("bank template %q is defined twice", bank.Key)
		}
		seen[bank.Key] = true

		if len(bank.Keywords) == 0 {
			return nil, fmt.Errorf("bank template %q has no keywords", bank.Key)
		}
		bank.compile()
	}

	return file.Banks, nil
}

var (
	defaultOnce      sync.Once
	defaultTemplates []BankTemplate
	defaultErr       error
)

// DefaultTemplates returns the embedded template table. It is decoded once.
func DefaultTemplates() ([]BankTemplate, error) {
	defaultOnce.Do(func() {
		defaultTemplates, defaultErr = LoadTemplates(defaultBanks)
	})
	return defaultTemplates, defaultErr
}

// GenericTemplate is used when the issuer cannot be identified.
func GenericTemplate() BankTemplate {
	t := BankTemplate{Key: "generic", Name: GenericBankName}
	t.compile()
	return t
}

func (t *BankTemplate) compile() {
	t.keywordPatterns = wordPatterns(t.Keywords)
	t.creditPatterns = wordPatterns(merge(t.CreditKeywords, defaultCreditKeywords))
	t.debitPatterns = wordPatterns(merge(t.DebitKeywords, defaultDebitKeywords))
	t.senderPattern = labelPattern(merge(t.SenderLabels, defaultSenderLabels))
	t.receiverPattern = labelPattern(merge(t.ReceiverLabels, defaultReceiverLabels))
}

// DetectBank picks the template whose keyword appears earliest in text.
// Receipts print the issuer in the header, while counterparties' banks show
// up further down.
func DetectBank(text string, templates []BankTemplate) BankTemplate {
	best := -1
	bestPos := len(text) + 1

	for i := range templates {
		for _, pattern := range templates[i].keywordPatterns {
			loc := pattern.FindStringIndex(text)
			if loc != nil && loc[0] < bestPos {
				best, bestPos = i, loc[0]
			}
		}
	}

	if best < 0 {
		return GenericTemplate()
	}
	return templates[best]
}

func wordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, word := range words {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return patterns
}

// labelPattern matches "Label: value" lines and captures the value.
func labelPattern(labels []string) *regexp.Regexp {
	sorted := append([]string(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, label := range sorted {
		quoted[i] = regexp.QuoteMeta(label)
	}
	return regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(quoted, "|") + `)[ \t]*[:\-][ \t]*(.+?)[ \t]*$`)
}

// merge returns primary followed by the fallback entries it lacks.
func merge(primary, fallback []string) []string {
	out := make([]string, 0, len(primary)+len(fallback))
	seen := make(map[string]bool, len(primary)+len(fallback))
	for _, list := range [][]string{primary, fallback} {
		for _, v := range list {
			key := strings.ToLower(strings.TrimSpace(v))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}
