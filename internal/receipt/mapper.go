package receipt

import (
	"strings"
	"time"
	"unicode/utf8"

	"tracklytic/internal/dto"
	"tracklytic/internal/models"
)

const (
	maxNotesLength = 2000
	unknownParty   = "Unknown"
)

// MapToTransaction turns a parsed receipt into a transaction request. The
// counterparty is the sender of money received and the receiver of money
// sent. When that side is the account owner, or missing, the other side is
// used. A receipt naming the owner on both sides is a move between the owner's
// own accounts and is recorded under the owner's name.
func MapToTransaction(result *Result, ownerName string) *dto.CreateTransactionRequest {
	txType := result.Type
	if !txType.IsValid() {
		txType = models.TransactionTypeDebit
	}

	primary, secondary := result.Receiver, result.Sender
	if txType == models.TransactionTypeCredit {
		primary, secondary = result.Sender, result.Receiver
	}

	party := pickParty(primary, secondary, ownerName)
	if party == "" {
		party = unknownParty
		if result.Bank != "" && result.Bank != GenericBankName {
			party = result.Bank
		}
	}

	req := &dto.CreateTransactionRequest{
		PartyName: party,
		Type:      string(txType),
		Notes:     truncate(result.Notes, maxNotesLength),
	}
	if result.Amount != nil {
		req.Amount = *result.Amount
	}
	if result.TransactionDate != nil {
		req.TransactionDate = result.TransactionDate.Format(time.DateOnly)
	}

	return req
}

func pickParty(primary, secondary, ownerName string) string {
	for _, name := range []string{primary, secondary} {
		if name != "" && !sameName(name, ownerName) {
			return collapseSpaces(name)
		}
	}
	if primary != "" || secondary != "" {
		return collapseSpaces(ownerName)
	}
	return ""
}

func sameName(a, b string) bool {
	if b == "" {
		return false
	}
	return strings.EqualFold(collapseSpaces(a), collapseSpaces(b))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
