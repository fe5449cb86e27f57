// Package ledger assembles bank exports into one canonical, classified and
// date-ordered ledger.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wealth-dev/wealth/internal/classify"
	"github.com/wealth-dev/wealth/internal/importer"
	"github.com/wealth-dev/wealth/internal/model"
)

// IncomeDelay shifts incomes behind same-day expenses before sorting, so a
// running balance reaches its daily low before a same-day income lifts it.
const IncomeDelay = time.Hour

// Accounts supplies the user's account configuration.
type Accounts interface {
	Account(name string) model.Account
	IBANs() []string
}

// Ledger is the unified, date-sorted table of all imported transactions.
type Ledger struct {
	Transactions []model.Transaction
}

// Builder assembles ledgers from a directory of bank exports.
type Builder struct {
	registry *importer.Registry
	accounts Accounts
	logger   *log.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(registry *importer.Registry, accounts Accounts, logger *log.Logger) *Builder {
	return &Builder{registry: registry, accounts: accounts, logger: logger}
}

// Build imports every recognized CSV file in dir. Files that do not follow
// the naming convention or name an unknown format are skipped; a file that
// fails to parse fails the build.
func (b *Builder) Build(dir string) (*Ledger, error) {
	files, err := importer.Scan(dir)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	imported := 0
	for _, f := range files {
		p, account, ok := b.registry.Match(f.Name)
		if !ok {
			b.logger.Debug("skipping file", "file", f.Name, "known_formats", b.registry.Formats())
			continue
		}
		account = strings.ToLower(account)

		rows, err := importer.ParseFile(p, f.Path, account)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("imported file", "file", f.Name, "bytes", f.Size, "format", p.Format(), "account", account, "rows", len(rows))
		txns = append(txns, rows...)
		imported++
	}

	txns = b.withOffsets(txns)
	txns = StripTimes(SortByDate(DelayIncomes(txns)))
	txns = classify.All(txns, classify.NewIBANSet(b.accounts.IBANs()...))

	b.logger.Info("ledger built", "files", imported, "skipped", len(files)-imported, "rows", len(txns))
	return &Ledger{Transactions: txns}, nil
}

// withOffsets prepends one initial offset row per account, dated at the
// account's earliest transaction and carrying its configured offset.
func (b *Builder) withOffsets(txns []model.Transaction) []model.Transaction {
	var order []string
	first := make(map[string]model.Transaction)
	minDate := make(map[string]time.Time)
	for _, txn := range txns {
		if _, ok := first[txn.Account]; !ok {
			order = append(order, txn.Account)
			first[txn.Account] = txn
			minDate[txn.Account] = txn.Date
		}
		if txn.Date.Before(minDate[txn.Account]) {
			minDate[txn.Account] = txn.Date
		}
	}

	out := make([]model.Transaction, 0, len(txns)+len(order))
	for _, name := range order {
		out = append(out, Offset(b.accounts.Account(name), first[name].AccountType, minDate[name]))
	}
	return append(out, txns...)
}

// Offset builds the synthetic row carrying acct's starting balance.
func Offset(acct model.Account, accountType string, date time.Time) model.Transaction {
	txn := model.Transaction{
		Date:        date,
		Account:     acct.Name,
		Amount:      acct.Offset,
		Description: model.OffsetDescription,
		AccountType: accountType,
	}
	txn.AllData = searchString(txn)
	return txn
}

func searchString(txn model.Transaction) string {
	values := map[string]string{
		importer.ColDate:          txn.Date.Format("2006-01-02"),
		importer.ColAccount:       txn.Account,
		importer.ColAmount:        txn.Amount.String(),
		importer.ColDescription:   txn.Description,
		importer.ColAccountType:   txn.AccountType,
		importer.ColCorrespondent: txn.Correspondent,
		importer.ColIBAN:          txn.IBAN,
	}
	var parts []string
	for _, col := range importer.Columns {
		if v, ok := values[col]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", col, v))
		}
	}
	return strings.ToLower(strings.Join(parts, importer.SearchDelimiter))
}

// DelayIncomes returns a copy of txns with every positive amount moved
// IncomeDelay later.
func DelayIncomes(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		if txn.Amount.IsPositive() {
			txn.Date = txn.Date.Add(IncomeDelay)
		}
		out[i] = txn
	}
	return out
}

// SortByDate returns a copy of txns stably sorted by date.
func SortByDate(txns []model.Transaction) []model.Transaction {
	out := append([]model.Transaction(nil), txns...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// StripTimes returns a copy of txns with dates truncated to midnight.
func StripTimes(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		y, m, d := txn.Date.Date()
		txn.Date = time.Date(y, m, d, 0, 0, 0, 0, txn.Date.Location())
		out[i] = txn
	}
	return out
}

// Accounts returns the sorted account names present in the ledger.
func (l *Ledger) Accounts() []string {
	seen := make(map[string]bool)
	var names []string
	for _, txn := range l.Transactions {
		if !seen[txn.Account] {
			seen[txn.Account] = true
			names = append(names, txn.Account)
		}
	}
	sort.Strings(names)
	return names
}

// Filter returns the rows of the given accounts. No accounts means all rows.
func (l *Ledger) Filter(accounts ...string) []model.Transaction {
	if len(accounts) == 0 {
		return l.Transactions
	}
	want := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		want[strings.ToLower(a)] = true
	}
	var out []model.Transaction
	for _, txn := range l.Transactions {
		if want[txn.Account] {
			out = append(out, txn)
		}
	}
	return out
}
