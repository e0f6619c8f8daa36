package rates

import "github.com/sbilibin2017/gw-currency-converter/internal/models"

type pair struct {
	a, b int
}

// Table indexes a rate snapshot by directed currency pair.
// It is read-only after NewTable and safe for concurrent use.
type Table struct {
	byPair map[pair]models.Rate
}

// NewTable builds a Table from a snapshot. When the snapshot holds several
// records for the same directed pair, the first one wins.
func NewTable(records []models.Rate) *Table {
	t := &Table{byPair: make(map[pair]models.Rate, len(records))}
	for _, r := range records {
		key := pair{r.CurrencyCodeA, r.CurrencyCodeB}
		if _, ok := t.byPair[key]; ok {
			continue
		}
		t.byPair[key] = r
	}
	return t
}

// FindDirect returns the record quoted from -> to.
func (t *Table) FindDirect(from, to int) (models.Rate, bool) {
	r, ok := t.byPair[pair{from, to}]
	return r, ok
}

// FindInverse returns the record quoted to -> from.
func (t *Table) FindInverse(from, to int) (models.Rate, bool) {
	return t.FindDirect(to, from)
}

// FindToBase returns the record quoting code against base.
func (t *Table) FindToBase(code, base int) (models.Rate, bool) {
	return t.FindDirect(code, base)
}

// Len returns the number of distinct directed pairs.
func (t *Table) Len() int {
	return len(t.byPair)
}
