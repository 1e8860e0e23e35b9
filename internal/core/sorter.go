package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shoppinglist-card/internal/types"
)

// DefaultLocale is used when no collation locale is configured.
const DefaultLocale = "en"

// Sorter orders state records by a sequence of attribute names using
// locale-aware string collation.
type Sorter struct {
	tag language.Tag
}

func NewSorter(locale string) (Sorter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Sorter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid locale: %s", locale)).
			WithCause(err)
	}
	return Sorter{tag: tag}, nil
}

// Sort stably orders records by fields, left to right. The first field
// that compares unequal decides, and a field is only read when the fields
// before it tie. A missing or non-string value that has to be compared
// fails the whole sort.
func (s Sorter) Sort(records []types.StateRecord, fields []string) ([]types.StateRecord, error) {
	sorted := slices.Clone(records)
	if len(fields) == 0 || len(sorted) < 2 {
		return sorted, nil
	}
	keys := newSortKeys(sorted, fields)

	// Collators keep scratch buffers and are built per call.
	collator := collate.New(s.tag)
	order := make([]int, len(sorted))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a int, b int) int {
		for j := range fields {
			left, ok := keys.value(a, j)
			if !ok {
				return 0
			}
			right, ok := keys.value(b, j)
			if !ok {
				return 0
			}
			if cmp := collator.CompareString(left, right); cmp != 0 {
				return cmp
			}
		}
		return 0
	})
	if keys.err != nil {
		return nil, keys.err
	}

	out := make([]types.StateRecord, len(sorted))
	for i, idx := range order {
		out[i] = sorted[idx]
	}
	return out, nil
}

type sortKey struct {
	text   string
	loaded bool
	ok     bool
}

// sortKeys resolves sort values on first use and keeps the first failure.
type sortKeys struct {
	records []types.StateRecord
	fields  []string
	keys    [][]sortKey
	err     error
}

func newSortKeys(records []types.StateRecord, fields []string) *sortKeys {
	keys := make([][]sortKey, len(records))
	for i := range keys {
		keys[i] = make([]sortKey, len(fields))
	}
	return &sortKeys{records: records, fields: fields, keys: keys}
}

func (k *sortKeys) value(record int, field int) (string, bool) {
	key := &k.keys[record][field]
	if !key.loaded {
		text, err := sortValue(k.records[record], k.fields[field])
		key.loaded = true
		key.text = text
		key.ok = err == nil
		if err != nil && k.err == nil {
			k.err = err
		}
	}
	return key.text, key.ok
}

func sortValue(record types.StateRecord, field string) (string, error) {
	value, ok := record.Attributes.Lookup(field)
	if !ok || value == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("sort attribute %q missing on %s", field, record.EntityID))
	}
	text, ok := value.(string)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("sort attribute %q on %s is not a string", field, record.EntityID))
	}
	return text, nil
}
