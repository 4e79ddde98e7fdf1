package runner

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Operations lists the script vocabulary of kind, sorted by name.
func Operations(kind Kind) ([]Operation, error) {
	e, err := newEngine(kind, 1, 1)
	if err != nil {
		return nil, err
	}
	return e.operations(), nil
}

// SuggestOperations fuzzy-matches partial against the vocabulary of kind, closest first.
// An empty partial returns every operation name.
func SuggestOperations(kind Kind, partial string) ([]string, error) {
	ops, err := Operations(kind)
	if err != nil {
		return nil, err
	}

	names := lo.Map(ops, func(o Operation, _ int) string { return o.Name })
	if partial == "" {
		return names, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(partial, names)
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target }), nil
}
