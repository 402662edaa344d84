package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
)

// rawPair is one element of the model's JSON list.
type rawPair struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ParsePairs extracts the list of front/back pairs from a model completion.
//
// The completion may wrap the list in prose or markdown fences. The span from
// the first '[' to the last ']' is decoded, so nested brackets inside the list
// are kept; two separate lists in one completion fail to parse. Every
// element must have a non-empty front and back. Pairs are returned trimmed,
// in the order the model produced them.
func ParsePairs(raw string) ([]domain.Pair, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no bracketed list found", ErrUnparseableResponse)
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableResponse, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrUnparseableResponse)
	}

	pairs := make([]domain.Pair, 0, len(items))
	for i, item := range items {
		var rp rawPair
		if err := json.Unmarshal(item, &rp); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnparseableResponse, i, err)
		}
		pair, err := domain.NewPair(rp.Front, rp.Back)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnparseableResponse, i, err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}
