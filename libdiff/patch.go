package libdiff

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/gdres/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Tree is an outline as nested objects keyed by symbol name.  Repeated
// names among siblings are keyed name#2, name#3 and so on.
type Tree map[string]*TreeNode

type TreeNode struct {
	Kind     string `json:"kind"`
	Detail   string `json:"detail,omitempty"`
	Children Tree   `json:"children,omitempty"`
}

func ToTree(syms []*ir.Symbol) Tree {
	if len(syms) == 0 {
		return nil
	}
	res := Tree{}
	seen := map[string]int{}
	for _, s := range syms {
		key := s.Name
		seen[key]++
		if n := seen[key]; n > 1 {
			key += "#" + strconv.Itoa(n)
		}
		res[key] = &TreeNode{
			Kind:     s.Kind.String(),
			Detail:   s.Detail,
			Children: ToTree(s.Children),
		}
	}
	return res
}

// MergePatch returns the RFC 7386 merge patch turning the outline tree of
// from into that of to.
func MergePatch(from, to []*ir.Symbol) ([]byte, error) {
	a, err := treeJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := treeJSON(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies a merge patch to the outline tree of syms.
func ApplyMergePatch(syms []*ir.Symbol, patch []byte) (Tree, error) {
	a, err := treeJSON(syms)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.MergePatch(a, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	res := Tree{}
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func treeJSON(syms []*ir.Symbol) ([]byte, error) {
	t := ToTree(syms)
	if t == nil {
		t = Tree{}
	}
	return json.Marshal(t)
}
