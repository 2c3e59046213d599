// Package datastructures provides small general-purpose containers and
// helpers for nested data: an extended list with fancy indexing, nested
// map utilities, intervals over ordered types, and a string trie.
//
// The centerpiece is EList, an ordered sequence that supports retrieving
// several elements in one call by passing a list of positions:
//
//	l := datastructures.NewEList([]int{2, 1, 0})
//	v, _ := l.Get(2)               // 0
//	sub, _ := l.GetMany([]int{2, 0}) // [0 2]
//	sub, _ = l.GetMany(l.Values())   // [0 1 2]
//
// Negative positions address elements from the end, -1 being the last
// element. None of the types in this package are safe for concurrent use;
// callers that share an instance across goroutines must synchronize around
// the whole instance.
package datastructures
