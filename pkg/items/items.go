// Package items holds the built-in sample records compiled into the program.
// The table never changes at runtime; stores seed themselves from it on
// first use.
package items

import "github.com/mesh-intelligence/samples/pkg/types"

// builtIn is the authored table. Arrays copy on assignment, so All can hand
// out a fresh slice without exposing this value.
var builtIn = [...]types.Item{
	{ID: 1, Title: "항목 1", Description: "첫 번째 항목입니다."},
	{ID: 2, Title: "항목 2", Description: "두 번째 항목입니다."},
	{ID: 3, Title: "항목 3", Description: "세 번째 항목입니다."},
	{ID: 4, Title: "항목 4", Description: "네 번째 항목입니다."},
	{ID: 5, Title: "항목 5", Description: "다섯 번째 항목입니다."},
	{ID: 6, Title: "항목 6", Description: "여섯 번째 항목입니다."},
	{ID: 7, Title: "항목 7", Description: "일곱 번째 항목입니다."},
	{ID: 8, Title: "항목 8", Description: "여덟 번째 항목입니다."},
	{ID: 9, Title: "항목 9", Description: "아홉 번째 항목입니다."},
	{ID: 10, Title: "항목 10", Description: "열 번째 항목입니다."},
}

// All returns every built-in item in authored order. Each call returns a new
// slice; callers may modify it freely.
func All() []types.Item {
	table := builtIn
	return table[:]
}
