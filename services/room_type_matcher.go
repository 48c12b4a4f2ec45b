package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const roomTypeSimilarityThreshold = 0.6

// Hàm chuẩn hóa chuỗi: bỏ dấu, chữ thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// MatchRoomTypes ánh xạ loại phòng người dùng nhập (có thể sai chính tả, có dấu)
// sang các loại phòng đang có. Trả về nil nếu không khớp loại nào.
func MatchRoomTypes(query string, known []string) []string {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	byNormalized := make(map[string][]string)
	keywords := make([]string, 0, len(known))
	for _, t := range known {
		n := normalizeInput(t)
		if n == "" {
			continue
		}
		if _, ok := byNormalized[n]; !ok {
			keywords = append(keywords, n)
		}
		byNormalized[n] = append(byNormalized[n], t)
	}

	if exact, ok := byNormalized[normalizedQuery]; ok {
		return exact
	}
	if len(keywords) == 0 {
		return nil
	}

	matcher := closestmatch.New(keywords, []int{2, 3})
	closest := matcher.Closest(normalizedQuery)
	if closest == "" || calculateSimilarity(normalizedQuery, closest) < roomTypeSimilarityThreshold {
		return nil
	}
	return byNormalized[closest]
}
