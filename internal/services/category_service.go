package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/google/uuid"
)

const suggestThreshold = 0.7

type categoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	keywordPatterns []keywordPattern
}

// keywordPattern points counterparties containing one of keywords at a
// category named like one of names.
type keywordPattern struct {
	keywords   []string
	names      []string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:    categoryRepo,
		keywordPatterns: initKeywordPatterns(),
	}
}

func (s *categoryService) Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Type:   models.CategoryType(req.Type),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.Domainf(apperrors.CategoryAlreadyExists, "%s Category already exists", models.DisplayName(category.Name))
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *categoryService) List(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.NewDomainError(apperrors.CategoryNoneFound)
	}
	return categories, nil
}

func (s *categoryService) Delete(userID, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(userID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NewDomainError(apperrors.CategoryNotFound)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// Suggest matches a counterparty name against the user's categories of the
// matching kind. A category name appearing as whole words wins, then the
// keyword table, then Levenshtein similarity. It returns nil when nothing scores above the threshold.
func (s *categoryService) Suggest(userID uuid.UUID, partyName string, kind models.TransactionType) (*models.Category, float64, error) {
	if strings.TrimSpace(partyName) == "" {
		return nil, 0, nil
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load categories: %w", err)
	}

	candidates := filterByKind(categories, kind)
	if len(candidates) == 0 {
		return nil, 0, nil
	}

	party := normalizeForMatching(partyName)
	partyWords := matchWords(partyName)

	for i := range candidates {
		if containsPhrase(partyWords, matchWords(candidates[i].Name)) {
			return &candidates[i], 0.95, nil
		}
	}

	if category, score := s.matchKeywords(partyWords, candidates); category != nil {
		return category, score, nil
	}

	var best *models.Category
	var bestScore float64
	for i := range candidates {
		score := calculateSimilarity(party, normalizeForMatching(candidates[i].Name))
		if score > bestScore && score > suggestThreshold {
			best, bestScore = &candidates[i], score
		}
	}

	return best, bestScore, nil
}

func (s *categoryService) matchKeywords(partyWords []string, candidates []models.Category) (*models.Category, float64) {
	for _, pattern := range s.keywordPatterns {
		matched := false
		for _, keyword := range pattern.keywords {
			if containsPhrase(partyWords, matchWords(keyword)) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		for i := range candidates {
			tag := normalizeForMatching(candidates[i].Name)
			for _, name := range pattern.names {
				if calculateSimilarity(tag, normalizeForMatching(name)) > suggestThreshold {
					return &candidates[i], pattern.confidence
				}
			}
		}
	}
	return nil, 0
}

func filterByKind(categories []models.Category, kind models.TransactionType) []models.Category {
	want := models.CategoryTypeExpense
	if kind == models.TransactionTypeCredit {
		want = models.CategoryTypeIncome
	}

	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == want {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func initKeywordPatterns() []keywordPattern {
	return []keywordPattern{
		{
			keywords:   []string{"Salary", "Payroll", "Wage", "Stipend", "Allowance"},
			names:      []string{"Salary", "Income", "Wages"},
			confidence: 0.9,
		},
		{
			keywords:   []string{"Shoprite", "Spar", "Market", "Supermarket", "Foods", "Chicken Republic", "Kitchen", "Restaurant", "Eatery", "Bukka"},
			names:      []string{"Food", "Groceries", "Feeding", "Eating Out"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"Uber", "Bolt", "Taxify", "Rida", "BRT", "Transport", "Fuel", "Filling Station", "NNPC"},
			names:      []string{"Transport", "Transportation", "Fuel"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"MTN", "Airtel", "9mobile", "Airtime", "Data", "IKEDC", "EKEDC", "AEDC", "Electricity", "DSTV", "GOtv", "Startimes"},
			names:      []string{"Bills", "Utilities", "Airtime", "Data", "Electricity", "Subscriptions"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"Netflix", "Spotify", "Showmax", "Cinema", "Filmhouse", "Genesis"},
			names:      []string{"Entertainment", "Subscriptions", "Leisure"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"Jumia", "Konga", "Mall", "Store", "Boutique"},
			names:      []string{"Shopping", "Clothing"},
			confidence: 0.8,
		},
		{
			keywords:   []string{"Pharmacy", "Hospital", "Clinic", "Medplus", "HMO"},
			names:      []string{"Health", "Healthcare", "Medical"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"School", "University", "Tuition", "Academy", "Udemy", "Coursera"},
			names:      []string{"Education", "School Fees"},
			confidence: 0.85,
		},
		{
			keywords:   []string{"Rent", "Landlord", "Estate", "Property"},
			names:      []string{"Rent", "Housing"},
			confidence: 0.8,
		},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := createMatrix(s1, s2)
	initializeFirstRowAndColumn(s1, s2, matrix)
	fillMatrix(s1, s2, matrix)

	return matrix[len(s1)][len(s2)]
}

func createMatrix(s1 string, s2 string) [][]int {
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	return matrix
}

func initializeFirstRowAndColumn(s1 string, s2 string, matrix [][]int) {
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}
}

func fillMatrix(s1 string, s2 string, matrix [][]int) {
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = calculateMinValue(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
}

func calculateMinValue(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// containsPhrase reports whether phrase occurs in words as consecutive whole
// words, so "rent" matches "House Rent" but not "Laurent".
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			return true
		}
	}
	return false
}

// matchWords lowercases s, strips accents and splits it on anything that is
// not a letter or digit.
func matchWords(s string) []string {
	return strings.FieldsFunc(foldAccents(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalizeForMatching lowercases, strips accents and drops everything but
// letters and digits.
func normalizeForMatching(s string) string {
	return strings.Join(matchWords(s), "")
}

func foldAccents(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
