package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/shared"
)

// maxSummaryValues is how many names a summary lists before "+N more"
const maxSummaryValues = 2

// NoFiltersSummary is returned by Summary when nothing is selected
const NoFiltersSummary = "No filters"

var fold = cases.Fold()

// ProductFilter holds one session's filter selections and applies them
// to product lists in a fixed stage order: category, then brand, then
// search text. Stages combine with AND. All operations are total; an
// empty selection in a dimension passes every product through.
//
// Not safe for concurrent use; each session owns its own instance.
type ProductFilter struct {
	brands shared.Repository[catalog.Brand]

	selectedBrandIDs   []uuid.UUID
	selectedCategories []string
	searchText         string

	brandIDToName map[uuid.UUID]string
	brandNameToID map[string]uuid.UUID
}

// NewProductFilter creates a filter with empty selections.
// The brand repository is only used by LoadBrandMappings.
func NewProductFilter(brands shared.Repository[catalog.Brand]) *ProductFilter {
	return &ProductFilter{
		brands:        brands,
		brandIDToName: make(map[uuid.UUID]string),
		brandNameToID: make(map[string]uuid.UUID),
	}
}

// LoadBrandMappings refreshes the brand id/name caches from storage.
// On failure the caches degrade to empty so filtering keeps working;
// brand selections simply stop matching until the next successful load.
func (f *ProductFilter) LoadBrandMappings(ctx context.Context) {
	f.brandIDToName = make(map[uuid.UUID]string)
	f.brandNameToID = make(map[string]uuid.UUID)

	filter := shared.DefaultFilter()
	filter.PageSize = 1000
	all, err := f.brands.FindAll(ctx, filter)
	if err != nil {
		return
	}

	for _, b := range all {
		f.brandIDToName[b.ID] = b.Name
		f.brandNameToID[b.Name] = b.ID
	}
}

// SetSelectedBrands replaces the brand selection
func (f *ProductFilter) SetSelectedBrands(ids []uuid.UUID) {
	f.selectedBrandIDs = append([]uuid.UUID(nil), ids...)
}

// SetSelectedCategories replaces the category selection
func (f *ProductFilter) SetSelectedCategories(labels []string) {
	f.selectedCategories = append([]string(nil), labels...)
}

// SetSearchText replaces the search text.
// The text is trimmed and case-folded once, at write time.
func (f *ProductFilter) SetSearchText(text string) {
	f.searchText = fold.String(strings.TrimSpace(text))
}

// SelectedBrands returns a copy of the brand selection
func (f *ProductFilter) SelectedBrands() []uuid.UUID {
	return append([]uuid.UUID(nil), f.selectedBrandIDs...)
}

// SelectedCategories returns a copy of the category selection
func (f *ProductFilter) SelectedCategories() []string {
	return append([]string(nil), f.selectedCategories...)
}

// SearchText returns the normalized search text
func (f *ProductFilter) SearchText() string {
	return f.searchText
}

// HasActiveFilters reports whether any dimension is selected
func (f *ProductFilter) HasActiveFilters() bool {
	return len(f.selectedBrandIDs) > 0 || len(f.selectedCategories) > 0 || f.searchText != ""
}

// ResetFilters clears every dimension.
// Brand mappings stay cached; they are data, not selection.
func (f *ProductFilter) ResetFilters() {
	f.selectedBrandIDs = nil
	f.selectedCategories = nil
	f.searchText = ""
}

// FilterProducts applies the active filters to the given products.
// Pure with respect to its input: products are never mutated and the
// result preserves their relative order.
func (f *ProductFilter) FilterProducts(products []catalog.Product) []catalog.Product {
	result := products

	if len(f.selectedCategories) > 0 {
		result = f.filterByCategory(result)
	}
	if len(f.selectedBrandIDs) > 0 {
		result = f.filterByBrand(result)
	}
	if f.searchText != "" {
		result = f.filterBySearch(result)
	}

	if len(result) == len(products) {
		// Nothing was filtered out; still return a copy so callers can
		// never alias the input slice.
		result = append([]catalog.Product(nil), products...)
	}
	return result
}

// filterByCategory keeps products whose category exactly matches a selection
func (f *ProductFilter) filterByCategory(products []catalog.Product) []catalog.Product {
	selected := make(map[string]struct{}, len(f.selectedCategories))
	for _, c := range f.selectedCategories {
		selected[c] = struct{}{}
	}

	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if _, ok := selected[p.Category]; ok {
			result = append(result, p)
		}
	}
	return result
}

// filterByBrand resolves the selected ids through the cached mapping
// and keeps products whose trimmed brand name is in the resolved set.
// Ids with no cached name are dropped; products without a brand never
// match a brand selection.
func (f *ProductFilter) filterByBrand(products []catalog.Product) []catalog.Product {
	selected := make(map[string]struct{}, len(f.selectedBrandIDs))
	for _, id := range f.selectedBrandIDs {
		if name, ok := f.brandIDToName[id]; ok {
			selected[name] = struct{}{}
		}
	}

	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		brand := strings.TrimSpace(p.Brand)
		if brand == "" {
			continue
		}
		if _, ok := selected[brand]; ok {
			result = append(result, p)
		}
	}
	return result
}

// filterBySearch keeps products whose folded name or article contains
// the normalized search text.
func (f *ProductFilter) filterBySearch(products []catalog.Product) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		name := fold.String(p.Name)
		article := fold.String(p.Article)
		if strings.Contains(name, f.searchText) || strings.Contains(article, f.searchText) {
			result = append(result, p)
		}
	}
	return result
}

// Summary renders the active selections as a short display string,
// e.g. `Categories: Велоспорт, Одежда и обувь (+1 more); Search: 'мяч'`.
// Returns NoFiltersSummary when nothing is selected.
func (f *ProductFilter) Summary() string {
	var parts []string

	if len(f.selectedCategories) > 0 {
		parts = append(parts, summarizeValues("Category", "Categories", f.selectedCategories))
	}

	if len(f.selectedBrandIDs) > 0 {
		names := make([]string, 0, len(f.selectedBrandIDs))
		for _, id := range f.selectedBrandIDs {
			if name, ok := f.brandIDToName[id]; ok {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			parts = append(parts, summarizeValues("Brand", "Brands", names))
		}
	}

	if f.searchText != "" {
		parts = append(parts, fmt.Sprintf("Search: '%s'", f.searchText))
	}

	if len(parts) == 0 {
		return NoFiltersSummary
	}
	return strings.Join(parts, "; ")
}

// summarizeValues lists the first two values and counts the rest
func summarizeValues(singular, plural string, values []string) string {
	label := singular
	if len(values) > 1 {
		label = plural
	}
	shown := values
	if len(shown) > maxSummaryValues {
		shown = shown[:maxSummaryValues]
	}
	text := strings.Join(shown, ", ")
	if extra := len(values) - maxSummaryValues; extra > 0 {
		text = fmt.Sprintf("%s (+%d more)", text, extra)
	}
	return fmt.Sprintf("%s: %s", label, text)
}
