package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
)

func newImporter(t *testing.T) (*Importer, repository.CatalogRepository) {
	t.Helper()
	repo := repository.NewSQLiteCatalogRepository(openStore(t, filepath.Join(t.TempDir(), "store.db")))
	return NewImporter(repo), repo
}

func TestGuessMappings(t *testing.T) {
	rules := GuessMappings([]string{"Product Name", "Unit Cost", "Cat.", "Desc", "Img URL", "Stock Qty", "SKU"})

	targets := make([]string, len(rules))
	for i, r := range rules {
		targets[i] = r.TargetField
	}
	assert.Equal(t, []string{"name", "price", "category", "description", "image", "stock", ""}, targets)

	for _, r := range rules {
		assert.Equal(t, model.TransformNone, r.Transform)
	}
}

func TestImportCSV_AutoGuessedMapping(t *testing.T) {
	im, repo := newImporter(t)

	csv := strings.Join([]string{
		"name,price,category,stock",
		"Widget,19.99,Gadgets,5",
		"Gizmo,$1299.00,Gadgets,0",
	}, "\n")

	report, err := im.ImportCSV(context.Background(), strings.NewReader(csv), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 2, report.Imported)
	assert.InDelta(t, 19.99+1299.00, report.Total, 0.001)

	products, err := repo.GetCachedCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	byName := map[string]model.Product{}
	for _, p := range products {
		byName[p.Name] = p
	}

	widget := byName["Widget"]
	assert.Equal(t, 19.99, widget.Price)
	assert.Equal(t, "Gadgets", widget.Category)
	assert.Equal(t, 5, widget.Quantity)
	assert.True(t, widget.InStock)
	assert.Equal(t, fallbackImage, widget.Image)

	gizmo := byName["Gizmo"]
	assert.Equal(t, 1299.00, gizmo.Price)
	assert.Equal(t, 0, gizmo.Quantity)
	assert.False(t, gizmo.InStock)
}

func TestImportCSV_ExplicitRulesAndTransforms(t *testing.T) {
	im, repo := newImporter(t)

	csv := strings.Join([]string{
		"title,amount,group",
		"  fancy lamp  ,\"$49.50\",home",
	}, "\n")

	rules := []model.TransformRule{
		{SourceField: "title", TargetField: "name", Transform: model.TransformTrim},
		{SourceField: "amount", TargetField: "price", Transform: model.TransformCurrencyUSD},
		{SourceField: "group", TargetField: "category", Transform: model.TransformUppercase},
	}

	_, err := im.ImportCSV(context.Background(), strings.NewReader(csv), rules, nil)
	require.NoError(t, err)

	products, err := repo.GetCachedCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "fancy lamp", products[0].Name)
	assert.Equal(t, 49.50, products[0].Price)
	assert.Equal(t, "HOME", products[0].Category)
}

func TestImportCSV_MandatoryFieldFallbacks(t *testing.T) {
	im, repo := newImporter(t)

	// A column no rule targets: every product field comes from the fallbacks.
	csv := "sku\nABC-123"

	_, err := im.ImportCSV(context.Background(), strings.NewReader(csv), nil, nil)
	require.NoError(t, err)

	products, err := repo.GetCachedCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Imported Item 0", products[0].Name)
	assert.Equal(t, 10.00, products[0].Price)
	assert.Equal(t, "Uncategorized", products[0].Category)
	assert.Equal(t, []string{"#000"}, products[0].Colors)
}

func TestImportCSV_ReportsProgress(t *testing.T) {
	im, _ := newImporter(t)

	csv := "name\nA\nB\nC"
	var calls []int
	_, err := im.ImportCSV(context.Background(), strings.NewReader(csv), nil, func(done, total int) {
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, calls)
}

func TestImportCSV_RejectsInvalidRule(t *testing.T) {
	im, _ := newImporter(t)

	_, err := im.ImportCSV(context.Background(), strings.NewReader("name\nA"),
		[]model.TransformRule{{SourceField: "name", TargetField: "weight"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target field")

	_, err = im.ImportCSV(context.Background(), strings.NewReader("name\nA"),
		[]model.TransformRule{{SourceField: "name", TargetField: "name", Transform: "reverse"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transform")
}

func TestImportCSV_EmptyInputFails(t *testing.T) {
	im, _ := newImporter(t)

	_, err := im.ImportCSV(context.Background(), strings.NewReader(""), nil, nil)
	require.Error(t, err)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- sourceField: title
  targetField: name
  transform: trim
- sourceField: amount
  targetField: price
  transform: currency_usd
`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "name", rules[0].TargetField)
	assert.Equal(t, model.TransformCurrencyUSD, rules[1].Transform)
}

func TestLoadRules_RejectsBadRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- sourceField: title
  targetField: flavor
`), 0o644))

	_, err := LoadRules(path)
	require.Error(t, err)
}

func TestApplyTransform(t *testing.T) {
	assert.Equal(t, "HELLO", applyTransform("hello", model.TransformUppercase))
	assert.Equal(t, "hello", applyTransform("HELLO", model.TransformLowercase))
	assert.Equal(t, "hello", applyTransform("  hello  ", model.TransformTrim))
	assert.Equal(t, "1299", applyTransform("$1,299", model.TransformCurrencyUSD))
	assert.Equal(t, "13", applyTransform("12.7", model.TransformRoundNumber))
	assert.Equal(t, "n/a", applyTransform("n/a", model.TransformRoundNumber))
	assert.Equal(t, "as-is", applyTransform("as-is", model.TransformNone))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 1299.00, parsePrice("$1,299.00"))
	assert.Equal(t, 19.99, parsePrice("19.99 USD"))
	assert.Equal(t, 0.0, parsePrice("free"))
}

func TestFormatUSD(t *testing.T) {
	got := FormatUSD(1299.50)
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "1,299.50")
}
