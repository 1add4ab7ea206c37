package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
)

// fallbackImage is assigned to imported rows that carry no image column.
const fallbackImage = "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=600&q=80"

// Importer runs the CSV import pipeline: loose incoming rows are mapped to
// product fields through user-configured transform rules and validated
// against the fixed target schema before the repository ever sees them.
type Importer struct {
	repo     repository.CatalogRepository
	validate *validator.Validate
}

// NewImporter creates an importer over the catalog repository.
func NewImporter(repo repository.CatalogRepository) *Importer {
	if repo == nil {
		return nil
	}
	return &Importer{
		repo:     repo,
		validate: validator.New(),
	}
}

// ImportReport summarizes one pipeline run.
type ImportReport struct {
	Rows     int     `json:"rows"`
	Imported int     `json:"imported"`
	Total    float64 `json:"totalValue"`
}

// GuessMappings builds an initial rule per header by keyword matching,
// the same auto-guess the import wizard starts from.
func GuessMappings(headers []string) []model.TransformRule {
	rules := make([]model.TransformRule, len(headers))
	for i, header := range headers {
		h := strings.ToLower(header)
		var target string
		switch {
		case strings.Contains(h, "name") || strings.Contains(h, "title"):
			target = "name"
		case strings.Contains(h, "price") || strings.Contains(h, "cost"):
			target = "price"
		case strings.Contains(h, "cat"):
			target = "category"
		case strings.Contains(h, "desc"):
			target = "description"
		case strings.Contains(h, "img") || strings.Contains(h, "url"):
			target = "image"
		case strings.Contains(h, "qty") || strings.Contains(h, "stock"):
			target = "stock"
		}
		rules[i] = model.TransformRule{
			SourceField: header,
			TargetField: target,
			Transform:   model.TransformNone,
		}
	}
	return rules
}

// LoadRules reads transform rules from a YAML mapping file.
func LoadRules(path string) ([]model.TransformRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var rules []model.TransformRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file: %w", err)
	}

	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// ImportCSV parses the CSV stream, applies the rules and bulk-imports the
// resulting products in one transaction. When rules is nil the mapping is
// auto-guessed from the header row. progress, if non-nil, is called as rows
// are processed.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader, rules []model.TransformRule, progress func(done, total int)) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	headers := records[0]
	rows := records[1:]

	if rules == nil {
		rules = GuessMappings(headers)
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}
	columnRules := alignRules(headers, rules)

	base := time.Now().UnixMilli()
	products := make([]model.Product, 0, len(rows))
	var total float64

	for i, row := range rows {
		p := buildProduct(base+int64(i), i, row, columnRules)

		if err := im.validate.Struct(&p); err != nil {
			return nil, fmt.Errorf("row %d failed validation: %w", i+1, err)
		}

		total += p.Price
		products = append(products, p)

		if progress != nil {
			progress(i+1, len(rows))
		}
	}

	if err := im.repo.AddProducts(ctx, products); err != nil {
		return nil, err
	}

	log.Info().Int("rows", len(rows)).Int("imported", len(products)).Msg("csv import committed")
	return &ImportReport{Rows: len(rows), Imported: len(products), Total: total}, nil
}

// alignRules pairs each column index with its rule, matching by source field
// name first and falling back to positional order.
func alignRules(headers []string, rules []model.TransformRule) []model.TransformRule {
	byName := make(map[string]model.TransformRule, len(rules))
	for _, r := range rules {
		byName[strings.TrimSpace(strings.ToLower(r.SourceField))] = r
	}

	aligned := make([]model.TransformRule, len(headers))
	for i, header := range headers {
		if r, ok := byName[strings.TrimSpace(strings.ToLower(header))]; ok {
			aligned[i] = r
		} else if i < len(rules) && rules[i].SourceField == "" {
			aligned[i] = rules[i]
		}
	}
	return aligned
}

func buildProduct(id int64, rowIdx int, row []string, columnRules []model.TransformRule) model.Product {
	p := model.Product{
		ID:      id,
		InStock: true,
		Rating:  4.5,
		Colors:  []string{"#000"},
		Image:   fallbackImage,
	}

	for col, rule := range columnRules {
		if rule.TargetField == "" || col >= len(row) {
			continue
		}
		value := applyTransform(row[col], rule.Transform)

		switch rule.TargetField {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "category":
			p.Category = value
		case "image":
			p.Image = value
		case "price":
			p.Price = parsePrice(value)
		case "stock":
			qty, _ := strconv.Atoi(strings.TrimSpace(value))
			p.Quantity = qty
			p.InStock = qty > 0
		}
	}

	// Mandatory field fallbacks
	if p.Name == "" {
		p.Name = fmt.Sprintf("Imported Item %d", rowIdx)
	}
	if p.Price == 0 {
		p.Price = 10.00
	}
	if p.Category == "" {
		p.Category = "Uncategorized"
	}

	return p
}

func applyTransform(value string, t model.Transform) string {
	switch t {
	case model.TransformUppercase:
		return strings.ToUpper(value)
	case model.TransformLowercase:
		return strings.ToLower(value)
	case model.TransformTrim:
		return strings.TrimSpace(value)
	case model.TransformCurrencyUSD:
		return strconv.FormatFloat(parsePrice(value), 'f', -1, 64)
	case model.TransformRoundNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return value
		}
		return strconv.FormatFloat(math.Round(f), 'f', -1, 64)
	}
	return value
}

// parsePrice strips everything but digits and the decimal point, so values
// like "$1,299.00" import cleanly.
func parsePrice(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatUSD renders a price the way the storefront displays it.
func FormatUSD(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(currency.USD.Amount(amount)))
}
