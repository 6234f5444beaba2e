package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"github.com/Yalort/lootgen/internal/loot"
)

// ErrInvalidCatalog is returned when records fail field validation.
var ErrInvalidCatalog = errors.New("catalog validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their file names rather than Go names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateItemRecords checks required fields on every item record.
func validateItemRecords(recs []ItemRecord) error {
	var errs []string
	for i := range recs {
		errs = appendFieldErrors(errs, fmt.Sprintf("items[%d]", i), validate.Struct(recs[i]))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return nil
}

// validateMaterialRecords checks required fields on every material record.
func validateMaterialRecords(recs []MaterialRecord) error {
	var errs []string
	for i := range recs {
		errs = appendFieldErrors(errs, fmt.Sprintf("materials[%d]", i), validate.Struct(recs[i]))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return nil
}

func appendFieldErrors(errs []string, prefix string, err error) []string {
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return append(errs, fmt.Sprintf("%s: %v", prefix, err))
	}
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Sprintf("%s.%s is required", prefix, field))
		case "gt":
			errs = append(errs, fmt.Sprintf("%s.%s must be > %s", prefix, field, fe.Param()))
		default:
			errs = append(errs, fmt.Sprintf("%s.%s is invalid (%s)", prefix, field, fe.Tag()))
		}
	}
	return errs
}

// Warnings reports data that loads cleanly but will never take part in a
// generation the way its author probably intended.
func Warnings(items []loot.Item, materials []loot.Material) []string {
	var warns []string
	for _, it := range items {
		if it.Rarity <= 0 || it.PointValue <= 0 {
			warns = append(warns, fmt.Sprintf("item %q has rarity %d and point value %d and will never be generated", it.Name, it.Rarity, it.PointValue))
		}
	}

	caser := cases.Fold()
	known := make(map[string]bool, len(materials))
	for _, m := range materials {
		if !loot.IsCategoryKey(m.Type) {
			warns = append(warns, fmt.Sprintf("material %q has type %q which no placeholder can name", m.Name, m.Type))
			continue
		}
		known[caser.String(m.Type)] = true
	}

	// Only report each missing category once.
	missing := make(map[string]bool)
	for _, it := range items {
		for _, ph := range loot.ParsePlaceholders(it.Name) {
			for _, key := range ph.Keys {
				folded := caser.String(key)
				if known[folded] || missing[folded] {
					continue
				}
				missing[folded] = true
				warns = append(warns, fmt.Sprintf("item %q names category %q but no material has that type", it.Name, key))
			}
		}
	}
	return warns
}
