// Package catalog resolves SKUs against a variant catalog kept in a YAML file.
//
// The file lists variants in the same shape they are frozen onto line items:
//
//	variants:
//	  - sku: NCK-SLV-02
//	    type: necklace
//	    option1: Silver
//	    manufacturingCost: {amount: "12.00", currency: USD}
//	    personalizationRules:
//	      - name: name
//	        type: input
//	        pattern: "[A-Za-z ]*"
//	        required: true
//	        maxLength: 10
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"sales/internal/core/domain/model/lineitem"
	"sales/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Variants []lineitem.VariantDocument `yaml:"variants"`
}

// FileVariantCatalog implements ports.VariantCatalog from an in-memory index
// built once at startup. It is safe for concurrent use.
type FileVariantCatalog struct {
	variants map[string]lineitem.VariantDocument
}

// Load reads and indexes the catalog file at path.
func Load(path string) (*FileVariantCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variant catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode indexes a catalog read from r. Unknown keys, blank SKUs and
// duplicate SKUs are rejected; every problem is reported.
func Decode(r io.Reader) (*FileVariantCatalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode variant catalog: %w", err)
	}

	c := &FileVariantCatalog{variants: make(map[string]lineitem.VariantDocument, len(file.Variants))}
	var problems []error
	for i, v := range file.Variants {
		key := normalizeSKU(v.SKU)
		if key == "" {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("variants[%d].sku", i)))
			continue
		}
		if _, ok := c.variants[key]; ok {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("variants[%d].sku", i), fmt.Errorf("duplicate sku %q", v.SKU)))
			continue
		}
		c.variants[key] = v
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return c, nil
}

// Resolve returns a copy of the variant for sku. Lookup ignores case and
// surrounding blanks; unknown SKUs fail with errs.ErrObjectNotFound.
func (c *FileVariantCatalog) Resolve(_ context.Context, sku string) (lineitem.VariantDocument, error) {
	v, ok := c.variants[normalizeSKU(sku)]
	if !ok {
		return lineitem.VariantDocument{}, errs.NewObjectNotFoundError("sku", sku)
	}
	return clone(v), nil
}

// Len returns the number of indexed variants.
func (c *FileVariantCatalog) Len() int {
	return len(c.variants)
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func clone(v lineitem.VariantDocument) lineitem.VariantDocument {
	v.ProductionData = maps.Clone(v.ProductionData)
	v.PersonalizationRules = slices.Clone(v.PersonalizationRules)
	for i := range v.PersonalizationRules {
		v.PersonalizationRules[i].Options = slices.Clone(v.PersonalizationRules[i].Options)
	}
	return v
}
