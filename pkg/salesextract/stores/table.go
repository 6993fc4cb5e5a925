// Package stores provides the store number to address lookup table.
package stores

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
	"gopkg.in/yaml.v2"
)

//go:embed stores.yaml
var defaultYAML []byte

var defaultTable = mustParse(defaultYAML)

// Table maps 5-digit store numbers to addresses. It is immutable once built.
type Table struct {
	addresses map[string]string
}

// tableFile is the YAML layout of a table.
type tableFile struct {
	Stores map[string]string `yaml:"stores" validate:"required,dive,keys,len=5,numeric,endkeys,required"`
}

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

// NewTable builds a table from a copy of m.
func NewTable(m map[string]string) *Table {
	addresses := make(map[string]string, len(m))
	for k, v := range m {
		addresses[k] = v
	}
	return &Table{addresses: addresses}
}

// Load reads a YAML table of the form `stores: {"10519": "..."}`.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse store table: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid store table: %w", err)
	}
	return &Table{addresses: file.Stores}, nil
}

func mustParse(data []byte) *Table {
	t, err := parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the address of a store number.
func (t *Table) Lookup(storeNumber string) (string, bool) {
	addr, ok := t.addresses[storeNumber]
	return addr, ok
}

// Resolve returns the address of a store number, or models.AddressNotFound.
func (t *Table) Resolve(storeNumber string) string {
	if addr, ok := t.Lookup(storeNumber); ok {
		return addr
	}
	return models.AddressNotFound
}

// Len returns the number of stores.
func (t *Table) Len() int {
	return len(t.addresses)
}

// Numbers returns the store numbers in ascending order.
func (t *Table) Numbers() []string {
	numbers := make([]string, 0, len(t.addresses))
	for n := range t.addresses {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
