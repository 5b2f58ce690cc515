package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tractorcare/order-service/internal/entities"
)

// File is a seed document with customers and catalog entries.
type File struct {
	Customers []Customer    `yaml:"customers" validate:"dive"`
	Catalog   []CatalogItem `yaml:"catalog" validate:"dive"`
}

type Customer struct {
	ID    string `yaml:"id" validate:"required,max=64"`
	Name  string `yaml:"name" validate:"required"`
	Phone string `yaml:"phone" validate:"omitempty,e164"`
	Email string `yaml:"email" validate:"omitempty,email"`
}

type CatalogItem struct {
	ID     string `yaml:"id" validate:"required,max=64"`
	Type   string `yaml:"type" validate:"required,oneof=service part"`
	Name   string `yaml:"name" validate:"required"`
	Price  string `yaml:"price" validate:"required"`
	Status string `yaml:"status" validate:"omitempty,oneof=AVAILABLE OUT_OF_STOCK DISABLED"`
}

type Seeder interface {
	SaveCustomer(ctx context.Context, c entities.Customer) error
	SaveCatalogItem(ctx context.Context, item entities.CatalogItem) error
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return File{}, fmt.Errorf("invalid seed file: %w", err)
	}
	return f, nil
}

// Apply upserts every customer and catalog entry of f.
func Apply(ctx context.Context, logger *slog.Logger, s Seeder, f File) error {
	now := time.Now().UTC()
	for _, c := range f.Customers {
		err := s.SaveCustomer(ctx, entities.Customer{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("seeding customer %s: %w", c.ID, err)
		}
	}

	for _, it := range f.Catalog {
		item, err := it.toEntity()
		if err != nil {
			return err
		}
		if err := s.SaveCatalogItem(ctx, item); err != nil {
			return fmt.Errorf("seeding catalog item %s: %w", it.ID, err)
		}
	}

	logger.Info("seed applied", slog.Int("customers", len(f.Customers)), slog.Int("catalog", len(f.Catalog)))
	return nil
}

func (c CatalogItem) toEntity() (entities.CatalogItem, error) {
	price, err := decimal.NewFromString(c.Price)
	if err != nil || price.IsNegative() {
		return entities.CatalogItem{}, fmt.Errorf("catalog item %s: invalid price %q", c.ID, c.Price)
	}

	itemType, err := entities.ParseItemType(c.Type)
	if err != nil {
		return entities.CatalogItem{}, fmt.Errorf("catalog item %s: %w", c.ID, err)
	}

	status := entities.CatalogStatus(c.Status)
	if status == "" {
		status = entities.CatalogStatusAvailable
	}

	return entities.CatalogItem{
		ID:        c.ID,
		Type:      itemType,
		Name:      c.Name,
		UnitPrice: price,
		Status:    status,
	}, nil
}
