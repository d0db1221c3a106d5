package seeds

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/telebill/telebill/internal/domain/city"
	"github.com/telebill/telebill/internal/shared/logger"
)

// TariffFile is the YAML layout accepted by `telebill seed cities`.
//
//	cities:
//	  - name: Kyiv
//	    day_rate: 1.5
//	    night_rate: 1.0
//	    discounts:
//	      - duration: 10      # minutes
//	        discount_rate: 15 # percent
type TariffFile struct {
	Cities []Tariff `yaml:"cities"`
}

type Tariff struct {
	Name      string           `yaml:"name"`
	DayRate   float64          `yaml:"day_rate"`
	NightRate float64          `yaml:"night_rate"`
	Discounts []TariffDiscount `yaml:"discounts"`
}

type TariffDiscount struct {
	Duration     float64 `yaml:"duration"`
	DiscountRate float64 `yaml:"discount_rate"`
}

// DefaultTariffs are seeded when no file is given.
var DefaultTariffs = []Tariff{
	{Name: "Kyiv", DayRate: 1.5, NightRate: 1.0, Discounts: []TariffDiscount{{Duration: 10, DiscountRate: 15}}},
	{Name: "Lviv", DayRate: 1.2, NightRate: 0.8, Discounts: []TariffDiscount{{Duration: 5, DiscountRate: 5}, {Duration: 15, DiscountRate: 10}}},
	{Name: "Odesa", DayRate: 1.3, NightRate: 0.9},
}

// LoadTariffFile reads and decodes a tariff YAML file
func LoadTariffFile(path string) ([]Tariff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tariff file: %w", err)
	}
	defer f.Close()
	return ParseTariffs(f)
}

// ParseTariffs decodes tariff YAML, rejecting unknown keys
func ParseTariffs(r io.Reader) ([]Tariff, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file TariffFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse tariff file: %w", err)
	}
	return file.Cities, nil
}

// Result counts what a seed run did
type Result struct {
	Created int
	Skipped int
}

// SeedCities creates every tariff whose city name is not taken yet. All
// tariffs are validated before anything is written.
func SeedCities(ctx context.Context, repo city.Repository, tariffs []Tariff, log logger.Interface) (Result, error) {
	var res Result

	cities := make([]*city.City, 0, len(tariffs))
	for i, t := range tariffs {
		inputs := make([]city.DiscountInput, 0, len(t.Discounts))
		for _, d := range t.Discounts {
			inputs = append(inputs, city.DiscountInput{Duration: d.Duration, DiscountRate: d.DiscountRate})
		}
		c, err := city.NewCity(t.Name, t.DayRate, t.NightRate, inputs)
		if err != nil {
			return res, fmt.Errorf("tariff #%d (%q): %w", i+1, t.Name, err)
		}
		cities = append(cities, c)
	}

	for _, c := range cities {
		exists, err := repo.ExistsByName(ctx, c.Name())
		if err != nil {
			return res, err
		}
		if exists {
			log.Infow("city already exists, skipping", "name", c.Name())
			res.Skipped++
			continue
		}
		if err := repo.Create(ctx, c); err != nil {
			return res, fmt.Errorf("failed to seed city %q: %w", c.Name(), err)
		}
		res.Created++
	}

	return res, nil
}
