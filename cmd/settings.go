package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"hotelpos/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Settings are the business settings of the property, read from a YAML file.
//
//	tax_rate_bp: 800
//	currency: KES
//	timezone: Africa/Nairobi
//	jobs:
//	  staff_sales_summary: "0 55 23 * * *"
//	  stale_orders: "0 */15 * * * *"
//	  stale_order_after: 2h
type Settings struct {
	TaxRateBP int         `yaml:"tax_rate_bp"`
	Currency  string      `yaml:"currency"`
	Timezone  string      `yaml:"timezone"`
	Jobs      JobSettings `yaml:"jobs"`
}

type JobSettings struct {
	StaffSalesSummary string        `yaml:"staff_sales_summary"`
	StaleOrders       string        `yaml:"stale_orders"`
	StaleOrderAfter   time.Duration `yaml:"stale_order_after"`
}

func DefaultSettings() Settings {
	return Settings{
		TaxRateBP: kernel.DefaultTaxRate.BasisPoints(),
		Currency:  "KES",
		Timezone:  "UTC",
		Jobs: JobSettings{
			StaffSalesSummary: "0 55 23 * * *",
			StaleOrders:       "0 */15 * * * *",
			StaleOrderAfter:   2 * time.Hour,
		},
	}
}

// LoadSettings reads path over the defaults. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, err
	}

	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

func (s Settings) Validate() error {
	var errList []error
	if _, err := s.TaxRate(); err != nil {
		errList = append(errList, err)
	}
	if _, err := s.Location(); err != nil {
		errList = append(errList, err)
	}
	if len(strings.TrimSpace(s.Currency)) != 3 {
		errList = append(errList, fmt.Errorf("currency %q is not a three-letter code", s.Currency))
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for name, spec := range map[string]string{
		"jobs.staff_sales_summary": s.Jobs.StaffSalesSummary,
		"jobs.stale_orders":        s.Jobs.StaleOrders,
	} {
		if _, err := parser.Parse(spec); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", name, err))
		}
	}
	if s.Jobs.StaleOrderAfter <= 0 {
		errList = append(errList, fmt.Errorf("jobs.stale_order_after must be positive, got %s", s.Jobs.StaleOrderAfter))
	}

	return errors.Join(errList...)
}

func (s Settings) TaxRate() (kernel.TaxRate, error) {
	return kernel.NewTaxRate(s.TaxRateBP)
}

// Location is the timezone report days are cut in.
func (s Settings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
