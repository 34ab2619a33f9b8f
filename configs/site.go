package configs

import (
	"log/slog"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"

	"github.com/spf13/viper"
)

// LoadSite reads the [site] table of the branding file. A missing or broken
// file falls back to the built-in brand.
func LoadSite(path string) mailer.Brand {
	def := mailer.DefaultBrand()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("site.name", def.Name)
	v.SetDefault("site.url", def.URL)
	v.SetDefault("site.from", def.From)
	v.SetDefault("site.primary_color", def.PrimaryColor)
	v.SetDefault("site.text_color", def.TextColor)
	v.SetDefault("site.success_color", def.SuccessColor)
	v.SetDefault("site.danger_color", def.DangerColor)
	v.SetDefault("site.footer", def.Footer)

	if err := v.ReadInConfig(); err != nil {
		slog.Warn("site config not loaded, using defaults", "path", path, "error", err)
	}

	return mailer.Brand{
		Name:         v.GetString("site.name"),
		URL:          v.GetString("site.url"),
		From:         v.GetString("site.from"),
		PrimaryColor: v.GetString("site.primary_color"),
		TextColor:    v.GetString("site.text_color"),
		SuccessColor: v.GetString("site.success_color"),
		DangerColor:  v.GetString("site.danger_color"),
		Footer:       v.GetString("site.footer"),
	}
}
