package inventory

import domaininv "github.com/jhoicas/Farmacia-api/internal/domain/inventory"

// Settings umbrales configurables del cálculo de stock (ver pkg/config, sección Stock).
type Settings struct {
	MinStockDefault   float64
	ConsumptionWindow int
	FallbackMean      int64
	HighShortageRatio float64
}

// DefaultSettings valores por defecto.
func DefaultSettings() Settings {
	return Settings{
		MinStockDefault:   domaininv.DefaultMinStock,
		ConsumptionWindow: domaininv.DefaultWindowSize,
		FallbackMean:      domaininv.DefaultFallbackMean,
		HighShortageRatio: domaininv.DefaultHighShortageRatio,
	}
}

// normalized reemplaza valores no positivos por los de defecto.
func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.MinStockDefault <= 0 {
		s.MinStockDefault = d.MinStockDefault
	}
	if s.ConsumptionWindow <= 0 {
		s.ConsumptionWindow = d.ConsumptionWindow
	}
	if s.FallbackMean <= 0 {
		s.FallbackMean = d.FallbackMean
	}
	if s.HighShortageRatio <= 0 {
		s.HighShortageRatio = d.HighShortageRatio
	}
	return s
}
