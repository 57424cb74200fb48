package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a whole run.
type Summary struct {
	Generations     int
	FinalPopulation int
	PeakPopulation  int
	MeanPopulation  float64
	StdPopulation   float64
	Births          int
	Deaths          int
	Extinct         bool
}

func summarize(populations []float64, births, deaths int, last GenerationRecord) Summary {
	s := Summary{
		Generations: len(populations),
		Births:      births,
		Deaths:      deaths,
	}
	if len(populations) == 0 {
		return s
	}
	s.FinalPopulation = last.Population
	s.Extinct = last.Population == 0
	s.PeakPopulation = int(floats.Max(populations))
	s.MeanPopulation = stat.Mean(populations, nil)
	if len(populations) > 1 {
		s.StdPopulation = stat.StdDev(populations, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Int("final_population", s.FinalPopulation),
		slog.Int("peak_population", s.PeakPopulation),
		slog.Float64("mean_population", s.MeanPopulation),
		slog.Float64("std_population", s.StdPopulation),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Bool("extinct", s.Extinct),
	)
}
