package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fd-lab/quadra/pkg/quadra"
	"github.com/fd-lab/quadra/pkg/quadra/solver"
)

// Config lists the packing cases a batch run solves in order.
type Config struct {
	Cases []Case `yaml:"cases"`
}

// Case is a single solve. UnitSquare defaults to true when omitted.
type Case struct {
	N          int          `yaml:"n"`
	UnitSquare *bool        `yaml:"unitSquare"`
	Expect     *Expectation `yaml:"expect"`
}

// Expectation pins the rectangle a case must produce.
type Expectation struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Area   int `yaml:"area"`
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if len(config.Cases) == 0 {
		return Config{}, fmt.Errorf("config file (%s) lists no cases", path)
	}
	return config, nil
}

func run(path string) error {
	config, err := loadConfig(path)
	if err != nil {
		return err
	}
	return runCases(logrus.NewEntry(logrus.StandardLogger()), config)
}

func runCases(log *logrus.Entry, config Config) error {
	failed := 0
	for i, c := range config.Cases {
		caseLog := log.WithFields(logrus.Fields{"case": i + 1, "n": c.N})
		caseLog.Debug("solving")
		packing, err := runCase(c)
		if err != nil {
			caseLog.Errorf("failed: %v", err)
			failed++
			continue
		}
		caseLog.Infof("solved %dx%d area %d", packing.Width, packing.Height, packing.Area)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(config.Cases))
	}
	return nil
}

func runCase(c Case) (quadra.Packing, error) {
	var options []solver.Option
	if c.UnitSquare != nil && !*c.UnitSquare {
		options = append(options, solver.WithoutUnitSquare())
	}
	s, err := solver.New(options...)
	if err != nil {
		return quadra.Packing{}, err
	}
	solution, err := s.Solve(context.Background(), c.N)
	if err != nil {
		return quadra.Packing{}, err
	}
	packing := solution.Packing()
	if e := c.Expect; e != nil {
		if packing.Width != e.Width || packing.Height != e.Height || packing.Area != e.Area {
			return quadra.Packing{}, fmt.Errorf("solved %dx%d area %d, expected %dx%d area %d",
				packing.Width, packing.Height, packing.Area, e.Width, e.Height, e.Area)
		}
	}
	return packing, nil
}
