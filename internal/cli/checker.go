package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/scheduler"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/sirupsen/logrus"
)

// Форматы вывода
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Checker выполняет проверку окрестности и печатает результат
type Checker struct {
	outages  service.OutageService
	home     models.Location
	radius   float64
	format   string
	renderer *Renderer
	errOut   io.Writer
	logger   *logrus.Logger
}

func NewChecker(outages service.OutageService, home models.Location, radius float64, format string, out, errOut io.Writer, logger *logrus.Logger) *Checker {
	return &Checker{
		outages:  outages,
		home:     home,
		radius:   radius,
		format:   format,
		renderer: NewRenderer(out, radius),
		errOut:   errOut,
		logger:   logger,
	}
}

// CheckOnce выполняет один цикл. Ошибка получения данных печатается и возвращается
func (c *Checker) CheckOnce(ctx context.Context) error {
	report, err := c.outages.NearbyOutages(ctx, c.home, c.radius)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error fetching outages: %v\n", err)
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"nearby": report.Totals.Nearby.Events,
		"total":  report.Totals.ServiceArea.Events,
	}).Debug("Check completed")

	if c.format == FormatCSV {
		return c.renderer.RenderCSV(report.Outages)
	}
	c.renderer.RenderText(report.Outages)
	return nil
}

// Watch повторяет проверку с интервалом до отмены ctx. Ошибки циклов не прерывают наблюдение
func (c *Checker) Watch(ctx context.Context, interval time.Duration) error {
	sched := scheduler.New(interval, c.logger)
	return sched.Run(ctx, func(ctx context.Context) {
		c.renderer.WatchHeader(interval, c.renderer.now())
		_ = c.CheckOnce(ctx)
	})
}
