package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tirasundara/dsa-reconciliation/internal/config"
	"github.com/tirasundara/dsa-reconciliation/internal/logging"
	"github.com/tirasundara/dsa-reconciliation/internal/matcher"
	"github.com/tirasundara/dsa-reconciliation/internal/qualification"
	"github.com/tirasundara/dsa-reconciliation/internal/report"
	"github.com/tirasundara/dsa-reconciliation/internal/repository"
	"github.com/tirasundara/dsa-reconciliation/internal/service"
	"go.uber.org/zap"
)

func runReport(cmd *cobra.Command, v *viper.Viper, name string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer logger.Sync()

	formatter, err := report.NewFormatter(cfg.Format, cfg.Pretty, cfg.Sheet)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Read all input files concurrently
	inputs, err := repository.LoadInputs(ctx, repository.NewRepositories(cfg.Files, repository.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	reconciliationService := service.NewReconciliationService(
		qualification.NewEngine(logger),
		matcher.NewMatcher(logger),
		logger,
	)

	filter := report.ParseAgentFilter(cfg.DSAFilter)
	if filter != nil {
		logger.Info("filtering report", zap.Int("agents", len(filter)))
	}

	var bundle report.Bundle
	switch name {
	case report.ReportQualification:
		result, err := reconciliationService.RunQualification(ctx, inputs)
		if err != nil {
			return fmt.Errorf("qualification report failed: %w", err)
		}
		bundle = report.QualificationBundle(report.FilterQualification(result, cfg.DSAFilter), cfg.AllCustomers)

	case report.ReportTransactional:
		result, err := reconciliationService.RunTransactional(ctx, inputs)
		if err != nil {
			return fmt.Errorf("transactional report failed: %w", err)
		}
		bundle = report.TransactionalBundle(report.FilterTransactional(result, cfg.DSAFilter))

	default:
		return fmt.Errorf("unknown report: %s", name)
	}

	output, err := formatter.Format(bundle)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(cmd, cfg.Output, formatter.FileExtension(), output)
}

func writeOutput(cmd *cobra.Command, outputFile, extension string, output []byte) error {
	if outputFile == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}

	// If no extension is provided, add the formatter's default extension
	if filepath.Ext(outputFile) == "" {
		outputFile = fmt.Sprintf("%s.%s", outputFile, extension)
	}

	if err := os.WriteFile(outputFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
