package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tirasundara/dsa-reconciliation/internal/config"
	"github.com/tirasundara/dsa-reconciliation/internal/report"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "dsarecon",
		Short: "Reconcile DSA onboarding against customer transactions and compute commissions",
		Long: `dsarecon reads the onboarding, deposit, ticket and scan-to-send exports and
produces one of two commission reports:

  qualification   customers onboarded by a DSA who deposited and then bought a
                  ticket or scanned, paid at 40 per customer
  transactional   customers whose deposit a DSA processed, checked against the
                  onboarding agent, paid at 25 per active customer

Every flag can also be set with a DSARECON_ environment variable
(e.g. DSARECON_DSA_FILTER) or in the file given by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	for _, role := range config.Roles() {
		flags.String(string(role), "", fmt.Sprintf("path to the %s CSV file", role))
	}
	flags.String(config.KeyConfig, "", "config file (yaml, json or toml)")
	flags.String(config.KeyDSAFilter, "", "comma-separated DSA mobiles to report on")
	flags.StringP(config.KeyFormat, "f", "json", "output format: json, csv, xlsx")
	flags.StringP(config.KeyOutput, "o", "", "output file path (default: stdout)")
	flags.String(config.KeySheet, "", "table written by the csv format (default: the first one)")
	flags.Bool(config.KeyPretty, true, "pretty print JSON output")
	flags.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	flags.Bool(config.KeyLogDevelopment, false, "human-readable log output")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newQualificationCmd(v),
		newTransactionalCmd(v),
	)

	return root
}

func newQualificationCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qualification",
		Short: "Report A: pay DSAs for onboarded customers who deposited and transacted",
		Example: `  dsarecon qualification --onboarding onboarding.csv --deposit deposit.csv \
    --ticket ticket.csv --scan scan.csv --conversion conversion.csv -f xlsx -o report_a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v, report.ReportQualification)
		},
	}

	cmd.Flags().Bool(config.KeyAllCustomers, false, "include the all-customers table")
	if err := v.BindPFlag(config.KeyAllCustomers, cmd.Flags().Lookup(config.KeyAllCustomers)); err != nil {
		panic(err)
	}

	return cmd
}

func newTransactionalCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "transactional",
		Short: "Report B: attribute deposits to the processing DSA and check the onboarding agent",
		Example: `  dsarecon transactional --onboarding onboarding.csv --deposit deposit.csv \
    --ticket ticket.csv --scan scan.csv --dsa-filter 7777777,8888888`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v, report.ReportTransactional)
		},
	}
}
