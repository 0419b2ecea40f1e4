package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crema-app/crema/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored gear configuration",
	Long: `Show whether onboarding has completed and print the stored grinder
scale and active basket profile.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("db", "", "Database file path (default from config)")
}

// runStatus prints the stored configuration.
func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	done, err := db.Completed(ctx)
	if err != nil {
		return fmt.Errorf("check onboarding state: %w", err)
	}
	if !done {
		fmt.Fprintln(out, "Onboarding: not completed. Run crema onboard to get started.")
		return nil
	}
	fmt.Fprintln(out, "Onboarding: completed")

	if err := printGrinder(cmd, db); err != nil {
		return err
	}
	return printBasket(cmd, db)
}

func printGrinder(cmd *cobra.Command, db *store.SQLite) error {
	grinder, ok, err := db.Grinder(cmd.Context())
	if err != nil {
		return fmt.Errorf("read grinder config: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Grinder:    not configured")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Grinder:    scale %s\n", grinder.String())
	return nil
}

func printBasket(cmd *cobra.Command, db *store.SQLite) error {
	basket, ok, err := db.ActiveBasket(cmd.Context())
	if err != nil {
		return fmt.Errorf("read basket config: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Basket:     not configured")
		return nil
	}
	p := message.NewPrinter(language.English)
	fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("Basket:     %s, %.1f-%.1f g in, %.1f-%.1f g out",
		basket.Name, basket.CoffeeInMin, basket.CoffeeInMax, basket.CoffeeOutMin, basket.CoffeeOutMax))
	return nil
}
